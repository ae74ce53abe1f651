package model

// Upload is a validated PDF received from a client. It lives only for the
// duration of one request and is never stored.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// SummaryResult is returned by the summarize endpoint.
type SummaryResult struct {
	Summary string `json:"summary"`
	Quiz    string `json:"quiz"`
}

// QuizResult is returned by the quiz endpoint.
type QuizResult struct {
	Quiz string `json:"quiz"`
}
