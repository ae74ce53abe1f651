package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers without any text.
var ErrEmptyResponse = errors.New("model returned an empty response")

type ErrorType string

const (
	ErrorQuota     ErrorType = "quota"
	ErrorRate      ErrorType = "rate"
	ErrorTransient ErrorType = "transient"
	ErrorPermanent ErrorType = "permanent"
	ErrorContext   ErrorType = "context"
)

// ClassifyError buckets a model API error for metrics and logs. Typed SDK
// errors are classified by HTTP status; anything else by its message.
func ClassifyError(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTransient
	}
	if code, detail := apiStatus(err); code != 0 {
		return classifyStatus(code, strings.ToLower(detail))
	}
	return classifyMessage(strings.ToLower(err.Error()))
}

// apiStatus extracts the HTTP status and error text from SDK errors
// without calling their Error methods.
func apiStatus(err error) (int, string) {
	var gerr genai.APIError
	if errors.As(err, &gerr) {
		return gerr.Code, gerr.Status + " " + gerr.Message
	}
	var gptr *genai.APIError
	if errors.As(err, &gptr) && gptr != nil {
		return gptr.Code, gptr.Status + " " + gptr.Message
	}
	var oerr *openai.Error
	if errors.As(err, &oerr) && oerr != nil {
		return oerr.StatusCode, oerr.Code + " " + oerr.Type + " " + oerr.Message
	}
	return 0, ""
}

func classifyStatus(code int, detail string) ErrorType {
	switch {
	case code == http.StatusTooManyRequests:
		if isQuota(detail) {
			return ErrorQuota
		}
		return ErrorRate
	case code == http.StatusRequestTimeout, code >= http.StatusInternalServerError:
		return ErrorTransient
	case isQuota(detail):
		return ErrorQuota
	case isContextLimit(detail):
		return ErrorContext
	default:
		return ErrorPermanent
	}
}

func classifyMessage(e string) ErrorType {
	switch {
	case isQuota(e):
		return ErrorQuota
	case strings.Contains(e, "rate limit"), strings.Contains(e, "rate_limit"), strings.Contains(e, "too many requests"):
		return ErrorRate
	case isContextLimit(e):
		return ErrorContext
	case strings.Contains(e, "timeout"), strings.Contains(e, "temporarily"), strings.Contains(e, "unavailable"):
		return ErrorTransient
	default:
		return ErrorPermanent
	}
}

func isQuota(s string) bool {
	return strings.Contains(s, "quota") || strings.Contains(s, "resource_exhausted")
}

func isContextLimit(s string) bool {
	return strings.Contains(s, "context length") || strings.Contains(s, "too long") || strings.Contains(s, "token limit")
}
