// Package prompt builds the instructions sent to the model API.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStyle is returned for summary styles other than brief, normal and detailed.
var ErrInvalidStyle = errors.New("invalid summary style")

// SummaryStyle selects how long the generated summary should be.
type SummaryStyle string

const (
	StyleBrief    SummaryStyle = "brief"
	StyleNormal   SummaryStyle = "normal"
	StyleDetailed SummaryStyle = "detailed"
)

// Styles lists the accepted styles in display order.
var Styles = []SummaryStyle{StyleBrief, StyleNormal, StyleDetailed}

var wordLimits = map[SummaryStyle]int{
	StyleBrief:    100,
	StyleNormal:   250,
	StyleDetailed: 500,
}

// ParseSummaryStyle parses a form value. An empty value selects StyleNormal.
func ParseSummaryStyle(s string) (SummaryStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StyleNormal, nil
	}
	style := SummaryStyle(s)
	if _, ok := wordLimits[style]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStyle, s)
	}
	return style, nil
}

// WordLimit is the maximum summary length requested from the model.
func (s SummaryStyle) WordLimit() int {
	if n, ok := wordLimits[s]; ok {
		return n
	}
	return wordLimits[StyleNormal]
}

// StyleNames returns the accepted style names joined for display.
func StyleNames() string {
	names := make([]string, len(Styles))
	for i, s := range Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Summary builds the bullet-point summary prompt for the document text.
func Summary(text string, style SummaryStyle) string {
	return fmt.Sprintf(
		"Summarize the key information from this document into bullet points. "+
			"Keep the summary under %d words.\n\n%s",
		style.WordLimit(), text)
}

// Quiz builds the multiple-choice quiz prompt from a previously generated summary.
func Quiz(summary string, questions int) string {
	if questions <= 0 {
		questions = 5
	}
	return fmt.Sprintf(
		"Create a multiple-choice quiz with %d questions based on the following summary. "+
			"Give each question four options labelled A, B, C and D, "+
			"and list the correct answers at the end.\n\n%s",
		questions, summary)
}
