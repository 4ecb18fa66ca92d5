package main

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// closest returns the candidate with the smallest edit distance to value.
// ok is false when there are no candidates or the best match is further
// away than half of value's length.
func closest(value string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	needle := strings.ToLower(value)
	best := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(needle, strings.ToLower(a)) < levenshtein.Distance(needle, strings.ToLower(b))
	})
	if levenshtein.Distance(needle, strings.ToLower(best)) > max(2, len(value)/2) {
		return "", false
	}
	return best, true
}

// didYouMean builds a suggestion for an unknown name.
func didYouMean(value string, candidates []string, fallback string) string {
	if best, ok := closest(value, candidates); ok {
		return fmt.Sprintf("Did you mean %q? %s", best, fallback)
	}
	return fallback
}
