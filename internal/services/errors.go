package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInput marks missing or malformed caller-supplied material.
	ErrInput = errors.New("input error")
	// ErrProvider marks a failed or malformed response from an external provider.
	ErrProvider = errors.New("provider error")
	// ErrTool marks a non-zero exit from an external subprocess.
	ErrTool = errors.New("external tool error")
	// ErrConsistency marks mismatched or missing per-scene assets.
	ErrConsistency = errors.New("consistency error")
	// ErrConfiguration marks unusable runtime configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProvider
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Message strips the sentinel prefix from a wrapped error, returning the
// human-readable remainder for persistence on the job record.
func Message(err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	for _, marker := range []error{ErrInput, ErrProvider, ErrTool, ErrConsistency, ErrConfiguration} {
		prefix := marker.Error() + ": "
		if strings.HasPrefix(text, prefix) {
			return strings.TrimPrefix(text, prefix)
		}
	}
	return text
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
