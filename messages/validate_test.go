package messages

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTextAcceptsInRangeStrings(t *testing.T) {
	valid := []string{
		"a",
		"Hello World",
		"  leading and trailing spaces are counted, not trimmed  ",
		strings.Repeat("x", 255),
	}

	for _, text := range valid {
		if err := ValidateText(text); err != nil {
			t.Errorf("Expected %q to be valid, got %v", text, err)
		}
	}
}

func TestValidateTextRejectsEmptyAndOversized(t *testing.T) {
	invalid := []string{
		"",
		strings.Repeat("x", 256),
		strings.Repeat("x", 1000),
	}

	for _, text := range invalid {
		err := ValidateText(text)
		if err == nil {
			t.Errorf("Expected %q (len %d) to be rejected", text, len(text))
			continue
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("Expected a ValidationError, got %T", err)
			continue
		}
		if validationErr.Message != TextValidationMessage {
			t.Errorf("Expected fixed message %q, got %q", TextValidationMessage, validationErr.Message)
		}
	}
}

func TestValidateTextCountsCharactersNotBytes(t *testing.T) {
	// 255 multi-byte characters are within the limit.
	text := strings.Repeat("é", 255)
	if err := ValidateText(text); err != nil {
		t.Errorf("Expected 255 multi-byte characters to be valid, got %v", err)
	}

	if err := ValidateText(strings.Repeat("é", 256)); err == nil {
		t.Error("Expected 256 characters to be rejected")
	}
}
