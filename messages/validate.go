// SPDX-License-Identifier: GPL-3.0-only

package messages

import "unicode/utf8"

// TextValidationMessage is the single user-facing diagnostic for every text
// rule violation. Kept deliberately coarse.
const TextValidationMessage = `The "text" field is required and must not exceed 255 characters.`

const maxTextLength = 255

// ValidationError marks caller input that violates a field rule. The boundary
// maps it to a 400 response; it is never logged as a system error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateText checks the submitted message text: non-empty, at most 255
// characters, raw length with no trimming.
func ValidateText(text string) error {
	if text == "" || utf8.RuneCountInString(text) > maxTextLength {
		return &ValidationError{Message: TextValidationMessage}
	}
	return nil
}
