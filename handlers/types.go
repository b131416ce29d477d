// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "relay-server/messages"

// swagger:model SendMessageRequest
type SendMessageRequest struct {
	// Message text, 1 to 255 characters
	// required: true
	Text string `json:"text" example:"Hello World"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating successful operation
	Message string `json:"message" example:"Message successfully sent."`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message describing the failure
	Error string `json:"error" example:"Internal server error"`
}

// swagger:model MessageListResponse
type MessageListResponse struct {
	// Recorded messages for the requested page
	Messages []messages.MessageDetails `json:"messages"`
}
