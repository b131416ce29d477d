// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"relay-server/messages"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// MessageHandler serves the message endpoints. The queue dependency reaches it
// through the injected service, never as a package global.
type MessageHandler struct {
	Service *messages.Service
}

func NewMessageHandler(service *messages.Service) *MessageHandler {
	return &MessageHandler{Service: service}
}

// ListMessagesHandler godoc
// @Summary      List recorded messages
// @Description  Returns a paginated list of recorded messages, optionally filtered by status.
// @Tags         messages
// @Produce      json
// @Param        status  query  string  false  "Status filter (sent or read); any other value lists all statuses"
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        limit   query  int     false  "Page size (default 10)"
// @Success      200 {object} MessageListResponse "Page of recorded messages"
// @Failure      400 {object} ErrorResponse       "Bad request, page or limit is not an integer"
// @Failure      500 {object} ErrorResponse       "Internal server error"
// @Router       /messages [get]
func (h *MessageHandler) ListMessagesHandler(c echo.Context) error {
	logger := c.Logger()

	details, err := h.Service.ListFormatted(
		c.QueryParam("status"),
		c.QueryParam("page"),
		c.QueryParam("limit"),
	)
	if err != nil {
		var validationErr *messages.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		}
		logger.Errorf("Failed to list messages: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
	}

	return c.JSON(http.StatusOK, MessageListResponse{Messages: details})
}

// SendMessageHandler godoc
// @Summary      Submit a message
// @Description  Validates the text and queues it for asynchronous recording. A 202 means accepted for processing, not durably stored.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        sendMessageRequest  body  SendMessageRequest  true  "Send message request payload"
// @Success      202 {object} GenericResponse "Message accepted for processing"
// @Failure      400 {object} ErrorResponse   "Bad request, missing or oversized text"
// @Failure      500 {object} ErrorResponse   "Internal server error"
// @Router       /messages/send [post]
func (h *MessageHandler) SendMessageHandler(c echo.Context) error {
	logger := c.Logger()

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		// A non-string text field violates the text type rule; any other bind
		// failure (broken JSON, wrong content type) gets the generic message.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "text" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: messages.TextValidationMessage})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		})
	}

	if err := h.Service.Submit(req.Text); err != nil {
		var validationErr *messages.ValidationError
		if errors.As(err, &validationErr) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
		}
		logger.Errorf("Failed to dispatch message: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
	}

	return c.JSON(http.StatusAccepted, GenericResponse{Message: "Message successfully sent."})
}
