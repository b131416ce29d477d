// SPDX-License-Identifier: GPL-3.0-only

package messages

import "relay-server/models"

// MessageDetails is the wire shape of a recorded message. The surrogate id and
// creation timestamp stay internal.
type MessageDetails struct {
	UUID   string `json:"uuid"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

// FormatMessages projects stored records into their wire shape, preserving
// order.
func FormatMessages(msgs []models.Message) []MessageDetails {
	details := make([]MessageDetails, 0, len(msgs))
	for _, msg := range msgs {
		details = append(details, MessageDetails{
			UUID:   msg.UUID,
			Text:   msg.Text,
			Status: msg.Status,
		})
	}
	return details
}
