// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
)

var AllModels []any

type MessageStatus string

const (
	// StatusSent is assigned to every message at record time.
	StatusSent MessageStatus = "sent"
	StatusRead MessageStatus = "read"
)

// Message is a recorded text message. It is constructed once with all of its
// fields and never mutated; rows belong to the storage layer after Create.
type Message struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"size:36;not null;uniqueIndex"`
	Text      string `gorm:"size:255;not null"`
	Status    string `gorm:"size:32;not null"`
	CreatedAt time.Time
}

// NewMessage builds a message ready for persistence: a fresh UUID, the
// default "sent" status and the current timestamp.
func NewMessage(text string) *Message {
	return &Message{
		UUID:      uuid.New().String(),
		Text:      text,
		Status:    string(StatusSent),
		CreatedAt: time.Now(),
	}
}

func init() {
	AllModels = append(AllModels, &Message{})
}
