package models

import (
	"testing"
)

func TestNewMessage(t *testing.T) {
	text := "Hello, World!"

	msg := NewMessage(text)

	if msg.Text != text {
		t.Errorf("Expected text %s, got %s", text, msg.Text)
	}

	if msg.UUID == "" {
		t.Error("Expected non-empty UUID")
	}

	if msg.Status != string(StatusSent) {
		t.Errorf("Expected status %s, got %s", StatusSent, msg.Status)
	}

	if msg.CreatedAt.IsZero() {
		t.Error("Expected non-zero creation time")
	}

	// Different messages get different UUIDs
	msg2 := NewMessage("Different content")
	if msg.UUID == msg2.UUID {
		t.Error("Expected different UUIDs for different messages")
	}
}
