package messages

import (
	"relay-server/models"
	"testing"
)

func TestRecorderRecord(t *testing.T) {
	conn := testDB(t)
	recorder := NewRecorder(conn)

	msg, err := recorder.Record("Hello World")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if msg.UUID == "" {
		t.Error("Expected non-empty UUID")
	}
	if msg.Status != string(models.StatusSent) {
		t.Errorf("Expected status sent, got %q", msg.Status)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("Expected non-zero creation time")
	}

	var stored models.Message
	if err := conn.First(&stored, "uuid = ?", msg.UUID).Error; err != nil {
		t.Fatalf("Expected message to be persisted: %v", err)
	}
	if stored.Text != "Hello World" {
		t.Errorf("Expected stored text %q, got %q", "Hello World", stored.Text)
	}
}

func TestRecorderRecordAssignsDistinctUUIDs(t *testing.T) {
	conn := testDB(t)
	recorder := NewRecorder(conn)

	first, err := recorder.Record("one")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := recorder.Record("two")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if first.UUID == second.UUID {
		t.Error("Expected distinct UUIDs for distinct records")
	}
}
