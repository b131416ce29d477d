// SPDX-License-Identifier: GPL-3.0-only

package messages

import (
	"fmt"
	"relay-server/models"

	"gorm.io/gorm"
)

// Recorder is the consumer-side write: it turns a dispatched text payload into
// a durable Message row. Failures never reach the original submitter; the
// queue's retry policy owns them.
type Recorder struct {
	DB *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{DB: db}
}

// Record assigns a fresh UUID, the default "sent" status and the current
// timestamp, then persists the message in a single insert.
func (r *Recorder) Record(text string) (*models.Message, error) {
	msg := models.NewMessage(text)
	if err := r.DB.Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}
	return msg, nil
}
