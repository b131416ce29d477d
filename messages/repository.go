// SPDX-License-Identifier: GPL-3.0-only

package messages

import (
	"fmt"
	"relay-server/models"

	"gorm.io/gorm"
)

// Repository reads recorded messages through offset pagination. It never
// retries; storage errors propagate to the caller.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListByFilter returns at most req.Limit() messages starting at req.Offset(),
// ordered by creation time with id as tie-break so pages are stable. An empty
// status filter returns messages across all statuses.
func (r *Repository) ListByFilter(req ListRequest) ([]models.Message, error) {
	query := r.DB.
		Order("created_at ASC, id ASC").
		Limit(req.Limit()).
		Offset(req.Offset())
	if req.Status() != "" {
		query = query.Where("status = ?", req.Status())
	}

	var msgs []models.Message
	if err := query.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}
