// SPDX-License-Identifier: GPL-3.0-only

package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			// Serves the filtered listing: WHERE status = ? ORDER BY created_at, id.
			ID: "001_messages_status_created_at_idx",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(
					"CREATE INDEX IF NOT EXISTS idx_messages_status_created_at ON messages (status, created_at)",
				).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec("DROP INDEX IF EXISTS idx_messages_status_created_at").Error
			},
		},
	}
}
