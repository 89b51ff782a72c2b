// Package persistence provides database storage implementations.
package persistence

import (
	"context"
	"fmt"

	"github.com/ankarhem/advent-of-code/internal/database"
)

// AutoMigrate creates or updates every table the application uses.
func AutoMigrate(ctx context.Context, db database.Database) error {
	if err := db.Session(ctx).AutoMigrate(&RunModel{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
