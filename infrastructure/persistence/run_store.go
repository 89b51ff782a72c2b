package persistence

import (
	"context"
	"fmt"

	"github.com/ankarhem/advent-of-code/domain/run"
	"github.com/ankarhem/advent-of-code/internal/database"
)

// RunStore implements run.Store using GORM.
type RunStore struct {
	database.Repository[run.Run, RunModel]
}

// NewRunStore creates a new RunStore.
func NewRunStore(db database.Database) RunStore {
	return RunStore{
		Repository: database.NewRepository[run.Run, RunModel](db, RunMapper{}, "run"),
	}
}

// Save creates or updates a run.
func (s RunStore) Save(ctx context.Context, r run.Run) (run.Run, error) {
	model := s.Mapper().ToModel(r)

	if model.ID == 0 {
		if err := s.DB(ctx).Create(&model).Error; err != nil {
			return run.Run{}, fmt.Errorf("create run: %w", err)
		}
	} else {
		if err := s.DB(ctx).Save(&model).Error; err != nil {
			return run.Run{}, fmt.Errorf("update run: %w", err)
		}
	}

	return s.Mapper().ToDomain(model)
}

var _ run.Store = RunStore{}
