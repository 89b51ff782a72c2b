package persistence

import "time"

// RunModel is the database row for a recorded run.
type RunModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Year       int       `gorm:"not null;index:idx_runs_puzzle"`
	Day        int       `gorm:"not null;index:idx_runs_puzzle"`
	Mode       string    `gorm:"size:16;not null"`
	Digest     string    `gorm:"size:64;not null;index"`
	Answer     string    `gorm:"size:20"`
	Found      bool      `gorm:"not null"`
	DurationNS int64     `gorm:"column:duration_ns;not null"`
	Workers    int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName returns the table name.
func (RunModel) TableName() string { return "runs" }
