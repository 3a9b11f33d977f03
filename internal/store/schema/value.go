package schema

import (
	"time"
)

// Value represents the values table - one timestamped reading for a source.
// Values are unique per (source_id, datetime); re-ingesting an overlapping
// window overwrites value/percentage in place instead of appending.
type Value struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SourceID references the owning source
	SourceID int64 `gorm:"column:source_id;not null;uniqueIndex:idx_values_source_datetime,priority:1"`
	// Datetime is the reading's timestamp
	Datetime time.Time `gorm:"column:datetime;not null;type:timestamptz;uniqueIndex:idx_values_source_datetime,priority:2"`
	// Value is the numeric reading
	Value float64 `gorm:"column:value;not null"`
	// Percentage is the reading's share of the category total at that instant
	Percentage float64 `gorm:"column:percentage;not null"`
	// CreatedAt is the timestamp when this value was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this value was last overwritten
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Value model
func (Value) TableName() string {
	return "values"
}
