package schema

import (
	"time"
)

// Category represents the categories table - a grouping of energy sources
// (renewable, non-renewable, storage, demand). Category natural ids are
// globally unique upstream, not scoped per balance: re-ingestion re-links an
// existing category to the most recent balance that mentioned it.
type Category struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BalanceID references the balance that most recently ingested this category
	BalanceID int64 `gorm:"column:balance_id;not null;index"`
	// NaturalID is the globally unique identifier assigned by REE
	NaturalID string `gorm:"column:natural_id;not null;type:text;uniqueIndex"`
	// Type is the classification tag (Renovable, No-Renovable, Almacenamiento, Demanda)
	Type string `gorm:"column:type;not null;type:text"`
	// Title is the upstream display title
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the optional upstream description
	Description string `gorm:"column:description;type:text"`
	// LastUpdate is the upstream revision timestamp
	LastUpdate time.Time `gorm:"column:last_update;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this category was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this category was last re-ingested
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Sources []Source `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
