package schema

import (
	"time"
)

// Source represents the sources table - one energy channel (hydro, wind,
// nuclear, ...) belonging to a category. Natural ids are globally unique;
// group_id always equals the owning category's natural id.
type Source struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CategoryID references the owning category
	CategoryID int64 `gorm:"column:category_id;not null;index"`
	// NaturalID is the globally unique identifier assigned by REE
	NaturalID string `gorm:"column:natural_id;not null;type:text;uniqueIndex"`
	// GroupID is the parent category's natural id, validated on ingestion
	GroupID string `gorm:"column:group_id;not null;type:text"`
	// Type is the upstream source type (e.g. "Hidráulica", "Eólica")
	Type string `gorm:"column:type;not null;type:text"`
	// Title is the upstream display title
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the optional upstream description
	Description string `gorm:"column:description;type:text"`
	// Color is the dashboard display color, when provided
	Color string `gorm:"column:color;type:text"`
	// Icon is the dashboard icon hint, when provided
	Icon string `gorm:"column:icon;type:text"`
	// Magnitude is the unit of measure, when provided
	Magnitude string `gorm:"column:magnitude;type:text"`
	// Composite marks aggregate sources computed from others
	Composite bool `gorm:"column:composite;not null;default:false"`
	// LastUpdate is the upstream revision timestamp
	LastUpdate time.Time `gorm:"column:last_update;not null;type:timestamptz"`
	// Total is the aggregate reading over the ingested window
	Total float64 `gorm:"column:total;not null;default:0"`
	// TotalPercentage is the source's share of its category total
	TotalPercentage float64 `gorm:"column:total_percentage;not null;default:0"`
	// CreatedAt is the timestamp when this source was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this source was last re-ingested
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Values []Value `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Source model
func (Source) TableName() string {
	return "sources"
}
