package schema

import (
	"time"
)

// Balance represents the balances table - one ingestion unit per calendar day.
// A balance is unique per (natural_id, balance_date) and is the cascade root
// for everything ingested under it.
type Balance struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// NaturalID is the identifier assigned by REE
	NaturalID string `gorm:"column:natural_id;not null;type:text;uniqueIndex:idx_balances_natural_id_date,priority:1"`
	// BalanceDate is the calendar day this balance covers, keyed at midnight UTC
	BalanceDate time.Time `gorm:"column:balance_date;not null;type:timestamptz;uniqueIndex:idx_balances_natural_id_date,priority:2"`
	// Type is the upstream payload type tag
	Type string `gorm:"column:type;not null;type:text"`
	// Title is the upstream display title
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the optional upstream description
	Description string `gorm:"column:description;type:text"`
	// LastUpdate is the upstream revision timestamp
	LastUpdate time.Time `gorm:"column:last_update;type:timestamptz"`
	// CacheHit records whether the upstream served this payload from cache
	CacheHit bool `gorm:"column:cache_hit;not null;default:false"`
	// CacheExpireAt is the upstream cache expiry, when exposed
	CacheExpireAt *time.Time `gorm:"column:cache_expire_at;type:timestamptz"`
	// CreatedAt is the timestamp when this balance was first ingested
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index"`
	// UpdatedAt is the timestamp when this balance was last re-ingested
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Categories []Category `gorm:"foreignKey:BalanceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Balance model
func (Balance) TableName() string {
	return "balances"
}
