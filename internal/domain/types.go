package domain

import (
	"time"
)

// Truncation is the time-bucketing granularity requested from the REE API
type Truncation string

const (
	// TruncHour buckets values by hour
	TruncHour Truncation = "hour"
	// TruncDay buckets values by day
	TruncDay Truncation = "day"
	// TruncMonth buckets values by month
	TruncMonth Truncation = "month"
	// TruncYear buckets values by year
	TruncYear Truncation = "year"
)

// CategoryType is the classification tag carried by category fragments in
// the upstream payload. The REE API tags categories in Spanish.
type CategoryType string

const (
	// CategoryRenewable groups renewable generation sources
	CategoryRenewable CategoryType = "Renovable"
	// CategoryNonRenewable groups non-renewable generation sources
	CategoryNonRenewable CategoryType = "No-Renovable"
	// CategoryStorage groups storage balance sources
	CategoryStorage CategoryType = "Almacenamiento"
	// CategoryDemand groups demand-side sources
	CategoryDemand CategoryType = "Demanda"
)

// KnownCategoryType reports whether t is one of the recognized category
// classification tags. Fragments with any other type are not categories.
func KnownCategoryType(t string) bool {
	switch CategoryType(t) {
	case CategoryRenewable, CategoryNonRenewable, CategoryStorage, CategoryDemand:
		return true
	}
	return false
}

// JobKind identifies one of the scheduler's ingestion job bodies
type JobKind string

const (
	// JobCurrentDay ingests today's balance
	JobCurrentDay JobKind = "current"
	// JobPreviousDay re-ingests yesterday's balance to catch late revisions
	JobPreviousDay JobKind = "previous"
	// JobHistorical re-ingests the trailing 2..8 day window
	JobHistorical JobKind = "historical"
	// JobCleanup purges balances older than the retention window
	JobCleanup JobKind = "cleanup"
)

// BalanceRecord is the normalized top-level ingestion unit for one calendar day
type BalanceRecord struct {
	// NaturalID is the identifier assigned by REE
	NaturalID   string
	Type        string
	Title       string
	Description string
	LastUpdate  time.Time
	// CacheHit and CacheExpireAt carry the upstream cache-control metadata
	// when the payload exposes it
	CacheHit      bool
	CacheExpireAt *time.Time
}

// CategoryRecord is a normalized grouping of energy sources
type CategoryRecord struct {
	NaturalID   string
	Type        CategoryType
	Title       string
	Description string
	LastUpdate  time.Time
	Sources     []SourceRecord
}

// SourceRecord is a normalized energy channel within a category
type SourceRecord struct {
	NaturalID string
	// GroupID must equal the parent category's natural id; fragments that
	// fail this cross-reference are dropped during normalization
	GroupID         string
	Type            string
	Title           string
	Description     string
	Color           string
	Icon            string
	Magnitude       string
	Composite       bool
	LastUpdate      time.Time
	Total           float64
	TotalPercentage float64
	Values          []ValueRecord
}

// ValueRecord is one timestamped reading for a source
type ValueRecord struct {
	Datetime   time.Time
	Value      float64
	Percentage float64
}

// NormalizedBalance is the output of normalizing one raw payload
type NormalizedBalance struct {
	Balance    BalanceRecord
	Categories []CategoryRecord
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfDayUTC pins t's calendar day (as observed in t's own location) to
// midnight UTC. This is the storage day key: ingestion timestamps arrive in
// the host zone while API date parameters parse to UTC midnight, and both
// must resolve to the same instant for the balance_date equality to hold.
func StartOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
