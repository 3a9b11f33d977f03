package api

import (
	"time"

	"github.com/bayasdev/power-grid-balance/internal/store/schema"
)

// BalanceDTO is the wire representation of a day's balance tree
type BalanceDTO struct {
	ID            int64         `json:"id"`
	NaturalID     string        `json:"natural_id"`
	BalanceDate   time.Time     `json:"balance_date"`
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	LastUpdate    time.Time     `json:"last_update"`
	CacheHit      bool          `json:"cache_hit"`
	CacheExpireAt *time.Time    `json:"cache_expire_at,omitempty"`
	Categories    []CategoryDTO `json:"categories,omitempty"`
}

// CategoryDTO is the wire representation of a category
type CategoryDTO struct {
	NaturalID   string      `json:"natural_id"`
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	LastUpdate  time.Time   `json:"last_update"`
	Sources     []SourceDTO `json:"sources,omitempty"`
}

// SourceDTO is the wire representation of a source
type SourceDTO struct {
	NaturalID       string     `json:"natural_id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Color           string     `json:"color,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	Magnitude       string     `json:"magnitude,omitempty"`
	Composite       bool       `json:"composite"`
	LastUpdate      time.Time  `json:"last_update"`
	Total           float64    `json:"total"`
	TotalPercentage float64    `json:"total_percentage"`
	Values          []ValueDTO `json:"values,omitempty"`
}

// ValueDTO is the wire representation of one time-series point
type ValueDTO struct {
	Datetime   time.Time `json:"datetime"`
	Value      float64   `json:"value"`
	Percentage float64   `json:"percentage"`
}

// TriggerResultDTO is the structured result of a manual ingestion trigger.
// Failures surface here as a success flag plus message, never as a raw
// exception to the calling interface.
type TriggerResultDTO struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// toBalanceDTO maps a stored balance tree to its wire shape
func toBalanceDTO(balance *schema.Balance, includeTree bool) BalanceDTO {
	dto := BalanceDTO{
		ID:            balance.ID,
		NaturalID:     balance.NaturalID,
		BalanceDate:   balance.BalanceDate,
		Title:         balance.Title,
		Description:   balance.Description,
		LastUpdate:    balance.LastUpdate,
		CacheHit:      balance.CacheHit,
		CacheExpireAt: balance.CacheExpireAt,
	}
	if !includeTree {
		return dto
	}

	dto.Categories = make([]CategoryDTO, 0, len(balance.Categories))
	for _, category := range balance.Categories {
		dto.Categories = append(dto.Categories, toCategoryDTO(category))
	}
	return dto
}

func toCategoryDTO(category schema.Category) CategoryDTO {
	dto := CategoryDTO{
		NaturalID:   category.NaturalID,
		Type:        category.Type,
		Title:       category.Title,
		Description: category.Description,
		LastUpdate:  category.LastUpdate,
		Sources:     make([]SourceDTO, 0, len(category.Sources)),
	}
	for _, source := range category.Sources {
		dto.Sources = append(dto.Sources, toSourceDTO(source))
	}
	return dto
}

func toSourceDTO(source schema.Source) SourceDTO {
	dto := SourceDTO{
		NaturalID:       source.NaturalID,
		Type:            source.Type,
		Title:           source.Title,
		Description:     source.Description,
		Color:           source.Color,
		Icon:            source.Icon,
		Magnitude:       source.Magnitude,
		Composite:       source.Composite,
		LastUpdate:      source.LastUpdate,
		Total:           source.Total,
		TotalPercentage: source.TotalPercentage,
		Values:          make([]ValueDTO, 0, len(source.Values)),
	}
	for _, value := range source.Values {
		dto.Values = append(dto.Values, ValueDTO{
			Datetime:   value.Datetime,
			Value:      value.Value,
			Percentage: value.Percentage,
		})
	}
	return dto
}
