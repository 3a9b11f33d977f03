package normalizer

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bayasdev/power-grid-balance/internal/domain"
	"github.com/bayasdev/power-grid-balance/internal/logger"
	"github.com/bayasdev/power-grid-balance/internal/providers/ree"
)

// Normalize converts a raw balance payload into the flattened domain record
// tree. Only a payload missing its top-level natural id or title is a hard
// failure (*domain.InvalidPayloadError). Category, source and value
// fragments that fail their minimum-field checks are dropped individually
// with a log line: upstream payloads are known to carry extra and malformed
// fragments, and partial data beats total failure.
func Normalize(payload *ree.BalanceResponse) (*domain.NormalizedBalance, error) {
	if payload == nil {
		return nil, &domain.InvalidPayloadError{Reason: "payload is nil"}
	}
	if payload.Data.ID == "" {
		return nil, &domain.InvalidPayloadError{Reason: "missing top-level natural id"}
	}
	if payload.Data.Attributes.Title == nil || *payload.Data.Attributes.Title == "" {
		return nil, &domain.InvalidPayloadError{Reason: "missing top-level title"}
	}

	balance := domain.BalanceRecord{
		NaturalID:   payload.Data.ID,
		Type:        payload.Data.Type,
		Title:       *payload.Data.Attributes.Title,
		Description: stringOrEmpty(payload.Data.Attributes.Description),
	}

	if ts, ok := parseTimestamp(payload.Data.Attributes.LastUpdate); ok {
		balance.LastUpdate = ts
	}

	// Cache metadata is optional; absence leaves it unset
	if meta := payload.Data.Attributes.Meta; meta != nil && meta.CacheControl != nil {
		balance.CacheHit = strings.EqualFold(meta.CacheControl.Cache, "HIT")
		if ts, ok := parseTimestamp(meta.CacheControl.ExpireAt); ok {
			balance.CacheExpireAt = &ts
		}
	}

	categories := make([]domain.CategoryRecord, 0, len(payload.Included))
	for _, fragment := range payload.Included {
		category, ok := normalizeCategory(fragment)
		if !ok {
			continue
		}
		categories = append(categories, category)
	}

	return &domain.NormalizedBalance{
		Balance:    balance,
		Categories: categories,
	}, nil
}

// normalizeCategory validates one included fragment as a category. A
// fragment qualifies only with a recognized type tag, a natural id, a
// title, a parseable last-update and a nested content array.
func normalizeCategory(fragment ree.Fragment) (domain.CategoryRecord, bool) {
	if !domain.KnownCategoryType(fragment.Type) {
		return domain.CategoryRecord{}, false
	}

	attrs := fragment.Attributes
	lastUpdate, hasLastUpdate := parseTimestamp(attrs.LastUpdate)

	if fragment.ID == "" || attrs.Title == nil || *attrs.Title == "" || !hasLastUpdate || attrs.Content == nil {
		logger.Debug("skipping malformed category fragment",
			zap.String("id", fragment.ID),
			zap.String("type", fragment.Type),
		)
		return domain.CategoryRecord{}, false
	}

	category := domain.CategoryRecord{
		NaturalID:   fragment.ID,
		Type:        domain.CategoryType(fragment.Type),
		Title:       *attrs.Title,
		Description: stringOrEmpty(attrs.Description),
		LastUpdate:  lastUpdate,
		Sources:     make([]domain.SourceRecord, 0, len(attrs.Content)),
	}

	for _, content := range attrs.Content {
		source, ok := normalizeSource(content, fragment.ID)
		if !ok {
			continue
		}
		category.Sources = append(category.Sources, source)
	}

	return category, true
}

// normalizeSource validates one content fragment as a source of the given
// category. The fragment's group id must cross-reference the parent
// category's natural id; mismatches are dropped.
func normalizeSource(content ree.ContentFragment, categoryID string) (domain.SourceRecord, bool) {
	if content.GroupID != categoryID {
		logger.Debug("skipping source fragment with mismatched group id",
			zap.String("id", content.ID),
			zap.String("group_id", content.GroupID),
			zap.String("category_id", categoryID),
		)
		return domain.SourceRecord{}, false
	}

	attrs := content.Attributes
	lastUpdate, hasLastUpdate := parseTimestamp(attrs.LastUpdate)

	if content.ID == "" || content.Type == "" || attrs.Title == nil || *attrs.Title == "" || !hasLastUpdate {
		logger.Debug("skipping malformed source fragment",
			zap.String("id", content.ID),
			zap.String("type", content.Type),
		)
		return domain.SourceRecord{}, false
	}

	source := domain.SourceRecord{
		NaturalID:       content.ID,
		GroupID:         content.GroupID,
		Type:            content.Type,
		Title:           *attrs.Title,
		Description:     stringOrEmpty(attrs.Description),
		Color:           stringOrEmpty(attrs.Color),
		Icon:            stringOrEmpty(attrs.Icon),
		Magnitude:       stringOrEmpty(attrs.Magnitude),
		Composite:       attrs.Composite != nil && *attrs.Composite,
		LastUpdate:      lastUpdate,
		Total:           floatOrZero(attrs.Total),
		TotalPercentage: floatOrZero(attrs.TotalPercentage),
		Values:          make([]domain.ValueRecord, 0, len(attrs.Values)),
	}

	for _, value := range attrs.Values {
		datetime, ok := parseTimestamp(value.Datetime)
		if !ok || value.Value == nil || value.Percentage == nil {
			logger.Debug("skipping malformed value fragment", zap.String("source_id", content.ID))
			continue
		}
		source.Values = append(source.Values, domain.ValueRecord{
			Datetime:   datetime,
			Value:      *value.Value,
			Percentage: *value.Percentage,
		})
	}

	return source, true
}

// parseTimestamp parses an upstream RFC3339-ish timestamp. The datos API
// emits both "2024-01-01T12:00:00Z" and "2024-01-01T12:00:00.000+01:00".
func parseTimestamp(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
