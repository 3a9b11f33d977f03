package ree

// The REE "datos" API responds with a JSON:API-style envelope. Fields are
// kept loose (pointers, optional blocks) on purpose: upstream payloads are
// heterogeneous and the normalizer decides what qualifies, not the decoder.

// BalanceResponse is the raw payload returned by the balance endpoint
type BalanceResponse struct {
	Data     BalanceData `json:"data"`
	Included []Fragment  `json:"included"`
}

// BalanceData is the top-level data object of a balance payload
type BalanceData struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Attributes BalanceAttributes `json:"attributes"`
}

// BalanceAttributes carries the balance-level attributes
type BalanceAttributes struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	LastUpdate  *string `json:"last-update"`
	Meta        *Meta   `json:"meta"`
}

// Meta wraps upstream cache metadata
type Meta struct {
	CacheControl *CacheControl `json:"cache-control"`
}

// CacheControl reports whether the upstream served the response from cache
type CacheControl struct {
	Cache    string  `json:"cache"`
	ExpireAt *string `json:"expireAt"`
}

// Fragment is one entry of the payload's flat "included" list. Entries may
// be category-shaped, or unrelated fragments to be ignored.
type Fragment struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Attributes FragmentAttributes `json:"attributes"`
}

// FragmentAttributes carries a category fragment's attributes. Content is
// nil when the key is absent and non-nil (possibly empty) when present,
// which is what the category qualification check looks at.
type FragmentAttributes struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	LastUpdate  *string           `json:"last-update"`
	Content     []ContentFragment `json:"content"`
}

// ContentFragment is one source-shaped entry nested under a category
type ContentFragment struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	GroupID    string           `json:"groupId"`
	Attributes SourceAttributes `json:"attributes"`
}

// SourceAttributes carries a source fragment's attributes
type SourceAttributes struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Color           *string         `json:"color"`
	Icon            *string         `json:"icon"`
	Magnitude       *string         `json:"magnitude"`
	Composite       *bool           `json:"composite"`
	LastUpdate      *string         `json:"last-update"`
	Total           *float64        `json:"total"`
	TotalPercentage *float64        `json:"total-percentage"`
	Values          []ValueFragment `json:"values"`
}

// ValueFragment is one raw time-series point under a source
type ValueFragment struct {
	Datetime   *string  `json:"datetime"`
	Value      *float64 `json:"value"`
	Percentage *float64 `json:"percentage"`
}
