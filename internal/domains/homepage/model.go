package homepage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type enum for homepage content blocks.
type Type string

const (
	TypeFeaturedAuthors   Type = "featured_authors"
	TypePromotionalBanner Type = "promotional_banner"
	TypeTitleSection      Type = "title_section"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeFeaturedAuthors, TypePromotionalBanner, TypeTitleSection:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// Settings controls how a block renders on the storefront grid.
type Settings struct {
	Columns     int  `json:"columns"`
	ShowViewAll bool `json:"showViewAll"`
	MaxItems    int  `json:"maxItems"`
}

func DefaultSettings() Settings {
	return Settings{Columns: 4, ShowViewAll: true, MaxItems: 8}
}

// Content is a typed, prioritized, time-windowed homepage block.
// The payload is free-form JSON interpreted by the storefront per type;
// the API stores it opaquely.
type Content struct {
	ID       uuid.UUID       `json:"id"`
	Type     Type            `json:"type"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	Content  json.RawMessage `json:"content"`

	IsActive bool `json:"isActive"`
	Priority int  `json:"priority"`

	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	Settings Settings `json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
