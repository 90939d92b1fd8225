package banner

import (
	"time"

	"github.com/google/uuid"
)

// Type enum. Featured banners point at an author or a title; the other
// two types are free-standing.
type Type string

const (
	TypeFeaturedAuthor Type = "featured-author"
	TypeFeaturedTitle  Type = "featured-title"
	TypePromotional    Type = "promotional"
	TypeAnnouncement   Type = "announcement"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeFeaturedAuthor, TypeFeaturedTitle, TypePromotional, TypeAnnouncement:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}

// RequiresContent reports whether banners of this type must reference
// an author or title record.
func (t Type) RequiresContent() bool {
	return t == TypeFeaturedAuthor || t == TypeFeaturedTitle
}

// ContentModel discriminates what a featured banner references.
type ContentModel string

const (
	ContentModelAuthor ContentModel = "Author"
	ContentModelTitle  ContentModel = "Title"
)

func (m ContentModel) IsValid() bool {
	return m == ContentModelAuthor || m == ContentModelTitle
}

// Settings is free-form display configuration. Stored as JSONB.
type Settings struct {
	ShowImage  bool   `json:"showImage"`
	ShowButton bool   `json:"showButton"`
	Layout     string `json:"layout"` // left, right, center
}

// DefaultSettings mirrors the storefront defaults.
func DefaultSettings() Settings {
	return Settings{ShowImage: true, ShowButton: true, Layout: "left"}
}

// Banner is a promotional block with an active display window.
type Banner struct {
	ID          uuid.UUID `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image"`
	ImageFile   *string   `json:"imageFile,omitempty"`
	ButtonText  string    `json:"buttonText"`
	ButtonLink  string    `json:"buttonLink"`

	// Set only when Type.RequiresContent().
	ContentID    *uuid.UUID    `json:"contentId,omitempty"`
	ContentModel *ContentModel `json:"contentModel,omitempty"`

	IsActive bool `json:"isActive"`
	Priority int  `json:"priority"`

	// Display window: visible from StartDate until EndDate (nil = open).
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`

	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	Settings        Settings `json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
