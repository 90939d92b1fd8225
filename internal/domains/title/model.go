package title

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryBooks     Category = "books"
	CategoryDigital   Category = "digital"
	CategoryCD        Category = "cd"
	CategoryVinyl     Category = "vinyl"
	CategoryArticles  Category = "articles"
	CategoryPapers    Category = "papers"
	CategoryMagazine  Category = "magazine"
	CategoryJournal   Category = "journal"
	CategoryEbook     Category = "ebook"
	CategoryAudiobook Category = "audiobook"
	CategoryPodcast   Category = "podcast"
	CategoryVideo     Category = "video"
	CategoryOther     Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBooks, CategoryDigital, CategoryCD, CategoryVinyl,
		CategoryArticles, CategoryPapers, CategoryMagazine, CategoryJournal,
		CategoryEbook, CategoryAudiobook, CategoryPodcast, CategoryVideo,
		CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// PurchaseLink points at a storefront selling the title. Stored as JSONB.
type PurchaseLink struct {
	Platform string          `json:"platform"`
	URL      string          `json:"url"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	IsActive bool            `json:"isActive"`
}

// Review is a pull-quote shown on the title page. Stored as JSONB.
type Review struct {
	Quote    string     `json:"quote"`
	Source   string     `json:"source"`
	URL      *string    `json:"url,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	IsActive bool       `json:"isActive"`
}

// Title is a published work (book or other media) belonging to exactly
// one author.
type Title struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	AuthorID uuid.UUID `json:"authorId"`

	// Populated from the authors table on reads.
	AuthorName string `json:"authorName,omitempty"`

	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	IsActive    bool     `json:"isActive"`
	IsFeatured  bool     `json:"isFeatured"`
	Tags        []string `json:"tags"`

	PublishDate time.Time `json:"publishDate"`

	PurchaseLinks []PurchaseLink `json:"purchaseLinks"`
	Reviews       []Review       `json:"reviews"`

	// SEO metadata
	MetaTitle       *string `json:"metaTitle,omitempty"`
	MetaDescription *string `json:"metaDescription,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter narrows List queries. Nil fields are ignored.
type Filter struct {
	AuthorID   *uuid.UUID
	Category   *Category
	IsActive   *bool
	IsFeatured *bool

	// Pagination; Limit <= 0 means no paging.
	Limit  int
	Offset int
}
