package title

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ListRequest carries the raw query parameters of GET /api/titles.
// Boolean flags arrive as strings and are coerced; unknown values are
// rejected rather than silently ignored.
type ListRequest struct {
	AuthorID   string `form:"authorId"`
	Category   string `form:"category"`
	IsActive   string `form:"isActive"`
	IsFeatured string `form:"isFeatured"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
}

// Filter validates the raw parameters and builds a repository filter.
func (r ListRequest) Filter() (Filter, error) {
	f := Filter{}

	if r.AuthorID != "" {
		id, err := uuid.Parse(r.AuthorID)
		if err != nil {
			return f, validation.Errors{"authorId": validation.NewError("validation_invalid_id", "Invalid author ID format")}
		}
		f.AuthorID = &id
	}

	if r.Category != "" {
		cat := Category(r.Category)
		if !cat.IsValid() {
			return f, validation.Errors{"category": validation.NewError("validation_invalid_category", "Invalid category")}
		}
		f.Category = &cat
	}

	if r.IsActive != "" {
		v, err := strconv.ParseBool(r.IsActive)
		if err != nil {
			return f, validation.Errors{"isActive": validation.NewError("validation_invalid_bool", "isActive must be true or false")}
		}
		f.IsActive = &v
	}

	if r.IsFeatured != "" {
		v, err := strconv.ParseBool(r.IsFeatured)
		if err != nil {
			return f, validation.Errors{"isFeatured": validation.NewError("validation_invalid_bool", "isFeatured must be true or false")}
		}
		f.IsFeatured = &v
	}

	page := r.Page
	if page < 1 {
		page = 1
	}
	limit := r.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit

	return f, nil
}

// ListResponse is the paginated envelope of GET /api/titles.
type ListResponse struct {
	Titles []Title `json:"titles"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
}

// CreateRequest is the admin-side title creation payload.
type CreateRequest struct {
	Title           string         `json:"title"`
	AuthorID        string         `json:"authorId"`
	Category        Category       `json:"category"`
	Image           string         `json:"image"`
	Description     string         `json:"description"`
	Priority        int            `json:"priority"`
	IsActive        *bool          `json:"isActive"`
	IsFeatured      bool           `json:"isFeatured"`
	Tags            []string       `json:"tags"`
	PublishDate     *time.Time     `json:"publishDate"`
	PurchaseLinks   []PurchaseLink `json:"purchaseLinks"`
	Reviews         []Review       `json:"reviews"`
	MetaTitle       *string        `json:"metaTitle"`
	MetaDescription *string        `json:"metaDescription"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.AuthorID,
			validation.Required.Error("Author is required"),
			validation.By(validUUID),
		),
		validation.Field(&r.Category, validation.When(r.Category != "", validation.By(validCategory))),
		validation.Field(&r.Image, validation.Required.Error("Image is required")),
		validation.Field(&r.Description, validation.Required.Error("Description is required")),
	)
}

// UpdateRequest is a partial update: nil fields are left unchanged.
type UpdateRequest struct {
	Title           *string         `json:"title"`
	AuthorID        *string         `json:"authorId"`
	Category        *Category       `json:"category"`
	Image           *string         `json:"image"`
	Description     *string         `json:"description"`
	Priority        *int            `json:"priority"`
	IsActive        *bool           `json:"isActive"`
	IsFeatured      *bool           `json:"isFeatured"`
	Tags            *[]string       `json:"tags"`
	PublishDate     *time.Time      `json:"publishDate"`
	PurchaseLinks   *[]PurchaseLink `json:"purchaseLinks"`
	Reviews         *[]Review       `json:"reviews"`
	MetaTitle       *string         `json:"metaTitle"`
	MetaDescription *string         `json:"metaDescription"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.When(r.AuthorID != nil, validation.By(validUUIDPtr))),
		validation.Field(&r.Category, validation.When(r.Category != nil, validation.By(validCategoryPtr))),
	)
}

func validCategory(value interface{}) error {
	cat, _ := value.(Category)
	if !cat.IsValid() {
		return validation.NewError("validation_invalid_category", "Invalid category")
	}
	return nil
}

func validCategoryPtr(value interface{}) error {
	cat, _ := value.(*Category)
	if cat == nil {
		return nil
	}
	return validCategory(*cat)
}

func validUUID(value interface{}) error {
	s, _ := value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_invalid_id", "Invalid author ID format")
	}
	return nil
}

func validUUIDPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validUUID(*s)
}
