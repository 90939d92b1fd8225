package banner

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// ListRequest carries the query parameters of GET /api/banners.
type ListRequest struct {
	Type  string `form:"type"`
	Limit int    `form:"limit,default=5"`
}

// CreateRequest is the admin-side banner creation payload.
// contentId/contentModel are required exactly when the type is a
// featured-* variant; the schema for other types forbids nothing.
type CreateRequest struct {
	Type            Type          `json:"type"`
	Title           string        `json:"title"`
	Subtitle        string        `json:"subtitle"`
	Description     string        `json:"description"`
	Image           string        `json:"image"`
	ImageFile       *string       `json:"imageFile"`
	ButtonText      string        `json:"buttonText"`
	ButtonLink      string        `json:"buttonLink"`
	ContentID       *string       `json:"contentId"`
	ContentModel    *ContentModel `json:"contentModel"`
	IsActive        *bool         `json:"isActive"`
	Priority        int           `json:"priority"`
	StartDate       *time.Time    `json:"startDate"`
	EndDate         *time.Time    `json:"endDate"`
	BackgroundColor string        `json:"backgroundColor"`
	TextColor       string        `json:"textColor"`
	Settings        *Settings     `json:"settings"`
}

func (r CreateRequest) Validate() error {
	bannerType := r.Type
	if bannerType == "" {
		bannerType = TypePromotional
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.When(r.Type != "", validation.By(validType))),
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Image, validation.Required.Error("Image is required")),
		validation.Field(&r.ButtonLink, validation.Required.Error("Button link is required")),
		validation.Field(&r.ContentID,
			validation.When(bannerType.RequiresContent(),
				validation.NotNil.Error("contentId is required for featured banners"),
				validation.By(validContentID),
			),
		),
		validation.Field(&r.ContentModel,
			validation.When(bannerType.RequiresContent(),
				validation.NotNil.Error("contentModel is required for featured banners"),
				validation.By(validContentModel),
			),
			validation.When(!bannerType.RequiresContent() && r.ContentModel != nil,
				validation.By(validContentModel),
			),
		),
	)
}

// UpdateRequest is a partial update: nil fields are left unchanged.
// The conditional content requirement is re-checked against the
// resulting record in the service layer.
type UpdateRequest struct {
	Type            *Type         `json:"type"`
	Title           *string       `json:"title"`
	Subtitle        *string       `json:"subtitle"`
	Description     *string       `json:"description"`
	Image           *string       `json:"image"`
	ImageFile       *string       `json:"imageFile"`
	ButtonText      *string       `json:"buttonText"`
	ButtonLink      *string       `json:"buttonLink"`
	ContentID       *string       `json:"contentId"`
	ContentModel    *ContentModel `json:"contentModel"`
	IsActive        *bool         `json:"isActive"`
	Priority        *int          `json:"priority"`
	StartDate       *time.Time    `json:"startDate"`
	EndDate         *time.Time    `json:"endDate"`
	BackgroundColor *string       `json:"backgroundColor"`
	TextColor       *string       `json:"textColor"`
	Settings        *Settings     `json:"settings"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.When(r.Type != nil, validation.By(validTypePtr))),
		validation.Field(&r.ContentID, validation.When(r.ContentID != nil, validation.By(validContentID))),
		validation.Field(&r.ContentModel, validation.When(r.ContentModel != nil, validation.By(validContentModel))),
	)
}

func validType(value interface{}) error {
	t, _ := value.(Type)
	if !t.IsValid() {
		return validation.NewError("validation_invalid_type", "Invalid banner type")
	}
	return nil
}

func validTypePtr(value interface{}) error {
	t, _ := value.(*Type)
	if t == nil {
		return nil
	}
	return validType(*t)
}

func validContentID(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	if _, err := uuid.Parse(*s); err != nil {
		return validation.NewError("validation_invalid_id", "Invalid content ID format")
	}
	return nil
}

func validContentModel(value interface{}) error {
	m, _ := value.(*ContentModel)
	if m == nil {
		return nil
	}
	if !m.IsValid() {
		return validation.NewError("validation_invalid_model", "contentModel must be Author or Title")
	}
	return nil
}
