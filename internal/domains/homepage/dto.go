package homepage

import (
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest is the admin-side payload for a new homepage block.
type CreateRequest struct {
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Subtitle  string          `json:"subtitle"`
	Content   json.RawMessage `json:"content"`
	IsActive  *bool           `json:"isActive"`
	Priority  int             `json:"priority"`
	StartDate *time.Time      `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	Settings  *Settings       `json:"settings"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type,
			validation.Required.Error("Type is required"),
			validation.By(validType),
		),
		validation.Field(&r.Title, validation.Required.Error("Title is required")),
		validation.Field(&r.Content, validation.By(requiredContent)),
		validation.Field(&r.Settings, validation.By(validSettings)),
	)
}

// UpdateRequest is a partial update: nil fields are left unchanged.
type UpdateRequest struct {
	Type      *Type           `json:"type"`
	Title     *string         `json:"title"`
	Subtitle  *string         `json:"subtitle"`
	Content   json.RawMessage `json:"content"`
	IsActive  *bool           `json:"isActive"`
	Priority  *int            `json:"priority"`
	StartDate *time.Time      `json:"startDate"`
	EndDate   *time.Time      `json:"endDate"`
	Settings  *Settings       `json:"settings"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Type, validation.When(r.Type != nil, validation.By(validTypePtr))),
		validation.Field(&r.Settings, validation.By(validSettings)),
	)
}

func validType(value interface{}) error {
	t, _ := value.(Type)
	if !t.IsValid() {
		return validation.NewError("validation_invalid_type", "Invalid content type")
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

func requiredContent(value interface{}) error {
	raw, _ := value.(json.RawMessage)
	if len(raw) == 0 || string(raw) == "null" {
		return validation.NewError("validation_required", "Content is required")
	}
	if !json.Valid(raw) {
		return validation.NewError("validation_invalid_json", "Content must be valid JSON")
	}
	return nil
}

func validSettings(value interface{}) error {
	s, _ := value.(*Settings)
	if s == nil {
		return nil
	}
	if s.Columns < 1 || s.Columns > 6 {
		return validation.NewError("validation_invalid_columns", "columns must be between 1 and 6")
	}
	if s.MaxItems < 1 {
		return validation.NewError("validation_invalid_max_items", "maxItems must be at least 1")
	}
	return nil
}
