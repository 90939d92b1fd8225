package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest creates a new author account with credentials.
type RegisterRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Intro       string   `json:"intro"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please enter a valid email"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password is required"),
			validation.Length(6, 128).Error("Password must be at least 6 characters"),
		),
		validation.Field(&r.Intro, validation.Required.Error("Intro is required")),
		validation.Field(&r.Bio, validation.Required.Error("Bio is required")),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please enter a valid email"),
		),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

// AuthResult is the login/registration response payload.
type AuthResult struct {
	Token  string  `json:"token"`
	Author *Author `json:"author"`
}

// ========================================
// CRUD DTOs
// ========================================

// CreateRequest is the admin-side author creation payload. Password is
// optional; accounts created without one cannot log in.
type CreateRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Image       string    `json:"image"`
	ImageFile   *string   `json:"imageFile"`
	IsActive    *bool     `json:"isActive"`
	Intro       string    `json:"intro"`
	Bio         string    `json:"bio"`
	Specialties []string  `json:"specialties"`
	IsFeatured  bool      `json:"isFeatured"`
	Priority    int       `json:"priority"`
	Sections    []Section `json:"sections"`
	Role        Role      `json:"role"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("Name is required")),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Please enter a valid email"),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != "", validation.Length(6, 128).Error("Password must be at least 6 characters")),
		),
		validation.Field(&r.Intro, validation.Required.Error("Intro is required")),
		validation.Field(&r.Bio, validation.Required.Error("Bio is required")),
		validation.Field(&r.Role,
			validation.When(r.Role != "", validation.By(validRole)),
		),
	)
}

// UpdateRequest is a partial update: nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Password    *string    `json:"password"`
	Image       *string    `json:"image"`
	ImageFile   *string    `json:"imageFile"`
	IsActive    *bool      `json:"isActive"`
	Intro       *string    `json:"intro"`
	Bio         *string    `json:"bio"`
	Specialties *[]string  `json:"specialties"`
	IsFeatured  *bool      `json:"isFeatured"`
	Priority    *int       `json:"priority"`
	Sections    *[]Section `json:"sections"`
	Role        *Role      `json:"role"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.By(notBlank("Name")))),
		validation.Field(&r.Email, validation.When(r.Email != nil, validation.By(validEmailPtr))),
		validation.Field(&r.Password,
			validation.When(r.Password != nil, validation.By(minPasswordPtr)),
		),
		validation.Field(&r.Role, validation.When(r.Role != nil, validation.By(validRolePtr))),
	)
}

// BulkVisibilityRequest toggles is_active across all authors.
type BulkVisibilityRequest struct {
	IsActive *bool `json:"isActive"`
}

func (r BulkVisibilityRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil.Error("isActive boolean is required")),
	)
}

// ========================================
// VALIDATION HELPERS
// ========================================

func validRole(value interface{}) error {
	role, _ := value.(Role)
	if !role.IsValid() {
		return validation.NewError("validation_invalid_role", "role must be author or admin")
	}
	return nil
}

func validRolePtr(value interface{}) error {
	role, _ := value.(*Role)
	if role == nil {
		return nil
	}
	return validRole(*role)
}

func notBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(*string)
		if s != nil && *s == "" {
			return validation.NewError("validation_required", field+" is required")
		}
		return nil
	}
}

func validEmailPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return is.EmailFormat.Error("Please enter a valid email").Validate(*s)
}

func minPasswordPtr(value interface{}) error {
	s, _ := value.(*string)
	if s == nil {
		return nil
	}
	return validation.Length(6, 128).Error("Password must be at least 6 characters").Validate(*s)
}
