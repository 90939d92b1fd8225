package author

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImage is used when an author has no portrait configured.
const DefaultImage = "/default-author.webp"

// Role enum
type Role string

const (
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// Section is an ordered free-text block on an author's profile page.
// Stored as JSONB.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// Author is the domain entity, mapped 1:1 to the authors table.
// Authors double as API credentials: an author with a password hash can
// log in, seed/legacy accounts have none.
type Author struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"` // stored lowercase, unique

	// Never serialized; nil for legacy/seed accounts.
	PasswordHash *string `json:"-"`

	Image     string  `json:"image"`
	ImageFile *string `json:"imageFile,omitempty"`

	IsActive    bool      `json:"isActive"`
	Intro       string    `json:"intro"`
	Bio         string    `json:"bio"`
	Specialties []string  `json:"specialties"`
	IsFeatured  bool      `json:"isFeatured"`
	Priority    int       `json:"priority"`
	Sections    []Section `json:"sections"`
	Role        Role      `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasPassword reports whether the account can authenticate.
func (a *Author) HasPassword() bool {
	return a.PasswordHash != nil && *a.PasswordHash != ""
}

// Sanitize removes credential material before the record leaves the
// service layer. The json:"-" tag already hides the hash, this also
// clears it for callers that hold the struct.
func (a *Author) Sanitize() {
	a.PasswordHash = nil
}

// IsAdmin reports whether the author may reach admin-gated routes.
func (a *Author) IsAdmin() bool {
	return a.Role == RoleAdmin
}
