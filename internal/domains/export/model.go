package export

import (
	"strconv"
	"strings"
	"time"

	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/domains/title"
)

// Format enum for export rendering.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return true
	}
	return false
}

// AuthorRow is the flat export shape of an author record.
type AuthorRow struct {
	AuthorID    string `json:"authorId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	IsFeatured  bool   `json:"isFeatured"`
	Specialties string `json:"specialties"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func AuthorHeader() []string {
	return []string{"authorId", "name", "email", "isActive", "isFeatured", "specialties", "createdAt", "updatedAt"}
}

func NewAuthorRow(a author.Author) AuthorRow {
	return AuthorRow{
		AuthorID:    a.ID.String(),
		Name:        a.Name,
		Email:       a.Email,
		IsActive:    a.IsActive,
		IsFeatured:  a.IsFeatured,
		Specialties: strings.Join(a.Specialties, "|"),
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (r AuthorRow) Record() []string {
	return []string{
		r.AuthorID, r.Name, r.Email,
		strconv.FormatBool(r.IsActive), strconv.FormatBool(r.IsFeatured),
		r.Specialties, r.CreatedAt, r.UpdatedAt,
	}
}

// TitleRow is the flat export shape of a title record.
type TitleRow struct {
	TitleID     string `json:"titleId"`
	Title       string `json:"title"`
	AuthorName  string `json:"authorName"`
	AuthorID    string `json:"authorId"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
	IsFeatured  bool   `json:"isFeatured"`
	PublishDate string `json:"publishDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func TitleHeader() []string {
	return []string{"titleId", "title", "authorName", "authorId", "category", "isActive", "isFeatured", "publishDate", "createdAt", "updatedAt"}
}

func NewTitleRow(t title.Title) TitleRow {
	return TitleRow{
		TitleID:     t.ID.String(),
		Title:       t.Title,
		AuthorName:  t.AuthorName,
		AuthorID:    t.AuthorID.String(),
		Category:    t.Category.String(),
		IsActive:    t.IsActive,
		IsFeatured:  t.IsFeatured,
		PublishDate: t.PublishDate.UTC().Format("2006-01-02"),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (r TitleRow) Record() []string {
	return []string{
		r.TitleID, r.Title, r.AuthorName, r.AuthorID, r.Category,
		strconv.FormatBool(r.IsActive), strconv.FormatBool(r.IsFeatured),
		r.PublishDate, r.CreatedAt, r.UpdatedAt,
	}
}

// AuthorWithTitles is one element of the joined report: an author and
// all of that author's titles. An author with no titles still appears,
// with an empty titles array.
type AuthorWithTitles struct {
	AuthorID   string     `json:"authorId"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	IsActive   bool       `json:"isActive"`
	IsFeatured bool       `json:"isFeatured"`
	Titles     []TitleRow `json:"titles"`
}

func JoinedHeader() []string {
	return []string{"authorId", "authorName", "authorEmail", "authorIsActive", "titleId", "title", "category", "titleIsActive", "publishDate"}
}

// Records flattens the element for tabular output: one record per
// title, or exactly one record with empty title columns when the
// author has none.
func (a AuthorWithTitles) Records() [][]string {
	prefix := []string{a.AuthorID, a.Name, a.Email, strconv.FormatBool(a.IsActive)}

	if len(a.Titles) == 0 {
		return [][]string{append(prefix, "", "", "", "", "")}
	}

	records := make([][]string, 0, len(a.Titles))
	for _, t := range a.Titles {
		row := make([]string, 0, len(prefix)+5)
		row = append(row, prefix...)
		row = append(row, t.TitleID, t.Title, t.Category, strconv.FormatBool(t.IsActive), t.PublishDate)
		records = append(records, row)
	}
	return records
}
