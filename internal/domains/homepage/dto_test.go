package homepage

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestRequiresContent(t *testing.T) {
	req := CreateRequest{Type: TypeTitleSection, Title: "New releases"}

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "content")
}

func TestCreateRequestValid(t *testing.T) {
	req := CreateRequest{
		Type:    TypeTitleSection,
		Title:   "New releases",
		Content: json.RawMessage(`{"titleIds":["a","b"]}`),
	}
	assert.NoError(t, req.Validate())
}

func TestCreateRequestRejectsBadType(t *testing.T) {
	req := CreateRequest{
		Type:    Type("sidebar"),
		Title:   "X",
		Content: json.RawMessage(`{}`),
	}

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "type")
}

func TestCreateRequestRejectsInvalidJSON(t *testing.T) {
	req := CreateRequest{
		Type:    TypeFeaturedAuthors,
		Title:   "X",
		Content: json.RawMessage(`{not json`),
	}

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "content")
}

func TestCreateRequestRejectsBadSettings(t *testing.T) {
	bad := &Settings{Columns: 9, ShowViewAll: true, MaxItems: 8}
	req := CreateRequest{
		Type:     TypePromotionalBanner,
		Title:    "X",
		Content:  json.RawMessage(`{}`),
		Settings: bad,
	}

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "settings")
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 4, s.Columns)
	assert.True(t, s.ShowViewAll)
	assert.Equal(t, 8, s.MaxItems)
}
