package banner

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest(bannerType Type) CreateRequest {
	return CreateRequest{
		Type:       bannerType,
		Title:      "Spring picks",
		Image:      "/banner.webp",
		ButtonLink: "/titles",
	}
}

func TestCreateRequestFeaturedRequiresContent(t *testing.T) {
	req := validCreateRequest(TypeFeaturedAuthor)

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "contentId")
	assert.Contains(t, verrs, "contentModel")
}

func TestCreateRequestFeaturedWithContent(t *testing.T) {
	id := uuid.NewString()
	model := ContentModelAuthor
	req := validCreateRequest(TypeFeaturedAuthor)
	req.ContentID = &id
	req.ContentModel = &model

	assert.NoError(t, req.Validate())
}

func TestCreateRequestPromotionalWithoutContent(t *testing.T) {
	req := validCreateRequest(TypePromotional)
	assert.NoError(t, req.Validate())
}

func TestCreateRequestDefaultTypeIsPromotional(t *testing.T) {
	req := validCreateRequest("")
	assert.NoError(t, req.Validate())
}

func TestCreateRequestRejectsBadContentID(t *testing.T) {
	id := "not-a-uuid"
	model := ContentModelTitle
	req := validCreateRequest(TypeFeaturedTitle)
	req.ContentID = &id
	req.ContentModel = &model

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "contentId")
}

func TestCreateRequestRejectsBadType(t *testing.T) {
	req := validCreateRequest(Type("billboard"))

	err := req.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "type")
}

func TestCreateRequestRequiredFields(t *testing.T) {
	err := CreateRequest{}.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs, "image")
	assert.Contains(t, verrs, "buttonLink")
}

func TestTypeRequiresContent(t *testing.T) {
	assert.True(t, TypeFeaturedAuthor.RequiresContent())
	assert.True(t, TypeFeaturedTitle.RequiresContent())
	assert.False(t, TypePromotional.RequiresContent())
	assert.False(t, TypeAnnouncement.RequiresContent())
}
