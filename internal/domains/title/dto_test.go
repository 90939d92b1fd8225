package title

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRequestFilterCoercesBooleans(t *testing.T) {
	req := ListRequest{IsActive: "true", IsFeatured: "false", Page: 1, Limit: 20}

	f, err := req.Filter()
	require.NoError(t, err)
	require.NotNil(t, f.IsActive)
	assert.True(t, *f.IsActive)
	require.NotNil(t, f.IsFeatured)
	assert.False(t, *f.IsFeatured)
}

func TestListRequestFilterRejectsBadBoolean(t *testing.T) {
	req := ListRequest{IsActive: "yes-please"}

	_, err := req.Filter()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "isActive")
}

func TestListRequestFilterRejectsBadCategory(t *testing.T) {
	req := ListRequest{Category: "paintings"}

	_, err := req.Filter()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "category")
}

func TestListRequestFilterRejectsBadAuthorID(t *testing.T) {
	req := ListRequest{AuthorID: "not-a-uuid"}

	_, err := req.Filter()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "authorId")
}

func TestListRequestFilterPagination(t *testing.T) {
	req := ListRequest{Page: 3, Limit: 10}

	f, err := req.Filter()
	require.NoError(t, err)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, 20, f.Offset)
}

func TestListRequestFilterClampsLimit(t *testing.T) {
	req := ListRequest{Page: 1, Limit: 5000}

	f, err := req.Filter()
	require.NoError(t, err)
	assert.Equal(t, 100, f.Limit)
}

func TestCreateRequestValidation(t *testing.T) {
	valid := CreateRequest{
		Title:       "Work",
		AuthorID:    uuid.NewString(),
		Image:       "/work.webp",
		Description: "d",
	}
	assert.NoError(t, valid.Validate())

	missing := CreateRequest{Title: "Work"}
	err := missing.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "authorId")
	assert.Contains(t, verrs, "image")

	badCategory := valid
	badCategory.Category = Category("paintings")
	assert.Error(t, badCategory.Validate())
}
