package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-backend/internal/domains/export"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubExportService struct {
	authors []export.AuthorRow
	titles  []export.TitleRow
	joined  []export.AuthorWithTitles
}

func (s *stubExportService) Authors(ctx context.Context) ([]export.AuthorRow, error) {
	return s.authors, nil
}

func (s *stubExportService) Titles(ctx context.Context) ([]export.TitleRow, error) {
	return s.titles, nil
}

func (s *stubExportService) AuthorsWithTitles(ctx context.Context, includeInactive bool) ([]export.AuthorWithTitles, error) {
	return s.joined, nil
}

func newExportRouter(svc export.Service) *gin.Engine {
	h := NewExportHandler(svc)
	r := gin.New()
	r.GET("/api/exports/authors", h.Authors)
	r.GET("/api/exports/titles", h.Titles)
	r.GET("/api/exports/authors-with-titles", h.AuthorsWithTitles)
	return r
}

func doExport(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthorsJSONExportAttachment(t *testing.T) {
	svc := &stubExportService{authors: []export.AuthorRow{{AuthorID: "a-1", Name: "Alice", Email: "a@x.com"}}}
	rec := doExport(t, newExportRouter(svc), "/api/exports/authors?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename=authors.json`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body struct {
		Authors []export.AuthorRow `json:"authors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Authors, 1)
	assert.Equal(t, "Alice", body.Authors[0].Name)
}

func TestTitlesJSONExportEnvelope(t *testing.T) {
	svc := &stubExportService{titles: []export.TitleRow{{TitleID: "t-1", Title: "Deep Work"}}}
	rec := doExport(t, newExportRouter(svc), "/api/exports/titles?format=json")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename=titles.json`, rec.Header().Get("Content-Disposition"))

	var body map[string][]export.TitleRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "titles")
	assert.Equal(t, "Deep Work", body["titles"][0].Title)
}

func TestAuthorsWithTitlesDefaultsToJSON(t *testing.T) {
	svc := &stubExportService{joined: []export.AuthorWithTitles{{AuthorID: "a-1", Name: "Alice", Titles: []export.TitleRow{}}}}
	rec := doExport(t, newExportRouter(svc), "/api/exports/authors-with-titles")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, `attachment; filename=authors-with-titles.json`, rec.Header().Get("Content-Disposition"))

	var body struct {
		Authors []export.AuthorWithTitles `json:"authors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Authors, 1)
	assert.NotNil(t, body.Authors[0].Titles)
}

func TestAuthorsExportDefaultsToCSV(t *testing.T) {
	svc := &stubExportService{authors: []export.AuthorRow{{AuthorID: "a-1", Name: "Alice"}}}
	rec := doExport(t, newExportRouter(svc), "/api/exports/authors")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=authors.csv`, rec.Header().Get("Content-Disposition"))
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	rec := doExport(t, newExportRouter(&stubExportService{}), "/api/exports/titles?format=pdf")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid export format"}`, rec.Body.String())
}
