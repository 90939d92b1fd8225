package service

import (
	"context"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-backend/internal/domains/author"
	"publishing-backend/pkg/jwt"
)

// fakeAuthorRepo is an in-memory author.Repository.
type fakeAuthorRepo struct {
	byID map[uuid.UUID]*author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{byID: map[uuid.UUID]*author.Author{}}
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) error {
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return author.ErrEmailAlreadyExists
		}
	}
	copied := *a
	r.byID[a.ID] = &copied
	return nil
}

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAuthorRepo) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	email = strings.ToLower(email)
	for _, a := range r.byID {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) List(ctx context.Context, activeOnly bool) ([]author.Author, error) {
	out := []author.Author{}
	for _, a := range r.byID {
		if activeOnly && !a.IsActive {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) error {
	if _, ok := r.byID[a.ID]; !ok {
		return author.ErrAuthorNotFound
	}
	copied := *a
	r.byID[a.ID] = &copied
	return nil
}

func (r *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAuthorRepo) SetVisibilityAll(ctx context.Context, isActive bool) (int64, error) {
	var n int64
	for _, a := range r.byID {
		a.IsActive = isActive
		n++
	}
	return n, nil
}

func newTestService() (author.Service, *fakeAuthorRepo, *jwt.Manager) {
	repo := newFakeAuthorRepo()
	tm := jwt.NewManager("test-secret", time.Hour)
	return NewAuthorService(repo, tm), repo, tm
}

func registerRequest() author.RegisterRequest {
	return author.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
		Intro:    "i",
		Bio:      "b",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, tm := newTestService()
	ctx := context.Background()

	result, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Author)
	assert.NotEmpty(t, result.Token)
	assert.Nil(t, result.Author.PasswordHash)
	assert.Equal(t, author.RoleAuthor, result.Author.Role)

	claims, err := tm.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.Author.ID.String(), claims.AuthorID)
	assert.Equal(t, "author", claims.Role)

	login, err := svc.Login(ctx, author.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, result.Author.ID, login.Author.ID)
	assert.Nil(t, login.Author.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "A@X.COM" // emails match case-insensitively
	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, author.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newTestService()

	req := registerRequest()
	req.Password = "short"
	_, err := svc.Register(context.Background(), req)

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, author.LoginRequest{Email: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), author.LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)
}

func TestLoginLegacyAccountWithoutPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	seed := &author.Author{
		ID:       uuid.New(),
		Name:     "Seed",
		Email:    "seed@x.com",
		IsActive: true,
		Role:     author.RoleAuthor,
	}
	require.NoError(t, repo.Create(ctx, seed))

	_, err := svc.Login(ctx, author.LoginRequest{Email: "seed@x.com", Password: "anything"})
	assert.ErrorIs(t, err, author.ErrInvalidCredentials)
}

func TestCreateWithoutPassword(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, author.CreateRequest{
		Name:  "B",
		Email: "b@x.com",
		Intro: "i",
		Bio:   "b",
	})
	require.NoError(t, err)
	assert.Nil(t, a.PasswordHash)
	assert.Equal(t, author.DefaultImage, a.Image)
	assert.True(t, a.IsActive)

	stored := repo.byID[a.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.HasPassword())
}

func TestUpdatePartial(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, author.CreateRequest{
		Name:  "B",
		Email: "b@x.com",
		Intro: "intro",
		Bio:   "bio",
	})
	require.NoError(t, err)

	newName := "B2"
	updated, err := svc.Update(ctx, created.ID, author.UpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "B2", updated.Name)
	assert.Equal(t, "intro", updated.Intro)
	assert.Equal(t, "bio", updated.Bio)
}

func TestListExcludesInactive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	inactive := false
	_, err := svc.Create(ctx, author.CreateRequest{Name: "Active", Email: "act@x.com", Intro: "i", Bio: "b"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author.CreateRequest{Name: "Hidden", Email: "hid@x.com", Intro: "i", Bio: "b", IsActive: &inactive})
	require.NoError(t, err)

	visible, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetVisibilityAll(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, author.CreateRequest{Name: "X", Email: "x@x.com", Intro: "i", Bio: "b"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, author.CreateRequest{Name: "Y", Email: "y@x.com", Intro: "i", Bio: "b"})
	require.NoError(t, err)

	n, err := svc.SetVisibilityAll(ctx, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	for _, a := range repo.byID {
		assert.False(t, a.IsActive)
	}
}
