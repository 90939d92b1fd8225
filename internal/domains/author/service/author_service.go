package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"publishing-backend/internal/domains/author"
	"publishing-backend/pkg/jwt"
)

// bcrypt cost 12: balance between hashing latency and resistance.
const bcryptCost = 12

type authorService struct {
	repo       author.Repository
	jwtManager *jwt.Manager
}

func NewAuthorService(repo author.Repository, jwtManager *jwt.Manager) author.Service {
	return &authorService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *authorService) Register(ctx context.Context, req author.RegisterRequest) (*author.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, author.ErrEmailAlreadyExists
	} else if !errors.Is(err, author.ErrAuthorNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	now := time.Now()
	a := &author.Author{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hashStr,
		Image:        author.DefaultImage,
		IsActive:     true,
		Intro:        req.Intro,
		Bio:          req.Bio,
		Specialties:  specialties,
		Sections:     []author.Section{},
		Role:         author.RoleAuthor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.Generate(a.ID, a.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	a.Sanitize()
	return &author.AuthResult{Token: token, Author: a}, nil
}

func (s *authorService) Login(ctx context.Context, req author.LoginRequest) (*author.AuthResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, author.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find author: %w", err)
	}

	// Seed/legacy accounts carry no hash and cannot log in.
	if !a.HasPassword() {
		return nil, author.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, author.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(a.ID, a.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	a.Sanitize()
	return &author.AuthResult{Token: token, Author: a}, nil
}

// ========================================
// CRUD
// ========================================

func (s *authorService) List(ctx context.Context, includeInactive bool) ([]author.Author, error) {
	authors, err := s.repo.List(ctx, !includeInactive)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		authors[i].Sanitize()
	}
	return authors, nil
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Sanitize()
	return a, nil
}

func (s *authorService) Create(ctx context.Context, req author.CreateRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var hash *string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hs := string(h)
		hash = &hs
	}

	role := req.Role
	if role == "" {
		role = author.RoleAuthor
	}
	image := req.Image
	if image == "" {
		image = author.DefaultImage
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	specialties := req.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	sections := req.Sections
	if sections == nil {
		sections = []author.Section{}
	}

	now := time.Now()
	a := &author.Author{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Image:        image,
		ImageFile:    req.ImageFile,
		IsActive:     isActive,
		Intro:        req.Intro,
		Bio:          req.Bio,
		Specialties:  specialties,
		IsFeatured:   req.IsFeatured,
		Priority:     req.Priority,
		Sections:     sections,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	a.Sanitize()
	return a, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req author.UpdateRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(a, req)

	if req.Password != nil && *req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hs := string(h)
		a.PasswordHash = &hs
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	a.Sanitize()
	return a, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *authorService) SetVisibilityAll(ctx context.Context, isActive bool) (int64, error) {
	return s.repo.SetVisibilityAll(ctx, isActive)
}

// ========================================
// HELPERS
// ========================================

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func applyUpdate(a *author.Author, req author.UpdateRequest) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Email != nil {
		a.Email = normalizeEmail(*req.Email)
	}
	if req.Image != nil {
		a.Image = *req.Image
	}
	if req.ImageFile != nil {
		a.ImageFile = req.ImageFile
	}
	if req.IsActive != nil {
		a.IsActive = *req.IsActive
	}
	if req.Intro != nil {
		a.Intro = *req.Intro
	}
	if req.Bio != nil {
		a.Bio = *req.Bio
	}
	if req.Specialties != nil {
		a.Specialties = *req.Specialties
	}
	if req.IsFeatured != nil {
		a.IsFeatured = *req.IsFeatured
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}
	if req.Sections != nil {
		a.Sections = *req.Sections
	}
	if req.Role != nil {
		a.Role = *req.Role
	}
}
