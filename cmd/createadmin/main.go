// Command createadmin seeds the first administrator account so a fresh
// deployment can reach the admin-gated routes. Safe to re-run: it exits
// without changes when the account already exists.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"publishing-backend/internal/config"
	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/domains/author/repository"
	"publishing-backend/internal/infrastructure/database"
)

const bcryptCost = 12

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	email := strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", "admin@publishing.local")))
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("[CreateAdmin] ADMIN_PASSWORD must be set")
	}
	name := getEnv("ADMIN_NAME", "Admin")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatalf("[CreateAdmin] Invalid database configuration: %v", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatalf("[CreateAdmin] Database connection failed: %v", err)
	}
	defer db.Close()

	repo := repository.NewPostgresRepository(db.Pool)

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, author.ErrAuthorNotFound) {
		log.Fatalf("[CreateAdmin] Lookup failed: %v", err)
	}
	if existing != nil {
		log.Printf("[CreateAdmin] Account %s already exists with role %s", email, existing.Role)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		log.Fatalf("[CreateAdmin] Password hashing failed: %v", err)
	}
	hashStr := string(hash)

	now := time.Now().UTC()
	admin := &author.Author{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: &hashStr,
		Image:        author.DefaultImage,
		IsActive:     true,
		Intro:        "System administrator",
		Bio:          "Administrator account with full access to authors, titles, banners and homepage content.",
		Specialties:  []string{"Administration", "Content Management"},
		Sections:     []author.Section{},
		Role:         author.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Create(ctx, admin); err != nil {
		log.Fatalf("[CreateAdmin] Insert failed: %v", err)
	}

	log.Printf("[CreateAdmin] Admin account created: %s", email)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
