// seed crea el usuario administrador inicial si no existe.
//
// Uso: go run ./cmd/seed
// Email y password se controlan con SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/embalse/deposito-api/internal/domain/entity"
	"github.com/embalse/deposito-api/internal/infrastructure/postgres"
	"github.com/embalse/deposito-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@embalse.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123!"
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("el usuario %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("usuario administrador creado: %s\n", email)
}
