package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Thasmi-03/FitFlow-Api/internal/core/domain"
	"github.com/Thasmi-03/FitFlow-Api/internal/infrastructure/config"
	mongodb "github.com/Thasmi-03/FitFlow-Api/internal/infrastructure/db/mongo"
	"github.com/Thasmi-03/FitFlow-Api/pkg/logger"
)

// Seeds the first admin account. Admins cannot self-register, so a deployment
// needs one bootstrapped out of band before anyone can approve stylers and
// partners. Safe to run repeatedly: an existing admin is left untouched.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.Init(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@fitflow.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is empty")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection")
	}
	defer client.Disconnect(context.Background())

	repo := mongodb.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	if existing, err := repo.FindByEmail(ctx, email); err == nil {
		log.Info().Str("id", existing.ID).Str("email", email).Msg("admin already exists")
		return
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		log.Fatal().Err(err).Msg("lookup admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	admin, err := repo.Create(ctx, &domain.Account{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Approved:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create admin")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin account created")
}
