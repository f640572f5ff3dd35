// Command createadmin seeds the first administrator account from the
// ADMIN_* configuration so a fresh deployment has someone able to log in
// and create the rest of the accounts over the API.
package main

import (
	"context"
	"errors"

	"github.com/rta-cma/camtrack/internal/config"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

func main() {
	log := logger.NewLogger("camtrack-createadmin")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Admin.Username == "" || cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Fatal().Msg("ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hash, err := utils.HashPassword(cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	users := store.NewUserRepository(db, log)
	admin, err := users.CreateUser(ctx, models.User{
		Email:          cfg.Admin.Email,
		Username:       cfg.Admin.Username,
		FullName:       cfg.Admin.FullName,
		HashedPassword: hash,
		Role:           models.RoleAdministrator,
		IsActive:       true,
		IsVerified:     true,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info().Str("username", cfg.Admin.Username).Msg("administrator account already exists")
			return
		}
		log.Fatal().Err(err).Msg("error creating administrator account")
	}

	log.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("administrator account created")
}
