// Command createuser registers a legacy user account with a bcrypt-hashed
// password.
//
//	createuser --username admin --password s3cret!
//
// The password may come from CREATEUSER_PASSWORD instead of the flag.
package main

import (
	"fmt"
	"os"
	"strings"

	"langnghe/internal/config"
	"langnghe/internal/models"
	"langnghe/internal/repositories"
	"langnghe/internal/services"
	"langnghe/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}
	logger.Init(logger.Options{Production: cfg.IsProduction()})

	store, err := repositories.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.Close()

	if store.Name() == "memory" {
		logger.Fatal().Msg("DATABASE_URL is not set, a user in the in-memory backend would be lost on exit")
	}

	user, err := run(os.Args[1:], services.NewUserService(store))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create user")
	}
	logger.Info().Uint("id", user.ID).Str("username", user.Username).Msg("User created")
}

// run reads the account from args (falling back to CREATEUSER_* variables)
// and registers it.
func run(args []string, users *services.UserService) (*models.User, error) {
	flags := pflag.NewFlagSet("createuser", pflag.ContinueOnError)
	flags.StringP("username", "u", "", "username of the new account")
	flags.StringP("password", "p", "", "password of the new account")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("CREATEUSER")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(v.GetString("username")),
		Password: v.GetString("password"),
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(user); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	if err := users.RegisterUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
