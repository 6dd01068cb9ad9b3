package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/osse101/Foodgram_Go/internal/middleware"
)

// TokenCommand mints a bearer token for local testing against a dev server
type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Print a signed bearer token for a user id (uses JWT_SECRET)"
}

func (c *TokenCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id placed in the token subject")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *userID <= 0 {
		return fmt.Errorf("-user must be a positive user id")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if env := getEnv("ENVIRONMENT", "dev"); env == "prod" || env == "production" {
		PrintWarning("Minting a token with the production secret")
	}

	token, err := middleware.NewAuthenticator(secret).IssueToken(*userID, *ttl)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Println(token)
	return nil
}
