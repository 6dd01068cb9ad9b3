package main

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/config"
)

// DoctorCommand checks the environment file, then the database
type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (.env + database)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Environment")
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	for _, w := range warnings {
		PrintWarning("%s", w)
	}
	if len(warnings) == 0 {
		PrintSuccess("Environment looks good")
	}

	PrintHeader("Database")
	if err := checkDatabase(context.Background()); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	PrintSuccess("All checks passed")
	return nil
}
