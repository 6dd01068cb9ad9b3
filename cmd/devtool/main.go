package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry(
		&TokenCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
		&MigrateCommand{},
		&SeedCommand{},
		&CheckDBCommand{},
		&DoctorCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		if !errors.Is(err, errNoCommand) {
			PrintError("%v", err)
		}
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}
}
