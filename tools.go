//go:build tools

// Package tools pins the versions of the command-line tools used to lint,
// migrate, document and mock the Foodgram backend.
package tools

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs --parseInternal
//go:generate go run github.com/vektra/mockery/v2 --name Repository --dir internal/eventlog --output internal/eventlog --outpkg eventlog --filename mock_repository.go --inpackage

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
