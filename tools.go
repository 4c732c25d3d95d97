//go:build tools
// +build tools

package tools

// Build and maintenance tools pinned in go.mod:
// goose applies migrations by hand, swag regenerates docs/,
// benchstat compares benchmarks/aging runs, golangci-lint runs in CI.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "golang.org/x/perf/cmd/benchstat"
)
