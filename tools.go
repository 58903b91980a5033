//go:build tools

package tools

// This file marks the CLI tools the repo depends on; versions are pinned
// through the tool directive in go.mod. It is not compiled into the binary.
//
// - github.com/matryer/moq: generates the *_mock_test.go files next to the
//   service packages' consumer interfaces (see the go:generate lines).
// - github.com/pressly/goose/v3/cmd/goose: authors the SQL migrations under
//   internal/adapter/postgres/migrations.
