//go:build integration

// Package testdb provides helpers for integration tests that run against a
// real PostgreSQL database. Tests using it are skipped when no test database
// URL is configured.
package testdb
