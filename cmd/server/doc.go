// Package main is the entry point for the scientific calculator backend.
//
// The server evaluates expressions with degree or radian trigonometry, samples
// expressions in x for plotting, and keeps a calculation history and the
// display theme in SQLite.
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000 -db data/calculator.db -unit deg
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
