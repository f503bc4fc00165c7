// Package server assembles the calculator backend: storage, providers,
// service registry, middleware chain and routes, plus graceful shutdown.
package server
