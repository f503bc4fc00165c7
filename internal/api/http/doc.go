// Package http exposes the calculator over a JSON API built on gin.
//
// Routes:
//   - POST /calculate, /plot, /rewrite
//   - GET|DELETE /history, GET /history/export?format=json|yaml|toml
//   - GET|PUT /theme, POST /theme/toggle
//   - GET /services, POST /services/execute
//   - GET /, /health, /metrics/summary; POST /logs
//
// A number result is recorded in history. An undefined result answers 200
// with a warning. An evaluation error answers 422 with "Error: <message>".
package http
