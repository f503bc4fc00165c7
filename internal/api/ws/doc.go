// Package ws serves the /stream WebSocket.
//
// Clients send {"type": "evaluate" | "sample" | "ping", "expression", "unit",
// "precision"}. Evaluations answer with a single "result" message; samples
// stream "sample_start", one "point" per sample in ascending x, then
// "complete" with the gap count and finite y-range. Failures are "error"
// messages and leave the connection open.
package ws
