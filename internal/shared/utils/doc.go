// Package utils holds request validation shared by the HTTP handlers.
package utils
