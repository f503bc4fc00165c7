// Package storage opens the calculator's SQLite database (pure Go driver,
// WAL journal) and stores user preferences. The history table it creates is
// read and written by the history domain package.
package storage
