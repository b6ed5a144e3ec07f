// Package sqlite stores contact form messages in SQLite.
package sqlite
