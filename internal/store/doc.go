// Package store provides persistent storage for the portfolio backend using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture:
//
//   - AdminStore: admin credential records (signup insert, login lookup)
//   - ProjectStore: portfolio project records
//
// SQLiteStore implements both interfaces in a single struct backed by one
// database file. The schema is created automatically on first open.
//
// # Uniqueness
//
// Admin accounts are unique on both mobile and email; project records are
// unique on project_url. Violations surface as ErrAccountExists and
// ErrProjectExists rather than raw driver errors, so handlers can map them to
// client-facing responses. Duplicate prevention lives entirely in these
// database constraints; there is no read-before-write check.
package store
