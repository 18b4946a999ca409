package store

import "errors"

// Sentinel errors returned by repository methods. Every storage failure wraps
// exactly one of ErrStorageRead or ErrStorageWrite so callers can decide how
// to degrade with [errors.Is].
var (
	// ErrStorageRead is returned when a value cannot be read from the store.
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite is returned when a value cannot be written to or
	// removed from the store.
	ErrStorageWrite = errors.New("storage write failed")
)

// Low-level database operation errors, wrapped alongside the storage
// sentinels above.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExportFailed is returned when a snapshot cannot be written to disk.
	ErrExportFailed = errors.New("export failed")
)
