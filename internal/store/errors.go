package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a lookup by login matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUniqueViolation is returned when a write collides with a unique
	// index, e.g. a second tag with the same name for the same owner.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrTableNotInTransaction is returned by repositories obtained from a
	// [Tx] for a table that was not declared when the transaction started.
	ErrTableNotInTransaction = errors.New("table is not part of the transaction")

	// ErrUnknownTable is returned when a transaction declares a table the
	// local store does not have.
	ErrUnknownTable = errors.New("unknown table")

	// ErrTransactionFailed is returned when a transaction cannot be started
	// or committed. Nothing it wrote is visible afterwards.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrTransient marks a database failure that may succeed when retried:
	// a lost connection, a deadlock, a busy SQLite file.
	ErrTransient = errors.New("transient database failure")

	// ErrUnknownKind is returned when a remote operation is asked for an
	// entity kind that has no remote table.
	ErrUnknownKind = errors.New("unknown entity kind")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrMarshallingColumn is returned when a JSON column cannot be encoded
	// or decoded.
	ErrMarshallingColumn = errors.New("failed to marshal json column")
)
