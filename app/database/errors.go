package database

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// The error kinds every caller of this package matches against. The
// repository never recovers from a failure; it classifies it and hands
// it up unchanged.
var (
	// ErrNotFound covers both "no such row" and "row owned by someone
	// else". Callers cannot tell the two apart and must not try to.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is a uniqueness constraint failure (username taken,
	// course code reused, assignment graded twice, ...).
	ErrDuplicate = errors.New("duplicate value for a unique field")

	// ErrForeignKey means a referenced student or course does not exist
	// under the acting owner.
	ErrForeignKey = errors.New("referenced record not found")

	// ErrInUse blocks deletions that would orphan dependent rows.
	ErrInUse = errors.New("record still has dependent records")

	// ErrValidation is raised before a statement ever reaches the
	// database, for missing required fields.
	ErrValidation = errors.New("missing or invalid field")

	// ErrBadCredentials is the single failure shape for login: unknown
	// username and wrong password are deliberately indistinguishable.
	ErrBadCredentials = errors.New("invalid username or password")

	// ErrConfirmation rejects a destructive operation whose
	// confirmation text did not match the required literal.
	ErrConfirmation = errors.New("confirmation text does not match")
)

// translateError classifies a SQLite failure into one of the sentinel
// errors above. onDelete distinguishes the two faces of a foreign key
// failure: during a delete the row still has dependents (ErrInUse),
// during an insert or update the referenced row is missing
// (ErrForeignKey).
func translateError(err error, onDelete bool) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		// SQLITE_CONSTRAINT_TRIGGER is what SQLite raises for an
		// ON DELETE RESTRICT action; plain FOREIGNKEY covers missing
		// references on insert/update.
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			if onDelete {
				return fmt.Errorf("%w: %v", ErrInUse, err)
			}
			return fmt.Errorf("%w: %v", ErrForeignKey, err)
		}
	}
	return err
}
