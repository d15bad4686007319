package exceptions

import (
	"errors"

	"github.com/lib/pq"
)

const pgForeignKeyViolation pq.ErrorCode = "23503"

// foreignKeyViolation reports whether err carries a postgres foreign key
// violation and returns the name of the violated constraint.
func foreignKeyViolation(err error) (string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return pqErr.Constraint, true
	}
	return "", false
}
