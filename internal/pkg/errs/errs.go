// Package errs is the error toolkit shared by every layer. Sentinel values
// live in domain_errors.go; infrastructure failures get marked with one of
// them so handlers can map errors.Is checks onto HTTP statuses without
// losing the original cause or its stack.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark classifies err as markErr for errors.Is while keeping err as the
// cause. A repository error marked ErrDatabaseOperationFailed still prints
// the pgx detail in logs but renders as a 500 at the edge.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the first maxLines of the verbose error chain,
// enough for the request log without dumping whole stacks per request.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
