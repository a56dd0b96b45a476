package xerrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Postgres error codes the normalizer cares about.
const (
	pgNotNullViolation = "23502"
	pgCheckViolation   = "23514"
	pgUniqueViolation  = "23505"
	pgInvalidText      = "22P02"
)

// Normalize classifies an arbitrary failure into an *Error. It is pure: the
// same input always yields the same classification, and it never panics.
// Precedence, first match wins:
//  1. a validation failure produced by the request validator
//  2. store not-null / check constraint violation
//  3. store type/format mismatch on a key field
//  4. store unique constraint violation
//  5. any other already-classified *Error, passed through unchanged
//  6. any other error, message preserved
//  7. anything else
func Normalize(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind == KindValidationFailed {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgCheckViolation:
			field := pgErr.ColumnName
			if field == "" {
				field = constraintField(pgErr.ConstraintName)
			}
			return &Error{
				Kind:    KindValidationFailed,
				Message: "Invalid value for " + field,
				Sources: []Source{{Path: field, Message: pgErr.Message}},
				cause:   err,
			}
		case pgInvalidText:
			return &Error{
				Kind:    KindValidationFailed,
				Message: "Invalid Id",
				Sources: []Source{{Path: "", Message: pgErr.Message}},
				cause:   err,
			}
		case pgUniqueViolation:
			field := constraintField(pgErr.ConstraintName)
			return &Error{
				Kind:    KindConflict,
				Message: field + " already exists",
				Sources: []Source{{Path: field, Message: field + " already exists"}},
				cause:   err,
			}
		}
	}

	if errors.As(err, &appErr) {
		return appErr
	}

	if err != nil {
		return &Error{
			Kind:    KindUnknown,
			Message: err.Error(),
			Sources: []Source{{Path: "", Message: err.Error()}},
			cause:   err,
		}
	}

	return &Error{
		Kind:    KindUnknown,
		Message: "Something went wrong",
		Sources: []Source{{Path: "", Message: "Something went wrong"}},
	}
}

// constraintField extracts the column from a conventional constraint name,
// e.g. "users_email_key" -> "email". Falls back to the raw name.
func constraintField(constraint string) string {
	name := strings.TrimSuffix(constraint, "_key")
	name = strings.TrimSuffix(name, "_unique")
	if i := strings.Index(name, "_"); i >= 0 && i+1 < len(name) {
		return name[i+1:]
	}
	if name == "" {
		return "value"
	}
	return name
}

// GRPCStatus renders a classified error as a gRPC status. Validation sources
// ride along as BadRequest field violations so RPC callers get the same
// per-field breakdown the HTTP envelope carries.
func GRPCStatus(e *Error) *status.Status {
	st := status.New(GRPCCode(e.Kind), e.Message)
	if e.Kind != KindValidationFailed || len(e.Sources) == 0 {
		return st
	}

	br := &errdetails.BadRequest{}
	for _, s := range e.Sources {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       s.Path,
			Description: s.Message,
		})
	}
	detailed, err := st.WithDetails(br)
	if err != nil {
		return st
	}
	return detailed
}
