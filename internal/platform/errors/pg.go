package errors

// Postgres error classification

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the dream store cares about
const (
	pgErrUniqueViolation           = "23505"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"
	pgErrNumericValueOutOfRange    = "22003"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
	pgErrReadOnlyTransaction  = "25006"
	pgErrCannotConnectNow     = "57P03"
	pgErrUndefinedTable       = "42P01"
)

// ExtractPgError returns the *pgconn.PgError at the root of err
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique violation (for example a reused dream id)
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsUndefinedTable reports a query against a table that is not migrated yet
func IsUndefinedTable(err error) bool { return IsSQLState(err, pgErrUndefinedTable) }

// IsNoRows reports pgx.ErrNoRows anywhere in the chain
func IsNoRows(err error) bool { return stderrs.Is(err, pgx.ErrNoRows) }

// DBErrorCode maps a Postgres error to an ErrorCode; !ok means err is not a PgError
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgErrNotNullViolation, pgErrCheckViolation:
		return ErrorCodeValidation, true
	case pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation, pgErrNumericValueOutOfRange:
		return ErrorCodeInvalidArgument, true
	case pgErrReadOnlyTransaction, pgErrCannotConnectNow:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// FromPostgres wraps a pg error with its mapped code; nil stays nil.
// pgx.ErrNoRows maps to NotFound.
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if IsNoRows(err) {
		return Wrap(err, ErrorCodeNotFound, msg)
	}
	if code, ok := DBErrorCode(err); ok {
		e := Wrap(err, code, msg)
		if pgErr, _ := ExtractPgError(err); pgErr.ColumnName != "" {
			e = WithField(e, pgErr.ColumnName)
		}
		return e
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is the formatted form of FromPostgres
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports a transient Postgres condition. Context cancellation is
// never retryable here.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable, pgErrCannotConnectNow:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "could not serialize access") ||
		strings.Contains(s, "terminating connection due to administrator command")
}
