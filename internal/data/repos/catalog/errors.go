package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/yungbote/dinocatalog-backend/internal/domain"
)

// classify maps a backing failure onto the catalog error kinds. Anything that
// is not already a catalog error means the store could not answer.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrDataIntegrity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrStoreUnavailable):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewError(domain.CodeStoreUnavailable, op, "query timed out", err)
	case errors.Is(err, context.Canceled):
		return domain.NewError(domain.CodeStoreUnavailable, op, "query canceled", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case strings.HasPrefix(code, "08"):
			return domain.NewError(domain.CodeStoreUnavailable, op, "connection failure ("+code+")", err)
		case strings.HasPrefix(code, "53"), strings.HasPrefix(code, "57P"):
			return domain.NewError(domain.CodeStoreUnavailable, op, "server unavailable ("+code+")", err)
		case strings.HasPrefix(code, "22"):
			return domain.NewError(domain.CodeDataIntegrity, op, pgErr.Message, err) // data_exception
		}
	}
	return domain.UnavailableError(op, err)
}

// isPgConnectionError reports SQLSTATE class 08 for callers that want to
// distinguish a dropped connection from other failures in logs.
func isPgConnectionError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08")
}

// isSeedConflict reports failures caused by another seeder writing the same
// rows at the same time: a duplicate primary key, a serialization failure, or
// SQLite refusing the write lock.
func isSeedConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "40001", "40P01":
			return true
		}
		return false
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch {
		case liteErr.Code == sqlite3.ErrBusy, liteErr.Code == sqlite3.ErrLocked:
			return true
		case liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey,
			liteErr.ExtendedCode == sqlite3.ErrConstraintUnique:
			return true
		}
	}
	return false
}
