// Package postgresql owns the bun database handle and the claim/validation
// helpers every repository shares.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/pkg/config"
)

type Database struct {
	*bun.DB
}

func NewDatabase(cfg *config.Config) *Database {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUsername, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	return &Database{DB: db}
}

// CheckClaims pulls the caller's claims out of the context and, when roles
// are given, requires one of them.
func (d Database) CheckClaims(ctx context.Context, roles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("claims not found in context"), http.StatusUnauthorized)
	}

	if len(roles) > 0 && !claims.Authorized(roles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct requires the named fields of request to be set. Pointer
// fields must be non-nil and non-empty, value fields non-zero.
func (d Database) ValidateStruct(request interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	for _, name := range requiredFields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			missing = append(missing, name)
			continue
		}
		switch {
		case f.Kind() == reflect.Ptr && f.IsNil():
			missing = append(missing, name)
		case f.Kind() == reflect.Ptr && f.Elem().Kind() == reflect.String && f.Elem().String() == "":
			missing = append(missing, name)
		case f.Kind() != reflect.Ptr && f.IsZero():
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return web.NewRequestError(
			errors.Errorf("required fields are missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}

	return nil
}

// DeleteRow soft deletes a row, stamping the caller from the context claims.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET deleted_at = ?, deleted_by = ? WHERE id = ? AND deleted_at IS NULL`, table)

	result, err := d.ExecContext(ctx, query, time.Now(), claims.UserId, id)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading affected rows"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.Errorf("row not found in %s", table), http.StatusNotFound)
	}

	return nil
}
