// Package directory implements the entity lookups backing notification
// dispatch: resellers, contractors and employees in PostgreSQL, permitted
// recipients in Redis.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"returns-notifier/internal/common/logger"
	"returns-notifier/internal/models"
)

// PostgresDirectory reads the directory tables. Absent rows are reported
// as a nil entity, never as an error.
type PostgresDirectory struct {
	db  *sql.DB
	log logger.Logger
}

// NewPostgresDirectory creates a directory over an open database handle.
func NewPostgresDirectory(db *sql.DB, log logger.Logger) *PostgresDirectory {
	return &PostgresDirectory{db: db, log: log}
}

// FindReseller looks up a reseller by id.
func (d *PostgresDirectory) FindReseller(ctx context.Context, id int) (*models.Reseller, error) {
	var r models.Reseller
	err := d.db.QueryRowContext(ctx,
		`SELECT id, name FROM resellers WHERE id = $1`, id,
	).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query reseller %d: %w", id, err)
	}
	return &r, nil
}

// FindContractor looks up a contractor by id.
func (d *PostgresDirectory) FindContractor(ctx context.Context, id int) (*models.Contractor, error) {
	var (
		c        models.Contractor
		fullName sql.NullString
		email    sql.NullString
		mobile   sql.NullString
	)
	err := d.db.QueryRowContext(ctx,
		`SELECT id, type, reseller_id, name, full_name, email, mobile FROM contractors WHERE id = $1`, id,
	).Scan(&c.ID, &c.Type, &c.ResellerID, &c.Name, &fullName, &email, &mobile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contractor %d: %w", id, err)
	}
	c.FullName = fullName.String
	c.Email = email.String
	c.Mobile = mobile.String
	return &c, nil
}

// FindEmployee looks up an employee by id.
func (d *PostgresDirectory) FindEmployee(ctx context.Context, id int) (*models.Employee, error) {
	var e models.Employee
	err := d.db.QueryRowContext(ctx,
		`SELECT id, full_name FROM employees WHERE id = $1`, id,
	).Scan(&e.ID, &e.FullName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee %d: %w", id, err)
	}
	return &e, nil
}

// NameOf resolves a complaint status code to its display name. Unknown
// codes fall back to a generated label so template rendering can proceed.
func (d *PostgresDirectory) NameOf(ctx context.Context, code int) (string, error) {
	var name string
	err := d.db.QueryRowContext(ctx,
		`SELECT name FROM return_statuses WHERE code = $1`, code,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		d.log.Debug("status code has no configured name", map[string]interface{}{"code": code})
		return fmt.Sprintf("status #%d", code), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query status name for %d: %w", code, err)
	}
	return name, nil
}
