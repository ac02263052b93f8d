package directory

import (
	"context"
	"errors"
	"testing"

	"returns-notifier/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) (*PostgresDirectory, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresDirectory(db, logger.NewNoOpLogger()), mock
}

func TestPostgresDirectory_FindReseller(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT id, name FROM resellers").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Acme Returns"))

	r, err := dir.FindReseller(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 7, r.ID)
	assert.Equal(t, "Acme Returns", r.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDirectory_FindReseller_Absent(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT id, name FROM resellers").
		WithArgs(8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	r, err := dir.FindReseller(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestPostgresDirectory_FindReseller_QueryError(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT id, name FROM resellers").
		WithArgs(7).
		WillReturnError(errors.New("connection reset"))

	_, err := dir.FindReseller(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgresDirectory_FindContractor(t *testing.T) {
	dir, mock := newTestDirectory(t)

	cols := []string{"id", "type", "reseller_id", "name", "full_name", "email", "mobile"}
	mock.ExpectQuery("SELECT id, type, reseller_id, name, full_name, email, mobile FROM contractors").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "customer", 7, "J. Doe", "Jane Doe", "jane@example.com", "+491700000000"))

	c, err := dir.FindContractor(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "customer", c.Type)
	assert.Equal(t, 7, c.ResellerID)
	assert.Equal(t, "Jane Doe", c.FullName)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Equal(t, "+491700000000", c.Mobile)
}

func TestPostgresDirectory_FindContractor_NullOptionalColumns(t *testing.T) {
	dir, mock := newTestDirectory(t)

	cols := []string{"id", "type", "reseller_id", "name", "full_name", "email", "mobile"}
	mock.ExpectQuery("SELECT id, type, reseller_id, name, full_name, email, mobile FROM contractors").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(11, "customer", 7, "J. Doe", nil, nil, nil))

	c, err := dir.FindContractor(context.Background(), 11)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "", c.FullName)
	assert.Equal(t, "", c.Email)
	assert.Equal(t, "", c.Mobile)
	assert.Equal(t, "J. Doe", c.DisplayName())
}

func TestPostgresDirectory_FindEmployee(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT id, full_name FROM employees").
		WithArgs(21).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}).AddRow(21, "Carol Creator"))

	e, err := dir.FindEmployee(context.Background(), 21)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "Carol Creator", e.FullName)
}

func TestPostgresDirectory_FindEmployee_Absent(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT id, full_name FROM employees").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name"}))

	e, err := dir.FindEmployee(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestPostgresDirectory_NameOf(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT name FROM return_statuses").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("approved"))

	name, err := dir.NameOf(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "approved", name)
}

func TestPostgresDirectory_NameOf_UnknownCodeFallsBack(t *testing.T) {
	dir, mock := newTestDirectory(t)

	mock.ExpectQuery("SELECT name FROM return_statuses").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	name, err := dir.NameOf(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, "status #99", name)
}
