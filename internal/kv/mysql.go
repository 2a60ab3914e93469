package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQL keeps values in a two-column table.
type MySQL struct {
	db    *sql.DB
	table string
}

// NewMySQL returns a store over table.  Call EnsureSchema once before use
// when the table may not exist.
func NewMySQL(db *sql.DB, table string) *MySQL {
	if table == "" {
		table = "kv_store"
	}
	return &MySQL{db: db, table: table}
}

// EnsureSchema creates the backing table if needed.
func (m *MySQL) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (k VARCHAR(191) NOT NULL PRIMARY KEY, v TEXT NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP)",
		m.table))
	return err
}

func (m *MySQL) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := m.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT v FROM %s WHERE k=? LIMIT 1", m.table), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrMissing
	}
	return v, err
}

func (m *MySQL) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)", m.table),
		key, value)
	return err
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE k=?", m.table), key)
	return err
}
