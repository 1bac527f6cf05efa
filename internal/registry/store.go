// Package registry persists configured instances and the current
// selection in sqlite. Writes are serialized through a single mutex;
// reads see the latest committed state.
package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vmunix/helmarr/internal/instance"
)

// ErrNotFound is returned when an instance record does not exist.
var ErrNotFound = errors.New("instance not found")

// Schema is the registry's sqlite schema.
const Schema = `
CREATE TABLE IF NOT EXISTS instances (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	label           TEXT NOT NULL,
	variant         TEXT NOT NULL,
	base_url        TEXT NOT NULL,
	api_key         TEXT NOT NULL,
	timeout_seconds INTEGER NOT NULL DEFAULT 60,
	headers         TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS selection (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	instance_id INTEGER NOT NULL DEFAULT 0
);

INSERT OR IGNORE INTO selection (id, instance_id) VALUES (1, 0);
`

// Store provides access to the instance registry.
type Store struct {
	db *sql.DB
	mu sync.Mutex // serializes writes; lost updates otherwise
}

// NewStore creates a registry store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Init applies the registry schema.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("init registry schema: %w", err)
	}
	return nil
}

// List returns all instances in insertion order.
func (s *Store) List(ctx context.Context) ([]instance.Instance, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, variant, base_url, api_key, timeout_seconds, headers
		FROM instances ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list instances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var instances []instance.Instance
	for rows.Next() {
		inst, err := scanInstance(rows)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate instances: %w", err)
	}

	return instances, nil
}

// Get retrieves an instance by ID. Returns ErrNotFound if absent.
func (s *Store) Get(ctx context.Context, id int64) (*instance.Instance, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, variant, base_url, api_key, timeout_seconds, headers
		FROM instances WHERE id = ?`, id)

	inst, err := scanInstance(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get instance %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get instance %d: %w", id, err)
	}
	return &inst, nil
}

// Add inserts a new instance and returns its assigned ID.
func (s *Store) Add(ctx context.Context, inst instance.Instance) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	headers, err := marshalHeaders(inst.Headers)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO instances (label, variant, base_url, api_key, timeout_seconds, headers)
		VALUES (?, ?, ?, ?, ?, ?)`,
		inst.Label, inst.Variant, inst.BaseURL, inst.APIKey, inst.TimeoutSeconds, headers)
	if err != nil {
		return 0, fmt.Errorf("insert instance: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// Update replaces a stored instance. Returns ErrNotFound if absent.
func (s *Store) Update(ctx context.Context, inst instance.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	headers, err := marshalHeaders(inst.Headers)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE instances
		SET label = ?, variant = ?, base_url = ?, api_key = ?, timeout_seconds = ?, headers = ?
		WHERE id = ?`,
		inst.Label, inst.Variant, inst.BaseURL, inst.APIKey, inst.TimeoutSeconds, headers, inst.ID)
	if err != nil {
		return fmt.Errorf("update instance %d: %w", inst.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update instance %d: %w", inst.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an instance. When the deleted instance was selected,
// selection falls back to the first remaining instance, or to empty, and
// selectionChanged reports that along with the new selection. Returns
// ErrNotFound if the instance does not exist.
func (s *Store) Delete(ctx context.Context, id int64) (selectionChanged bool, selectedID int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected, err := s.selected(ctx)
	if err != nil {
		return false, 0, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM instances WHERE id = ?`, id)
	if err != nil {
		return false, 0, fmt.Errorf("delete instance %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return false, 0, fmt.Errorf("delete instance %d: %w", id, ErrNotFound)
	}

	if selected != id {
		return false, 0, nil
	}

	var next int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM instances ORDER BY id LIMIT 1`).Scan(&next)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, 0, fmt.Errorf("find fallback instance: %w", err)
	}

	if err := s.setSelected(ctx, next); err != nil {
		return false, 0, err
	}

	return true, next, nil
}

// Selected returns the ID of the selected instance, zero when none.
func (s *Store) Selected(ctx context.Context) (int64, error) {
	return s.selected(ctx)
}

// Select marks an instance as selected. Zero clears the selection;
// any other ID must exist.
func (s *Store) Select(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != 0 {
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM instances WHERE id = ?`, id).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("select instance %d: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("select instance %d: %w", id, err)
		}
	}

	return s.setSelected(ctx, id)
}

func (s *Store) selected(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT instance_id FROM selection WHERE id = 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	return id, nil
}

func (s *Store) setSelected(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE selection SET instance_id = ? WHERE id = 1`, id); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstance(row rowScanner) (instance.Instance, error) {
	var inst instance.Instance
	var headers string

	err := row.Scan(&inst.ID, &inst.Label, &inst.Variant, &inst.BaseURL,
		&inst.APIKey, &inst.TimeoutSeconds, &headers)
	if err != nil {
		return inst, err
	}

	if err := json.Unmarshal([]byte(headers), &inst.Headers); err != nil {
		return inst, fmt.Errorf("decode headers: %w", err)
	}
	return inst, nil
}

func marshalHeaders(headers []instance.Header) (string, error) {
	if headers == nil {
		headers = []instance.Header{}
	}
	data, err := json.Marshal(headers)
	if err != nil {
		return "", fmt.Errorf("encode headers: %w", err)
	}
	return string(data), nil
}
