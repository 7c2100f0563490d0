package sqlite

import (
	"database/sql"

	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// AppendOperation adds an operation to the log
func (t *storeTx) AppendOperation(op domain.Operation) error {
	_, err := t.tx.Exec(`
		INSERT INTO operations (uuid, kind, property, value, old_value, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, op.UUID, op.Kind.String(), op.Property, op.Value, op.OldValue, op.Timestamp)
	return err
}

// CreateTask registers a task with no properties
func (t *storeTx) CreateTask(uuid string) error {
	_, err := t.tx.Exec(`INSERT OR IGNORE INTO tasks (uuid) VALUES (?)`, uuid)
	return err
}

// SetProperty inserts or updates a task property
func (t *storeTx) SetProperty(uuid, property, value string) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO properties (uuid, property, value)
		VALUES (?, ?, ?)
	`, uuid, property, value)
	return err
}

// DeleteProperty removes a task property
func (t *storeTx) DeleteProperty(uuid, property string) error {
	_, err := t.tx.Exec(`DELETE FROM properties WHERE uuid = ? AND property = ?`, uuid, property)
	return err
}

// DeleteTask removes a task and all its properties. Its operations stay in
// the log.
func (t *storeTx) DeleteTask(uuid string) error {
	if _, err := t.tx.Exec(`DELETE FROM properties WHERE uuid = ?`, uuid); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM tasks WHERE uuid = ?`, uuid)
	return err
}

func (t *storeTx) taskExists(uuid string) (bool, error) {
	var n int
	err := t.tx.QueryRow(`SELECT COUNT(*) FROM tasks WHERE uuid = ?`, uuid).Scan(&n)
	return n > 0, err
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
