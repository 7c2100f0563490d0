package sqlite

import (
	"cmp"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"taskjournal/internal/config"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"

	_ "modernc.org/sqlite"
)

const (
	schemaVersion = "1"
	databaseName  = "taskjournal.sqlite3"
)

// Store implements ports.OperationStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
	logger *slog.Logger
}

// Ensure Store implements OperationStore
var _ ports.OperationStore = (*Store)(nil)

// NewStore creates a new SQLite store
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Open initializes the store in the given data directory
func (s *Store) Open(dataPath string) error {
	dataPath, err := config.ExpandHome(dataPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.dbPath = filepath.Join(dataPath, databaseName)

	db, err := sql.Open("sqlite", s.dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS operations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL,
			property TEXT NOT NULL DEFAULT '',
			value TEXT,
			old_value TEXT,
			timestamp INTEGER NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS tasks (
			uuid TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS properties (
			uuid TEXT NOT NULL,
			property TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (uuid, property)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_operations_uuid ON operations(uuid);
		CREATE INDEX IF NOT EXISTS idx_operations_kind ON operations(kind);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	s.logger.Debug("store opened", "path", s.dbPath)
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// GetTask retrieves a task's current properties
func (s *Store) GetTask(uuid string) (*domain.Task, error) {
	var found string
	err := s.db.QueryRow(`SELECT uuid FROM tasks WHERE uuid = ?`, uuid).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, uuid)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT property, value FROM properties WHERE uuid = ?`, uuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	task := &domain.Task{UUID: uuid, Properties: make(map[string]string)}
	for rows.Next() {
		var prop, value string
		if err := rows.Scan(&prop, &value); err != nil {
			return nil, err
		}
		task.Properties[prop] = value
	}
	return task, rows.Err()
}

// ListTasks returns every stored task ordered by entry time
func (s *Store) ListTasks() ([]domain.Task, error) {
	rows, err := s.db.Query(`
		SELECT t.uuid, p.property, p.value
		FROM tasks t
		LEFT JOIN properties p ON p.uuid = t.uuid
		ORDER BY t.uuid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var (
			uuid        string
			prop, value sql.NullString
		)
		if err := rows.Scan(&uuid, &prop, &value); err != nil {
			return nil, err
		}
		if len(tasks) == 0 || tasks[len(tasks)-1].UUID != uuid {
			tasks = append(tasks, domain.Task{UUID: uuid, Properties: make(map[string]string)})
		}
		if prop.Valid {
			tasks[len(tasks)-1].Properties[prop.String] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortByEntry(tasks)
	return tasks, nil
}

// GetTaskOperations returns a task's operations in storage order
func (s *Store) GetTaskOperations(uuid string) ([]domain.Operation, error) {
	return s.queryOperations(`
		SELECT kind, uuid, property, value, old_value, timestamp
		FROM operations WHERE uuid = ? ORDER BY id
	`, uuid)
}

// GetUndoOperations returns the latest transaction, starting at its undo point
func (s *Store) GetUndoOperations() ([]domain.Operation, error) {
	return s.queryOperations(`
		SELECT kind, uuid, property, value, old_value, timestamp
		FROM operations
		WHERE id >= (SELECT COALESCE(MAX(id), 0) FROM operations WHERE kind = ?)
		ORDER BY id
	`, domain.OpUndoPoint.String())
}

func (s *Store) queryOperations(query string, args ...any) ([]domain.Operation, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		var (
			kind            string
			op              domain.Operation
			value, oldValue sql.NullString
		)
		if err := rows.Scan(&kind, &op.UUID, &op.Property, &value, &oldValue, &op.Timestamp); err != nil {
			return nil, err
		}
		if op.Kind, err = domain.ParseOperationKind(kind); err != nil {
			return nil, err
		}
		op.Value = nullableString(value)
		op.OldValue = nullableString(oldValue)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

// CommitOperations records ops after a new undo point and applies them to
// the stored tasks, atomically
func (s *Store) CommitOperations(ops []domain.Operation) (err error) {
	tx, err := s.beginTx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.AppendOperation(domain.Operation{Kind: domain.OpUndoPoint}); err != nil {
		return err
	}

	for _, op := range ops {
		if err = op.Validate(); err != nil {
			return err
		}
		if err = tx.AppendOperation(op); err != nil {
			return err
		}
		if err = apply(tx, op); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("operations committed", "count", len(ops))
	return nil
}

// apply mirrors one operation onto the task tables
func apply(tx *storeTx, op domain.Operation) error {
	switch op.Kind {
	case domain.OpCreate:
		return tx.CreateTask(op.UUID)
	case domain.OpDelete:
		return tx.DeleteTask(op.UUID)
	case domain.OpUpdate:
		exists, err := tx.taskExists(op.UUID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: update of %s", domain.ErrTaskNotFound, op.UUID)
		}
		if op.Value == nil {
			return tx.DeleteProperty(op.UUID, op.Property)
		}
		return tx.SetProperty(op.UUID, op.Property, *op.Value)
	}
	return nil
}

// beginTx starts a new transaction
func (s *Store) beginTx() (*storeTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func sortByEntry(tasks []domain.Task) {
	entry := func(t domain.Task) int64 {
		v, ok := t.Get(domain.PropEntry)
		if !ok {
			return 0
		}
		epoch, err := domain.ParseDate(v, nil)
		if err != nil {
			return 0
		}
		return epoch
	}
	slices.SortStableFunc(tasks, func(a, b domain.Task) int {
		return cmp.Compare(entry(a), entry(b))
	})
}
