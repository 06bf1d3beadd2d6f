// ABOUTME: Repository organizes the KV store into named relational-shaped tables.
// ABOUTME: Generic load/save/upsert helpers with per-table locking and id merge.
package repo

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/store"
)

// Logical table names persisted in the KV store.
const (
	TableExercises        = "exercises"
	TableWorkouts         = "workouts"
	TableWorkoutLogs      = "workout_logs"
	TableSetLogs          = "set_logs"
	TableBodyMeasurements = "body_measurements"

	// Legacy single-blob keys consulted only by one-time migration.
	legacyWorkoutsKey = "saved_workouts"
	legacyHistoryKey  = "workout_history"
)

// Repository is the single source of truth for on-device structured data.
// Each table write goes through a per-table mutex so UI saves and sync
// push/pull cannot interleave read-modify-write cycles destructively.
type Repository struct {
	kv     store.KV
	logger *log.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Repository over the given KV store.
func New(kv store.KV, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Repository{
		kv:     kv,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	return r.kv.Close()
}

// tableLock returns the mutex guarding writes to the named table.
func (r *Repository) tableLock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	return l
}

// Table loads and deserializes the named table. Missing keys, storage read
// failures, and malformed JSON all yield an empty slice; reads never fail.
func Table[T any](r *Repository, name string) []T {
	data, err := r.kv.GetItem(name)
	if err != nil {
		r.logger.Warn("read table", "table", name, "err", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		r.logger.Warn("corrupt table, treating as empty", "table", name, "err", err)
		return nil
	}
	return rows
}

// saveTable serializes rows and overwrites the named table wholesale.
// Callers that need the read-modify-write protected must hold the table lock.
func saveTable[T any](r *Repository, name string, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal table %s: %w", name, err)
	}
	if err := r.kv.SetItem(name, data); err != nil {
		return fmt.Errorf("save table %s: %w", name, err)
	}
	return nil
}

// rawRow is a table row viewed as loose JSON fields, used by Upsert so the
// merge keeps fields the caller's type did not specify.
type rawRow map[string]json.RawMessage

func (row rawRow) id() string {
	raw, ok := row["id"]
	if !ok {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return ""
	}
	return id
}

// Upsert inserts or merges items into the named table by id. Items without
// an id are assigned a generated one. An existing row with the same id is
// shallow-merged: fields present on the incoming item override, fields it
// does not carry are retained. Returns the items as stored, ids included.
func Upsert[T any](r *Repository, name string, items ...T) ([]T, error) {
	lock := r.tableLock(name)
	lock.Lock()
	defer lock.Unlock()

	rows := Table[rawRow](r, name)
	for i := range items {
		incoming, err := toRawRow(items[i])
		if err != nil {
			return nil, fmt.Errorf("upsert into %s: %w", name, err)
		}

		id := incoming.id()
		if id == "" {
			id = uuid.NewString()
			idJSON, _ := json.Marshal(id)
			incoming["id"] = idJSON
		}

		merged := incoming
		found := false
		for j, row := range rows {
			if row.id() != id {
				continue
			}
			for k, v := range incoming {
				row[k] = v
			}
			rows[j] = row
			merged = row
			found = true
			break
		}
		if !found {
			rows = append(rows, incoming)
		}

		if err := fromRawRow(merged, &items[i]); err != nil {
			return nil, fmt.Errorf("upsert into %s: %w", name, err)
		}
	}

	if err := saveTable(r, name, rows); err != nil {
		return nil, err
	}
	return items, nil
}

func toRawRow(item any) (rawRow, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var row rawRow
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func fromRawRow(row rawRow, out any) error {
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
