// ABOUTME: History reconstruction and decomposition between rich logs and row tables.
// ABOUTME: The two transforms must stay exactly inverse for the fields they model.
package repo

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/models"
)

// Display fallbacks when a set_logs row cannot be tied to an exercise.
const (
	unknownExerciseID   = "unknown"
	unknownExerciseName = "Unknown Exercise"
)

// GetHistory reconstructs rich workout logs by joining workout_logs with
// set_logs, grouped per exercise, most recent first. On first run it
// migrates the legacy single-blob history into the normalized tables and
// reads again from those.
func (r *Repository) GetHistory() []models.WorkoutLog {
	headers := Table[models.WorkoutLogRow](r, TableWorkoutLogs)
	if len(headers) == 0 && r.migrateLegacyHistory() {
		return r.GetHistory()
	}

	sets := Table[models.SetLogRow](r, TableSetLogs)

	logs := make([]models.WorkoutLog, 0, len(headers))
	for _, h := range headers {
		rich := models.WorkoutLog{
			ID:         h.ID,
			WorkoutID:  h.WorkoutID,
			UserID:     h.UserID,
			Name:       h.Name,
			Date:       h.Date,
			Duration:   h.Duration,
			Note:       h.Note,
			CreatedAt:  h.CreatedAt,
			UpdatedAt:  h.UpdatedAt,
			SyncStatus: h.SyncStatus,
		}

		groups := make(map[string]*models.ExerciseLog)
		var order []string
		for _, s := range sets {
			if s.WorkoutLogID != h.ID {
				continue
			}
			exID, exName := resolveExerciseIdentity(s)
			g, ok := groups[exID]
			if !ok {
				g = &models.ExerciseLog{ID: exID, Name: exName}
				groups[exID] = g
				order = append(order, exID)
			}
			g.CompletedSets++
			g.Logs = append(g.Logs, s.Details.SetEntry)
		}
		for _, exID := range order {
			rich.Exercises = append(rich.Exercises, *groups[exID])
		}

		logs = append(logs, rich)
	}

	// Most recent first; stable so equal dates keep input order.
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	return logs
}

// resolveExerciseIdentity maps a set_logs row to the exercise it belongs to.
// Three-tier fallback: the row's exercise_id, then the id embedded in the
// details payload, then the literal "unknown" bucket. The display name comes
// from the details payload or a placeholder.
func resolveExerciseIdentity(s models.SetLogRow) (id, name string) {
	id = s.ExerciseID
	if id == "" {
		id = s.Details.ExerciseID
	}
	if id == "" {
		id = unknownExerciseID
	}
	name = s.Details.ExerciseName
	if name == "" {
		name = unknownExerciseName
	}
	return id, name
}

// SaveHistory decomposes rich logs into workout_logs and set_logs rows and
// overwrites both tables. Callers pass the complete desired history, not a
// delta. Each detail payload is re-annotated with its exercise's identity so
// reconstruction can regroup it.
func (r *Repository) SaveHistory(logs []models.WorkoutLog) error {
	headers := make([]models.WorkoutLogRow, 0, len(logs))
	var details []models.SetLogRow

	for _, l := range logs {
		headers = append(headers, headerRow(l))
		details = append(details, detailRows(l)...)
	}

	logsLock := r.tableLock(TableWorkoutLogs)
	logsLock.Lock()
	defer logsLock.Unlock()
	setsLock := r.tableLock(TableSetLogs)
	setsLock.Lock()
	defer setsLock.Unlock()

	if err := saveTable(r, TableWorkoutLogs, headers); err != nil {
		return err
	}
	return saveTable(r, TableSetLogs, details)
}

// SaveLog is the finish-workout write path: stamps the log pending, inserts
// one header row and one detail row per completed set, and returns the full
// log (id assigned) for immediate use without a re-read.
func (r *Repository) SaveLog(l *models.WorkoutLog) (*models.WorkoutLog, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	l.SyncStatus = models.SyncPending
	if l.Date.IsZero() {
		l.Date = now
	}

	if _, err := Upsert(r, TableWorkoutLogs, headerRow(*l)); err != nil {
		return nil, fmt.Errorf("save log: %w", err)
	}

	rows := detailRows(*l)
	if len(rows) > 0 {
		if _, err := Upsert(r, TableSetLogs, rows...); err != nil {
			return nil, fmt.Errorf("save log sets: %w", err)
		}
	}

	return l, nil
}

// MarkLogsSynced flips the named header rows to synced, one merge per row,
// leaving every other field untouched. A log written while a push is in
// flight is therefore never clobbered by persisting the push results.
func (r *Repository) MarkLogsSynced(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	type statusPatch struct {
		ID         string            `json:"id"`
		SyncStatus models.SyncStatus `json:"sync_status"`
	}
	patches := make([]statusPatch, 0, len(ids))
	for _, id := range ids {
		patches = append(patches, statusPatch{ID: id, SyncStatus: models.SyncSynced})
	}
	if _, err := Upsert(r, TableWorkoutLogs, patches...); err != nil {
		return fmt.Errorf("mark logs synced: %w", err)
	}
	return nil
}

// headerRow copies a rich log's header fields into a workout_logs row.
func headerRow(l models.WorkoutLog) models.WorkoutLogRow {
	return models.WorkoutLogRow{
		ID:         l.ID,
		UserID:     l.UserID,
		WorkoutID:  l.WorkoutID,
		Name:       l.Name,
		Date:       l.Date,
		Duration:   l.Duration,
		Note:       l.Note,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
		SyncStatus: l.SyncStatus,
	}
}

// detailRows produces one set_logs row per logged set across all exercises.
// Exercises with no logged sets contribute nothing.
func detailRows(l models.WorkoutLog) []models.SetLogRow {
	var rows []models.SetLogRow
	for _, ex := range l.Exercises {
		for _, entry := range ex.Logs {
			rows = append(rows, models.SetLogRow{
				ID:           uuid.NewString(),
				WorkoutLogID: l.ID,
				ExerciseID:   ex.ID,
				Details: models.SetDetails{
					SetEntry:     entry,
					ExerciseID:   ex.ID,
					ExerciseName: ex.Name,
				},
				CreatedAt: l.CreatedAt,
			})
		}
	}
	return rows
}

// migrateLegacyHistory decomposes the legacy rich-blob history into both
// normalized tables. Returns true if rows were produced; the legacy key is
// not consulted again once workout_logs is non-empty.
func (r *Repository) migrateLegacyHistory() bool {
	data, err := r.kv.GetItem(legacyHistoryKey)
	if err != nil || len(data) == 0 {
		return false
	}

	var legacy []models.WorkoutLog
	if err := json.Unmarshal(data, &legacy); err != nil {
		r.logger.Warn("corrupt legacy history blob, skipping migration", "err", err)
		return false
	}
	if len(legacy) == 0 {
		return false
	}

	r.logger.Info("migrating legacy workout history", "count", len(legacy))

	now := time.Now()
	for i := range legacy {
		if legacy[i].ID == "" {
			legacy[i].ID = uuid.NewString()
		}
		if legacy[i].CreatedAt.IsZero() {
			legacy[i].CreatedAt = now
		}
		if legacy[i].UpdatedAt.IsZero() {
			legacy[i].UpdatedAt = now
		}
		if legacy[i].SyncStatus == "" {
			legacy[i].SyncStatus = models.SyncPending
		}
	}

	if err := r.SaveHistory(legacy); err != nil {
		r.logger.Warn("migrate legacy history", "err", err)
		return false
	}
	return true
}
