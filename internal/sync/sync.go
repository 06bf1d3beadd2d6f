// ABOUTME: Sync engine reconciling local pending rows with the remote store.
// ABOUTME: Push-then-pull per cycle; pending local rows always survive a pull.
package sync

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/remote"
	"github.com/harperreed/fittrack/internal/repo"
)

// Syncer orchestrates push-then-pull synchronization between the data
// repository and the remote API. A single in-flight guard drops re-entrant
// invocations triggered by rapid auth events; it is not persisted.
type Syncer struct {
	cfg      *Config
	repo     *repo.Repository
	client   remote.Client
	logger   *log.Logger
	inFlight atomic.Bool
}

// NewSyncer creates a Syncer over the given repository and remote client.
func NewSyncer(cfg *Config, r *repo.Repository, client remote.Client, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Syncer{
		cfg:    cfg,
		repo:   r,
		client: client,
		logger: logger,
	}
}

// Sync runs one full push-then-pull cycle. It is a no-op when a cycle is
// already in flight or no user identity is configured. Failures inside the
// cycle are logged and isolated; Sync itself never reports them.
func (s *Syncer) Sync(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debug("sync already in flight, skipping")
		return
	}
	defer s.inFlight.Store(false)

	if s.cfg.UserID == "" {
		s.logger.Debug("no user identity, skipping sync")
		return
	}

	s.pushData(ctx)
	s.pullData(ctx)
}

// pushData attempts remote writes for every pending row, table by table.
// A failed row stays pending and is retried on the next cycle; a failure
// never aborts the rest of the batch.
func (s *Syncer) pushData(ctx context.Context) {
	s.pushHistory(ctx)
	s.pushWorkouts(ctx)
}

func (s *Syncer) pushHistory(ctx context.Context) {
	logs := s.repo.GetHistory()

	var pushed []string
	for i := range logs {
		if logs[i].SyncStatus != models.SyncPending {
			continue
		}

		if err := s.client.CreateWorkoutLog(ctx, s.cfg.UserID, logs[i]); err != nil {
			s.logger.Warn("push workout log", "id", logs[i].ID, "err", err)
			continue
		}
		pushed = append(pushed, logs[i].ID)
	}

	// Confirmed rows are flipped individually rather than by rewriting the
	// table, so logs saved while the push was in flight are preserved.
	if err := s.repo.MarkLogsSynced(pushed...); err != nil {
		s.logger.Error("persist pushed history", "err", err)
	}
}

func (s *Syncer) pushWorkouts(ctx context.Context) {
	workouts := s.repo.AllWorkouts()

	var results []repo.WorkoutPushResult
	for i := range workouts {
		if workouts[i].SyncStatus != models.SyncPending {
			continue
		}
		localID := workouts[i].ID

		if workouts[i].Deleted() {
			if err := s.client.DeleteWorkout(ctx, s.cfg.UserID, localID); err != nil {
				s.logger.Warn("push workout delete", "id", localID, "err", err)
				continue
			}
			workouts[i].SyncStatus = models.SyncSynced
			results = append(results, repo.WorkoutPushResult{LocalID: localID, Workout: workouts[i]})
			continue
		}

		created, err := s.client.CreateWorkout(ctx, s.cfg.UserID, workouts[i])
		if err != nil {
			s.logger.Warn("push workout", "id", localID, "err", err)
			continue
		}
		workouts[i].SyncStatus = models.SyncSynced
		// The remote store is authoritative for identity once confirmed.
		if created.ID != "" {
			workouts[i].ID = created.ID
		}
		if !created.CreatedAt.IsZero() {
			workouts[i].CreatedAt = created.CreatedAt
		}
		results = append(results, repo.WorkoutPushResult{LocalID: localID, Workout: workouts[i]})
	}

	// Confirmed rows are replaced by pre-push id under the table lock, so
	// templates saved while the push was in flight are preserved.
	if err := s.repo.ApplyWorkoutPushResults(results); err != nil {
		s.logger.Error("persist pushed workouts", "err", err)
	}
}

// pullData installs remote-authoritative state per table. Local rows still
// pending are prepended to the incoming set so a pull never discards an
// unpushed write; a fetch failure leaves that table untouched.
func (s *Syncer) pullData(ctx context.Context) {
	s.pullHistory(ctx)
	s.pullWorkouts(ctx)
}

func (s *Syncer) pullHistory(ctx context.Context) {
	remoteLogs, err := s.client.FetchHistory(ctx, s.cfg.UserID)
	if err != nil {
		s.logger.Warn("pull history", "err", err)
		return
	}

	merged := make([]models.WorkoutLog, 0, len(remoteLogs))
	for _, l := range s.repo.GetHistory() {
		if l.SyncStatus == models.SyncPending {
			merged = append(merged, l)
		}
	}
	for _, l := range remoteLogs {
		l.SyncStatus = models.SyncSynced
		merged = append(merged, l)
	}

	if err := s.repo.SaveHistory(merged); err != nil {
		s.logger.Error("persist pulled history", "err", err)
	}
}

func (s *Syncer) pullWorkouts(ctx context.Context) {
	remoteWorkouts, err := s.client.FetchWorkouts(ctx, s.cfg.UserID)
	if err != nil {
		s.logger.Warn("pull workouts", "err", err)
		return
	}

	merged := make([]models.Workout, 0, len(remoteWorkouts))
	for _, w := range s.repo.AllWorkouts() {
		if w.SyncStatus == models.SyncPending {
			merged = append(merged, w)
		}
	}
	for _, w := range remoteWorkouts {
		w.SyncStatus = models.SyncSynced
		merged = append(merged, w)
	}

	if err := s.repo.SaveWorkouts(merged); err != nil {
		s.logger.Error("persist pulled workouts", "err", err)
	}
}
