// ABOUTME: SyncStatus enum shared by all syncable records.
// ABOUTME: Pending rows are local-only; synced rows mirror the remote store.
package models

// SyncStatus tracks whether a record has been confirmed on the remote store.
type SyncStatus string

const (
	// SyncPending marks a record created or modified locally and not yet
	// confirmed written to the remote store.
	SyncPending SyncStatus = "pending"

	// SyncSynced marks a record confirmed present remotely with the local
	// copy believed current.
	SyncSynced SyncStatus = "synced"

	// SyncDirty is reserved for modified-after-sync tracking. The merge
	// logic does not act on it today.
	SyncDirty SyncStatus = "dirty"
)
