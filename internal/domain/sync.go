package domain

import "time"

// SyncState is the per-job checkpoint row. LastPage is the resume cursor for
// paginated sources: 0 means start from the first page.
type SyncState struct {
	ID           int64     `db:"id"`
	SourceID     string    `db:"source_id"`
	LastSyncedAt time.Time `db:"last_synced_at"`
	LastPage     int       `db:"last_page"`
	TotalSynced  int64     `db:"total_synced"`
}

// Result is the standardized outcome of one job run. Runs never fail with an
// error; failures are reported through Success and Message.
type Result struct {
	SourceID     string
	Success      bool
	Message      string
	TotalFetched int
	Inserted     int
	Updated      int
	Skipped      int
	Pages        int
	Duration     time.Duration
}
