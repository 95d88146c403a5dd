package audit

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/playpong/backend/internal/models"
)

// Recorder accepts connection audit entries. Implementations must not block.
type Recorder interface {
	Record(e models.ConnectionEvent)
}

// NopRecorder discards entries. Used when no database is configured.
type NopRecorder struct{}

func (NopRecorder) Record(models.ConnectionEvent) {}

// DBRecorder queues entries and writes them to Postgres from a single worker.
type DBRecorder struct {
	db    *sqlx.DB
	queue chan models.ConnectionEvent
}

func NewDBRecorder(db *sqlx.DB, queueSize int) *DBRecorder {
	if queueSize <= 0 {
		queueSize = 128
	}
	return &DBRecorder{
		db:    db,
		queue: make(chan models.ConnectionEvent, queueSize),
	}
}

// Record enqueues e, dropping it when the queue is full.
func (r *DBRecorder) Record(e models.ConnectionEvent) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	select {
	case r.queue <- e:
	default:
		log.Printf("[AUDIT] queue full, dropping %s event for connection %s", e.Action, e.ConnectionID)
	}
}

// Run drains the queue until ctx is cancelled.
func (r *DBRecorder) Run(ctx context.Context) {
	log.Println("[AUDIT] connection audit worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("[AUDIT] connection audit worker stopping")
			return
		case e := <-r.queue:
			if err := r.insert(ctx, e); err != nil {
				log.Printf("[AUDIT] failed to record %s for connection %s: %v", e.Action, e.ConnectionID, err)
			}
		}
	}
}

func (r *DBRecorder) insert(ctx context.Context, e models.ConnectionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO connection_events (connection_id, action, slot, remote_addr, created_at)
		VALUES (:connection_id, :action, :slot, :remote_addr, :created_at)`, e)
	return err
}

// Recent returns the newest entries, optionally filtered by connection id.
func Recent(ctx context.Context, db *sqlx.DB, connectionID string, limit, offset int) ([]models.ConnectionEvent, error) {
	var rows []models.ConnectionEvent
	err := db.SelectContext(ctx, &rows, `
		SELECT id, connection_id, action, slot, remote_addr, created_at
		FROM connection_events
		WHERE ($1 = '' OR connection_id = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, connectionID, limit, offset)
	return rows, err
}

// NewEvent builds an entry for action. An empty slot is stored as NULL.
func NewEvent(connectionID, action, slot, remoteAddr string) models.ConnectionEvent {
	e := models.ConnectionEvent{
		ConnectionID: connectionID,
		Action:       action,
		RemoteAddr:   remoteAddr,
		CreatedAt:    time.Now(),
	}
	if slot != "" {
		e.Slot = &slot
	}
	return e
}
