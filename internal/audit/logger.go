package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

// Store persists audit rows.
type Store interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
}

// Logger turns events into audit rows.
type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}
	return l.store.CreateAuditLog(ctx, &row)
}
