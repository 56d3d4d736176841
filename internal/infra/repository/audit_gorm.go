package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/delivery-marketplace/internal/audit"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
)

var auditListSpec = listing.Spec{
	Sorts: map[string]string{
		"createdAt": "audit_logs.created_at",
		"action":    "audit_logs.action",
	},
	DefaultSort: "audit_logs.created_at",
	Tiebreak:    "audit_logs.id",
	Filters: map[string]string{
		"action":   "audit_logs.action",
		"entity":   "audit_logs.entity",
		"actorId":  "audit_logs.actor_id",
		"entityId": "audit_logs.entity_id",
	},
	SearchColumns: []string{"audit_logs.action", "audit_logs.metadata"},
}

type AuditGormRepository struct {
	db *gorm.DB
}

func NewAuditGormRepository(db *gorm.DB) *AuditGormRepository {
	return &AuditGormRepository{db: db}
}

func (r *AuditGormRepository) CreateAuditLog(ctx context.Context, row *models.AuditLog) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// ListAuditLogs lists audit rows created in [from, to); nil bounds are open.
func (r *AuditGormRepository) ListAuditLogs(ctx context.Context, p listing.Params, from, to *time.Time) ([]models.AuditLog, int64, error) {
	q := r.db.Model(&models.AuditLog{})
	if from != nil {
		q = q.Where("audit_logs.created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("audit_logs.created_at < ?", *to)
	}
	return listing.Find[models.AuditLog](ctx, q, auditListSpec, p)
}

// Compile-time check
var _ audit.Store = (*AuditGormRepository)(nil)
