package admin

import (
	"context"
	"time"

	"github.com/BruksfildServices01/delivery-marketplace/internal/httperr"
	"github.com/BruksfildServices01/delivery-marketplace/internal/listing"
	"github.com/BruksfildServices01/delivery-marketplace/internal/models"
	"github.com/BruksfildServices01/delivery-marketplace/internal/timezone"
)

type AuditLogRepository interface {
	ListAuditLogs(ctx context.Context, p listing.Params, from, to *time.Time) ([]models.AuditLog, int64, error)
}

type ListAuditLogs struct {
	repo AuditLogRepository
	tz   string
}

func NewListAuditLogs(repo AuditLogRepository, tz string) *ListAuditLogs {
	return &ListAuditLogs{repo: repo, tz: tz}
}

// Execute lists audit rows; from and to are inclusive YYYY-MM-DD days in the
// service timezone.
func (uc *ListAuditLogs) Execute(ctx context.Context, p listing.Params, fromStr, toStr string) (listing.Page[models.AuditLog], error) {
	from, to, err := timezone.DayRange(uc.tz, fromStr, toStr)
	if err != nil {
		return listing.Page[models.AuditLog]{}, httperr.ErrBusinessMsg("invalid_date", "Dates must use the YYYY-MM-DD format")
	}

	list := NewList(func(ctx context.Context, p listing.Params) ([]models.AuditLog, int64, error) {
		return uc.repo.ListAuditLogs(ctx, p, from, to)
	}, "Audit logs fetched successfully")

	return list.Execute(ctx, p)
}
