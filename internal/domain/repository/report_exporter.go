package repository

import (
	"context"

	"sdrops-service/internal/domain/entity"
)

// ReportExporter writes a month's weekly report rows to an external sheet
type ReportExporter interface {
	ExportWeekly(ctx context.Context, month, year string, meetings []*entity.WeeklyMeeting) error
}
