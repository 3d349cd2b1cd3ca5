package sheets

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"sdrops-service/internal/domain/entity"
	"sdrops-service/pkg/logger"
)

// SheetsExporter appends weekly report rows to a Google Sheet
type SheetsExporter struct {
	sheetsService *sheets.Service
	spreadsheetID string
	logger        logger.Logger
}

// NewSheetsExporter creates a new Sheets exporter
func NewSheetsExporter(ctx context.Context, tokenSource oauth2.TokenSource, spreadsheetID string, logger logger.Logger) (*SheetsExporter, error) {
	service, err := sheets.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, err
	}

	return &SheetsExporter{
		sheetsService: service,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// ExportWeekly appends one header row plus one row per meeting to the
// configured spreadsheet
func (e *SheetsExporter) ExportWeekly(ctx context.Context, month, year string, meetings []*entity.WeeklyMeeting) error {
	values := make([][]interface{}, 0, len(meetings)+1)
	values = append(values, []interface{}{
		fmt.Sprintf("%s %s - Weekly Meetings Scheduled", month, year),
		"Week", "Name", "Company", "Title", "Email", "Contact", "Assigned to (AE)", "Location",
	})

	for _, m := range meetings {
		values = append(values, []interface{}{
			"",
			m.Week,
			m.FirstName + " " + m.LastName,
			m.CompanyName,
			m.Title,
			m.Email,
			m.ContactNo,
			m.AssignedTo,
			m.Location,
		})
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := e.sheetsService.Spreadsheets.Values.
		Append(e.spreadsheetID, "A1", valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append to spreadsheet: %w", err)
	}

	e.logger.Info("Exported weekly report",
		"spreadsheetId", e.spreadsheetID,
		"month", month,
		"year", year,
		"rows", len(meetings))

	return nil
}
