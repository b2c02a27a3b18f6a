// Package report publishes closed-project reports to Google Sheets through a
// service account.
package report

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
)

type Service struct {
	sheets    *sheets.Service
	drive     *drive.Service
	shareWith string
	logger    zerolog.Logger
}

// NewService builds sheets and drive clients from a service-account
// credentials file. shareWith is the account the generated spreadsheets are
// handed to; when empty they stay with the service account.
func NewService(ctx context.Context, credentialsFile, shareWith string, logger zerolog.Logger) (*Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read google credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}

	sheetsService, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to build sheets client: %w", err)
	}
	driveService, err := drive.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to build drive client: %w", err)
	}

	return &Service{
		sheets:    sheetsService,
		drive:     driveService,
		shareWith: shareWith,
		logger:    logger,
	}, nil
}

// BuildProjectReport creates a spreadsheet listing the closed projects sorted
// by how fast they collected their full amount, and returns its URL.
func (s *Service) BuildProjectReport(ctx context.Context, projects []*entities.CharityProject) (string, error) {
	now := time.Now()
	rows := buildRows(projects, now)

	spreadsheet, err := s.sheets.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: fmt.Sprintf("Report on %s", now.Format("2006-01-02 15:04:05")),
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	_, err = s.sheets.Spreadsheets.Values.Update(spreadsheet.SpreadsheetId, "A1", &sheets.ValueRange{
		Values: rows,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to write report rows: %w", err)
	}

	if s.shareWith != "" {
		_, err = s.drive.Permissions.Create(spreadsheet.SpreadsheetId, &drive.Permission{
			Type:         "user",
			Role:         "writer",
			EmailAddress: s.shareWith,
		}).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to share spreadsheet: %w", err)
		}
	}

	s.logger.Info().
		Str("spreadsheet_id", spreadsheet.SpreadsheetId).
		Int("projects", len(projects)).
		Msg("project report published")
	return spreadsheet.SpreadsheetUrl, nil
}

func buildRows(projects []*entities.CharityProject, now time.Time) [][]any {
	sorted := append([]*entities.CharityProject(nil), projects...)
	sort.Slice(sorted, func(i, j int) bool {
		return collectionTime(sorted[i]) < collectionTime(sorted[j])
	})

	rows := [][]any{
		{"Report on", now.Format("2006-01-02 15:04:05")},
		{"Fastest fundraising projects"},
		{"Project", "Collection time", "Description"},
	}
	for _, project := range sorted {
		rows = append(rows, []any{
			project.Name,
			collectionTime(project).String(),
			project.Description,
		})
	}
	return rows
}

func collectionTime(project *entities.CharityProject) time.Duration {
	if project.CloseDate == nil {
		return 0
	}
	return project.CloseDate.Sub(project.CreateDate)
}
