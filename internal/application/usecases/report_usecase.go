package usecases

import (
	"context"
	"errors"

	"github.com/tvules/cat-charity-fund/internal/application/services/report"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
)

// ErrReportingDisabled is returned when no Google credentials are configured.
var ErrReportingDisabled = errors.New("google reporting is not configured")

type ReportUseCase interface {
	BuildClosedProjectsReport(ctx context.Context) (string, error)
}

type reportUseCase struct {
	sessions managers.SessionFactory
	projects repositories.CharityProjectRepository
	reports  *report.Service
}

// NewReportUseCase accepts a nil report service; reporting is then disabled.
func NewReportUseCase(
	sessions managers.SessionFactory,
	projects repositories.CharityProjectRepository,
	reports *report.Service,
) ReportUseCase {
	return &reportUseCase{sessions, projects, reports}
}

func (uc *reportUseCase) BuildClosedProjectsReport(ctx context.Context) (string, error) {
	if uc.reports == nil {
		return "", ErrReportingDisabled
	}
	closed, err := uc.projects.GetClosed(ctx, uc.sessions.NewSession())
	if err != nil {
		return "", err
	}
	return uc.reports.BuildProjectReport(ctx, closed)
}
