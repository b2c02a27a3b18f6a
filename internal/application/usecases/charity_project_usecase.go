package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tvules/cat-charity-fund/internal/application/services/investing"
	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FullAmount  int64  `json:"full_amount"`
}

func (r CreateProjectRequest) Validate() error {
	if r.Name == "" || len(r.Name) > 100 {
		return fmt.Errorf("%w: name must be 1-100 characters", ErrValidation)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if r.FullAmount <= 0 {
		return fmt.Errorf("%w: full_amount must be positive", ErrValidation)
	}
	return nil
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	FullAmount  *int64  `json:"full_amount"`
}

type CharityProjectUseCase interface {
	GetProjects(ctx context.Context) ([]*entities.CharityProject, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*entities.CharityProject, error)
	UpdateProject(ctx context.Context, id uint, req UpdateProjectRequest) (*entities.CharityProject, error)
	DeleteProject(ctx context.Context, id uint) (*entities.CharityProject, error)
}

type charityProjectUseCase struct {
	sessions  managers.SessionFactory
	projects  repositories.CharityProjectRepository
	donations repositories.DonationRepository
	logger    zerolog.Logger
}

func NewCharityProjectUseCase(
	sessions managers.SessionFactory,
	projects repositories.CharityProjectRepository,
	donations repositories.DonationRepository,
	logger zerolog.Logger,
) CharityProjectUseCase {
	return &charityProjectUseCase{sessions, projects, donations, logger}
}

func (uc *charityProjectUseCase) GetProjects(ctx context.Context) ([]*entities.CharityProject, error) {
	return uc.projects.GetAll(ctx, uc.sessions.NewSession())
}

// CreateProject persists a new project and immediately fills it from any
// donations that are still waiting to be distributed.
func (uc *charityProjectUseCase) CreateProject(ctx context.Context, req CreateProjectRequest) (*entities.CharityProject, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess := uc.sessions.NewSession()
	existing, err := uc.projects.GetByName(ctx, sess, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProjectNameTaken
	}

	project, err := uc.projects.Create(ctx, sess, map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"full_amount": req.FullAmount,
	})
	if err != nil {
		return nil, err
	}

	open, err := uc.donations.GetOpen(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := investing.Invest(ctx, sess, project, donationFunds(open)); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Uint("project_id", project.ID).
		Int64("invested", project.InvestedAmount).
		Msg("charity project created")
	return project, nil
}

// UpdateProject applies a partial update. Closed projects are immutable, the
// name stays unique, and the full amount may not drop below what is already
// invested; setting it exactly to the invested amount closes the project.
func (uc *charityProjectUseCase) UpdateProject(ctx context.Context, id uint, req UpdateProjectRequest) (*entities.CharityProject, error) {
	sess := uc.sessions.NewSession()
	project, err := uc.projects.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.IsClosed() {
		return nil, ErrProjectClosed
	}

	fields := map[string]any{}
	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 100 {
			return nil, fmt.Errorf("%w: name must be 1-100 characters", ErrValidation)
		}
		other, err := uc.projects.GetByName(ctx, sess, *req.Name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != project.ID {
			return nil, ErrProjectNameTaken
		}
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description is required", ErrValidation)
		}
		fields["description"] = *req.Description
	}
	if req.FullAmount != nil {
		if *req.FullAmount <= 0 {
			return nil, fmt.Errorf("%w: full_amount must be positive", ErrValidation)
		}
		if *req.FullAmount < project.InvestedAmount {
			return nil, ErrFullAmountTooLow
		}
		fields["full_amount"] = *req.FullAmount
		if *req.FullAmount == project.InvestedAmount {
			fields["fully_invested"] = true
			fields["close_date"] = time.Now()
		}
	}

	return uc.projects.Update(ctx, sess, project, fields)
}

// DeleteProject removes a project that nobody has invested in yet.
func (uc *charityProjectUseCase) DeleteProject(ctx context.Context, id uint) (*entities.CharityProject, error) {
	sess := uc.sessions.NewSession()
	project, err := uc.projects.GetByID(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.InvestedAmount > 0 || project.IsClosed() {
		return nil, ErrProjectInvested
	}
	return uc.projects.Delete(ctx, sess, project)
}

func donationFunds(donations []*entities.Donation) []investing.Fund {
	funds := make([]investing.Fund, 0, len(donations))
	for _, donation := range donations {
		funds = append(funds, donation)
	}
	return funds
}
