package usecases

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tvules/cat-charity-fund/internal/application/services/investing"
	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
)

type CreateDonationRequest struct {
	FullAmount int64  `json:"full_amount"`
	Comment    string `json:"comment"`
}

func (r CreateDonationRequest) Validate() error {
	if r.FullAmount <= 0 {
		return fmt.Errorf("%w: full_amount must be positive", ErrValidation)
	}
	return nil
}

type DonationUseCase interface {
	CreateDonation(ctx context.Context, user *entities.User, req CreateDonationRequest) (*entities.Donation, error)
	GetDonations(ctx context.Context) ([]*entities.Donation, error)
	GetUserDonations(ctx context.Context, userID string) ([]*entities.Donation, error)
}

type donationUseCase struct {
	sessions  managers.SessionFactory
	donations repositories.DonationRepository
	projects  repositories.CharityProjectRepository
	logger    zerolog.Logger
}

func NewDonationUseCase(
	sessions managers.SessionFactory,
	donations repositories.DonationRepository,
	projects repositories.CharityProjectRepository,
	logger zerolog.Logger,
) DonationUseCase {
	return &donationUseCase{sessions, donations, projects, logger}
}

// CreateDonation records the donation and immediately distributes it across
// projects that are still collecting, oldest project first.
func (uc *donationUseCase) CreateDonation(ctx context.Context, user *entities.User, req CreateDonationRequest) (*entities.Donation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess := uc.sessions.NewSession()
	donation, err := uc.donations.Create(ctx, sess, map[string]any{
		"user_id":     user.ID,
		"comment":     req.Comment,
		"full_amount": req.FullAmount,
	})
	if err != nil {
		return nil, err
	}

	open, err := uc.projects.GetOpen(ctx, sess)
	if err != nil {
		return nil, err
	}
	if err := investing.Invest(ctx, sess, donation, projectFunds(open)); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Uint("donation_id", donation.ID).
		Str("user_id", user.ID).
		Int64("invested", donation.InvestedAmount).
		Msg("donation received")
	return donation, nil
}

func (uc *donationUseCase) GetDonations(ctx context.Context) ([]*entities.Donation, error) {
	return uc.donations.GetAll(ctx, uc.sessions.NewSession())
}

func (uc *donationUseCase) GetUserDonations(ctx context.Context, userID string) ([]*entities.Donation, error) {
	return uc.donations.GetByUser(ctx, uc.sessions.NewSession(), userID)
}

func projectFunds(projects []*entities.CharityProject) []investing.Fund {
	funds := make([]investing.Fund, 0, len(projects))
	for _, project := range projects {
		funds = append(funds, project)
	}
	return funds
}
