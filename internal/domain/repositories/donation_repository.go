package repositories

import (
	"context"
	"sort"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

type DonationRepository interface {
	Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.Donation, error)
	GetAll(ctx context.Context, sess managers.Session) ([]*entities.Donation, error)
	GetByUser(ctx context.Context, sess managers.Session, userID string) ([]*entities.Donation, error)
	GetOpen(ctx context.Context, sess managers.Session) ([]*entities.Donation, error)
}

type donationRepository struct {
	manager *managers.Manager[entities.Donation]
}

func NewDonationRepository() (DonationRepository, error) {
	manager, err := managers.New[entities.Donation](donationDefinition{})
	if err != nil {
		return nil, err
	}
	return &donationRepository{manager}, nil
}

func (r *donationRepository) Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.Donation, error) {
	return r.manager.Create(ctx, sess, fields)
}

func (r *donationRepository) GetAll(ctx context.Context, sess managers.Session) ([]*entities.Donation, error) {
	return r.manager.GetAll(ctx, sess)
}

func (r *donationRepository) GetByUser(ctx context.Context, sess managers.Session, userID string) ([]*entities.Donation, error) {
	return r.manager.Filter(ctx, sess, map[string]any{"user_id": userID})
}

// GetOpen returns donations with undistributed funds, oldest first.
func (r *donationRepository) GetOpen(ctx context.Context, sess managers.Session) ([]*entities.Donation, error) {
	donations, err := r.manager.Filter(ctx, sess, map[string]any{"fully_invested": false})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(donations, func(i, j int) bool {
		return donations[i].CreateDate.Before(donations[j].CreateDate)
	})
	return donations, nil
}

// donationDefinition whitelists the donation's fields by column name.
type donationDefinition struct{}

func (d donationDefinition) New(fields map[string]any) (*entities.Donation, error) {
	donation := &entities.Donation{}
	for field, value := range fields {
		if !d.Has(field) {
			return nil, &managers.UnknownFieldError{Entity: "donation", Field: field}
		}
		if !d.Set(donation, field, value) {
			return nil, &managers.InvalidValueError{Entity: "donation", Field: field}
		}
	}
	return donation, nil
}

func (donationDefinition) Has(field string) bool {
	switch field {
	case "id", "user_id", "comment", "full_amount", "invested_amount",
		"fully_invested", "create_date", "close_date":
		return true
	}
	return false
}

func (donationDefinition) Get(d *entities.Donation, field string) (any, bool) {
	switch field {
	case "id":
		return d.ID, true
	case "user_id":
		return d.UserID, true
	case "comment":
		return d.Comment, true
	case "full_amount":
		return d.FullAmount, true
	case "invested_amount":
		return d.InvestedAmount, true
	case "fully_invested":
		return d.FullyInvested, true
	case "create_date":
		return d.CreateDate, true
	case "close_date":
		return d.CloseDate, true
	}
	return nil, false
}

func (donationDefinition) Set(d *entities.Donation, field string, value any) bool {
	switch field {
	case "id":
		v, ok := asID(value)
		if !ok {
			return false
		}
		d.ID = v
	case "user_id":
		v, ok := asString(value)
		if !ok {
			return false
		}
		d.UserID = v
	case "comment":
		v, ok := asString(value)
		if !ok {
			return false
		}
		d.Comment = v
	case "full_amount":
		v, ok := asAmount(value)
		if !ok {
			return false
		}
		d.FullAmount = v
	case "invested_amount":
		v, ok := asAmount(value)
		if !ok {
			return false
		}
		d.InvestedAmount = v
	case "fully_invested":
		v, ok := asBool(value)
		if !ok {
			return false
		}
		d.FullyInvested = v
	case "create_date":
		v, ok := asTime(value)
		if !ok {
			return false
		}
		d.CreateDate = v
	case "close_date":
		v, ok := asTimePtr(value)
		if !ok {
			return false
		}
		d.CloseDate = v
	default:
		return false
	}
	return true
}
