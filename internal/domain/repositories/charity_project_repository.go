package repositories

import (
	"context"
	"sort"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

type CharityProjectRepository interface {
	Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.CharityProject, error)
	GetByID(ctx context.Context, sess managers.Session, id uint) (*entities.CharityProject, error)
	GetByName(ctx context.Context, sess managers.Session, name string) (*entities.CharityProject, error)
	GetAll(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error)
	GetOpen(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error)
	GetClosed(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error)
	Update(ctx context.Context, sess managers.Session, project *entities.CharityProject, fields map[string]any) (*entities.CharityProject, error)
	Delete(ctx context.Context, sess managers.Session, project *entities.CharityProject) (*entities.CharityProject, error)
}

type charityProjectRepository struct {
	manager *managers.Manager[entities.CharityProject]
}

func NewCharityProjectRepository() (CharityProjectRepository, error) {
	manager, err := managers.New[entities.CharityProject](charityProjectDefinition{})
	if err != nil {
		return nil, err
	}
	return &charityProjectRepository{manager}, nil
}

func (r *charityProjectRepository) Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.CharityProject, error) {
	return r.manager.Create(ctx, sess, fields)
}

func (r *charityProjectRepository) GetByID(ctx context.Context, sess managers.Session, id uint) (*entities.CharityProject, error) {
	return r.manager.Get(ctx, sess, map[string]any{"id": id})
}

func (r *charityProjectRepository) GetByName(ctx context.Context, sess managers.Session, name string) (*entities.CharityProject, error) {
	return r.manager.Get(ctx, sess, map[string]any{"name": name})
}

func (r *charityProjectRepository) GetAll(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error) {
	return r.manager.GetAll(ctx, sess)
}

// GetOpen returns projects still collecting funds, oldest first, so the
// investing process fills them in creation order.
func (r *charityProjectRepository) GetOpen(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error) {
	projects, err := r.manager.Filter(ctx, sess, map[string]any{"fully_invested": false})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreateDate.Before(projects[j].CreateDate)
	})
	return projects, nil
}

func (r *charityProjectRepository) GetClosed(ctx context.Context, sess managers.Session) ([]*entities.CharityProject, error) {
	return r.manager.Filter(ctx, sess, map[string]any{"fully_invested": true})
}

func (r *charityProjectRepository) Update(ctx context.Context, sess managers.Session, project *entities.CharityProject, fields map[string]any) (*entities.CharityProject, error) {
	return r.manager.Update(ctx, sess, project, fields)
}

func (r *charityProjectRepository) Delete(ctx context.Context, sess managers.Session, project *entities.CharityProject) (*entities.CharityProject, error) {
	return r.manager.Delete(ctx, sess, project)
}

// charityProjectDefinition whitelists the project's fields by column name.
type charityProjectDefinition struct{}

func (d charityProjectDefinition) New(fields map[string]any) (*entities.CharityProject, error) {
	project := &entities.CharityProject{}
	for field, value := range fields {
		if !d.Has(field) {
			return nil, &managers.UnknownFieldError{Entity: "charity_project", Field: field}
		}
		if !d.Set(project, field, value) {
			return nil, &managers.InvalidValueError{Entity: "charity_project", Field: field}
		}
	}
	return project, nil
}

func (charityProjectDefinition) Has(field string) bool {
	switch field {
	case "id", "name", "description", "full_amount", "invested_amount",
		"fully_invested", "create_date", "close_date":
		return true
	}
	return false
}

func (charityProjectDefinition) Get(p *entities.CharityProject, field string) (any, bool) {
	switch field {
	case "id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "description":
		return p.Description, true
	case "full_amount":
		return p.FullAmount, true
	case "invested_amount":
		return p.InvestedAmount, true
	case "fully_invested":
		return p.FullyInvested, true
	case "create_date":
		return p.CreateDate, true
	case "close_date":
		return p.CloseDate, true
	}
	return nil, false
}

func (charityProjectDefinition) Set(p *entities.CharityProject, field string, value any) bool {
	switch field {
	case "id":
		v, ok := asID(value)
		if !ok {
			return false
		}
		p.ID = v
	case "name":
		v, ok := asString(value)
		if !ok {
			return false
		}
		p.Name = v
	case "description":
		v, ok := asString(value)
		if !ok {
			return false
		}
		p.Description = v
	case "full_amount":
		v, ok := asAmount(value)
		if !ok {
			return false
		}
		p.FullAmount = v
	case "invested_amount":
		v, ok := asAmount(value)
		if !ok {
			return false
		}
		p.InvestedAmount = v
	case "fully_invested":
		v, ok := asBool(value)
		if !ok {
			return false
		}
		p.FullyInvested = v
	case "create_date":
		v, ok := asTime(value)
		if !ok {
			return false
		}
		p.CreateDate = v
	case "close_date":
		v, ok := asTimePtr(value)
		if !ok {
			return false
		}
		p.CloseDate = v
	default:
		return false
	}
	return true
}
