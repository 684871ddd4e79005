package serviceImp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"farmdash/entities"
	"farmdash/pkg/resource/repository"
	svc "farmdash/pkg/resource/service"
	"farmdash/pkg/schema"
)

type service struct{ repo repository.Repo }

func New(r repository.Repo) svc.Service { return &service{repo: r} }

func (s *service) List(ctx context.Context) ([]entities.ResourceView, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ResourceView, 0, len(list))
	for _, r := range list {
		out = append(out, r.View())
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, in entities.ResourceInput) (*entities.ResourceView, error) {
	r := &entities.Resource{ID: uuid.NewString()}
	r.Apply(in)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return s.view(ctx, r.ID)
}

func (s *service) Update(ctx context.Context, id string, in entities.ResourceInput) (*entities.ResourceView, error) {
	cur, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	cur.Apply(in)
	cur.Crop = nil
	if err := s.repo.Update(ctx, cur); err != nil {
		return nil, err
	}
	return s.view(ctx, id)
}

// UpdatePartial merges the patch over the stored resource and validates the
// result as a whole.
func (s *service) UpdatePartial(ctx context.Context, id string, p svc.ResourcePatch) (*entities.ResourceView, error) {
	cur, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	in := p.Merge(cur.View().Input())
	if err := schema.Validate(in); err != nil {
		return nil, err
	}
	return s.Update(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id string) (*entities.ResourceView, error) {
	cur, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	v := cur.View()
	return &v, nil
}

func (s *service) view(ctx context.Context, id string) (*entities.ResourceView, error) {
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	v := r.View()
	return &v, nil
}

func (s *service) find(ctx context.Context, id string) (*entities.Resource, error) {
	r, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svc.ErrNotFound
	}
	return r, err
}
