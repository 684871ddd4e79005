package service

import (
	"context"
	"errors"

	"farmdash/entities"
)

var ErrNotFound = errors.New("resource not found")

type Service interface {
	List(ctx context.Context) ([]entities.ResourceView, error)
	Create(ctx context.Context, in entities.ResourceInput) (*entities.ResourceView, error)
	Update(ctx context.Context, id string, in entities.ResourceInput) (*entities.ResourceView, error)
	UpdatePartial(ctx context.Context, id string, patch ResourcePatch) (*entities.ResourceView, error)
	Delete(ctx context.Context, id string) (*entities.ResourceView, error)
}

// ResourcePatch changes only the fields that are set.
type ResourcePatch struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Type     *string  `json:"type"`
	CropID   *string  `json:"cropId"`
}

// Merge applies the set fields on top of cur.
func (p ResourcePatch) Merge(cur entities.ResourceInput) entities.ResourceInput {
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Quantity != nil {
		cur.Quantity = *p.Quantity
	}
	if p.Type != nil {
		cur.Type = *p.Type
	}
	if p.CropID != nil {
		cur.CropID = *p.CropID
	}
	return cur
}
