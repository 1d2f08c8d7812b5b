package roomtype

import (
	"context"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*RoomType, error)
	List(ctx context.Context) ([]*RoomType, error)
	SetImageURL(ctx context.Context, id int64, imageURL string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*RoomType, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*RoomType, error) {
	return s.repo.List(ctx)
}

func (s *service) SetImageURL(ctx context.Context, id int64, imageURL string) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return s.repo.SetImageURL(ctx, id, imageURL)
}
