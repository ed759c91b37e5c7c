package service

import (
	"context"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/repo"
)

type AdopterService struct {
	adopters *repo.AdopterRepo
	cats     *repo.CatRepo
	v        *domain.Validator
}

func NewAdopterService(adopters *repo.AdopterRepo, cats *repo.CatRepo, v *domain.Validator) *AdopterService {
	return &AdopterService{adopters: adopters, cats: cats, v: v}
}

func (s *AdopterService) Get(ctx context.Context, id int) (domain.Adopter, error) {
	a, err := s.adopters.Get(ctx, id)
	if err != nil {
		return domain.Adopter{}, err
	}
	if a == nil {
		return domain.Adopter{}, domain.NotFound("adopter not found")
	}
	return *a, nil
}

func (s *AdopterService) Cats(ctx context.Context, id int) ([]domain.Cat, error) {
	return s.cats.ListByAdopter(ctx, id)
}

func (s *AdopterService) List(ctx context.Context) ([]domain.Adopter, error) {
	return s.adopters.List(ctx)
}

func (s *AdopterService) Create(ctx context.Context, in domain.AdopterInput) (domain.Adopter, error) {
	a, err := s.v.Adopter(in)
	if err != nil {
		return domain.Adopter{}, err
	}
	return s.adopters.Add(ctx, a)
}

func (s *AdopterService) Replace(ctx context.Context, id int, in domain.AdopterInput) (domain.Adopter, error) {
	a, err := s.v.Adopter(in)
	if err != nil {
		return domain.Adopter{}, err
	}
	a.ID = id
	updated, err := s.adopters.Update(ctx, a)
	if err != nil {
		return domain.Adopter{}, err
	}
	if updated == nil {
		return domain.Adopter{}, domain.NotFound("adopter not found")
	}
	return *updated, nil
}

func (s *AdopterService) Remove(ctx context.Context, id int) error {
	cats, err := s.cats.ListByAdopter(ctx, id)
	if err != nil {
		return err
	}
	if len(cats) > 0 {
		return domain.Referenced("adopters can not be deleted once an adoption was carried out")
	}
	removed, err := s.adopters.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.NotFound("adopter not found")
	}
	return nil
}
