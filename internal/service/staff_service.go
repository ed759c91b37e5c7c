package service

import (
	"context"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/repo"
)

type StaffService struct {
	staff *repo.StaffRepo
	cats  *repo.CatRepo
	v     *domain.Validator
}

func NewStaffService(staff *repo.StaffRepo, cats *repo.CatRepo, v *domain.Validator) *StaffService {
	return &StaffService{staff: staff, cats: cats, v: v}
}

func (s *StaffService) Get(ctx context.Context, id string) (domain.Staff, error) {
	st, err := s.staff.Get(ctx, id)
	if err != nil {
		return domain.Staff{}, err
	}
	if st == nil {
		return domain.Staff{}, domain.NotFound("staff member not found")
	}
	return *st, nil
}

// Cats 该员工负责的猫（不含 staffInCharge 字段）
func (s *StaffService) Cats(ctx context.Context, id string) ([]domain.Cat, error) {
	return s.cats.ListByStaff(ctx, id)
}

func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.List(ctx)
}

func (s *StaffService) Create(ctx context.Context, in domain.StaffInput) (domain.Staff, error) {
	st, err := s.v.Staff(in)
	if err != nil {
		return domain.Staff{}, err
	}
	return s.staff.Add(ctx, st)
}

func (s *StaffService) Replace(ctx context.Context, id string, in domain.StaffInput) (domain.Staff, error) {
	st, err := s.v.Staff(in)
	if err != nil {
		return domain.Staff{}, err
	}
	st.ID = id
	updated, err := s.staff.Update(ctx, st)
	if err != nil {
		return domain.Staff{}, err
	}
	if updated == nil {
		return domain.Staff{}, domain.NotFound("staff member not found")
	}
	return *updated, nil
}

// Remove 仍负责猫的员工不能删除。检查与删除之间没有锁住猫集合。
func (s *StaffService) Remove(ctx context.Context, id string) error {
	cats, err := s.cats.ListByStaff(ctx, id)
	if err != nil {
		return err
	}
	if len(cats) > 0 {
		return domain.Referenced("staff can not be deleted while in charge of cats, reassign the cats first")
	}
	removed, err := s.staff.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.NotFound("staff member not found")
	}
	return nil
}
