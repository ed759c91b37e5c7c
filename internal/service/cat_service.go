// Package service 跨集合的引用完整性规则与认证流程。
// 实体集合各自串行化，这里的 "先查后删" 不是跨集合原子的。
package service

import (
	"context"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/repo"
)

type CatService struct {
	cats     *repo.CatRepo
	staff    *repo.StaffRepo
	adopters *repo.AdopterRepo
	v        *domain.Validator
}

func NewCatService(cats *repo.CatRepo, staff *repo.StaffRepo, adopters *repo.AdopterRepo, v *domain.Validator) *CatService {
	return &CatService{cats: cats, staff: staff, adopters: adopters, v: v}
}

func (s *CatService) Get(ctx context.Context, id int) (domain.Cat, error) {
	c, err := s.cats.Get(ctx, id)
	if err != nil {
		return domain.Cat{}, err
	}
	if c == nil {
		return domain.Cat{}, domain.NotFound("cat not found")
	}
	return *c, nil
}

func (s *CatService) List(ctx context.Context, f domain.CatFilter) ([]domain.Cat, error) {
	return s.cats.List(ctx, f)
}

func (s *CatService) Create(ctx context.Context, in domain.CatInput) (domain.Cat, error) {
	c, err := s.v.Cat(in)
	if err != nil {
		return domain.Cat{}, err
	}
	if err := s.checkRefs(ctx, &c); err != nil {
		return domain.Cat{}, err
	}
	return s.cats.Add(ctx, c)
}

// Replace PUT 整体替换
func (s *CatService) Replace(ctx context.Context, id int, in domain.CatInput) (domain.Cat, error) {
	c, err := s.v.Cat(in)
	if err != nil {
		return domain.Cat{}, err
	}
	if err := s.checkRefs(ctx, &c); err != nil {
		return domain.Cat{}, err
	}
	c.ID = id
	updated, err := s.cats.Update(ctx, c)
	if err != nil {
		return domain.Cat{}, err
	}
	if updated == nil {
		return domain.Cat{}, domain.NotFound("cat not found")
	}
	return *updated, nil
}

func (s *CatService) Patch(ctx context.Context, id int, in domain.CatPatch) (domain.Cat, error) {
	if err := s.v.CatPatch(in); err != nil {
		return domain.Cat{}, err
	}
	if in.StaffInCharge != nil && *in.StaffInCharge != "" {
		if err := s.requireStaff(ctx, *in.StaffInCharge); err != nil {
			return domain.Cat{}, err
		}
	}
	if in.AdopterID != nil {
		if err := s.requireAdopter(ctx, *in.AdopterID); err != nil {
			return domain.Cat{}, err
		}
	}
	patched, err := s.cats.Patch(ctx, id, in.StaffInCharge, in.AdopterID)
	if err != nil {
		return domain.Cat{}, err
	}
	if patched == nil {
		return domain.Cat{}, domain.NotFound("cat not found")
	}
	return *patched, nil
}

func (s *CatService) Remove(ctx context.Context, id int) error {
	removed, err := s.cats.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.NotFound("cat not found")
	}
	return nil
}

// checkRefs 员工必须存在；已领养则 adopterId 必填且领养人存在；未领养则清空 adopterId
func (s *CatService) checkRefs(ctx context.Context, c *domain.Cat) error {
	if err := s.requireStaff(ctx, c.StaffInCharge); err != nil {
		return err
	}
	if !c.IsAdopted {
		c.AdopterID = nil
		return nil
	}
	if c.AdopterID == nil {
		return domain.Validation("adopterId must be specified when the cat is adopted",
			domain.FieldError{Field: "adopterId", Message: "is required when isAdopted is true"})
	}
	return s.requireAdopter(ctx, *c.AdopterID)
}

func (s *CatService) requireStaff(ctx context.Context, id string) error {
	st, err := s.staff.Get(ctx, id)
	if err != nil {
		return err
	}
	if st == nil {
		return domain.NotFound("staff not found")
	}
	return nil
}

func (s *CatService) requireAdopter(ctx context.Context, id int) error {
	a, err := s.adopters.Get(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.NotFound("adopter not found")
	}
	return nil
}
