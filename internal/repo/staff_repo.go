package repo

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/store"
)

type staffDocument struct {
	Staff []domain.Staff `json:"staff"`
}

// 空库时带一个种子员工 "The Boss"
func seededStaff() staffDocument {
	return staffDocument{Staff: []domain.Staff{domain.SeedStaff()}}
}

type StaffRepo struct {
	col   Collection
	newID func() string
}

func NewStaffRepo(col Collection) *StaffRepo {
	return &StaffRepo{col: col, newID: uuid.NewString}
}

func (r *StaffRepo) load(ctx context.Context) staffDocument {
	return store.LoadOrDefault(ctx, r.col.Docs, StaffDoc, seededStaff)
}

func (r *StaffRepo) Get(ctx context.Context, id string) (*domain.Staff, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Staff, error) {
		doc := r.load(ctx)
		if i := indexOfStaff(doc.Staff, id); i >= 0 {
			s := doc.Staff[i]
			return &s, nil
		}
		return nil, nil
	})
}

func (r *StaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.Staff, error) {
		doc := r.load(ctx)
		return append(make([]domain.Staff, 0, len(doc.Staff)), doc.Staff...), nil
	})
}

// Add 随机 UUID，不检查碰撞
func (r *StaffRepo) Add(ctx context.Context, s domain.Staff) (domain.Staff, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (domain.Staff, error) {
		doc := r.load(ctx)
		s.ID = r.newID()
		doc.Staff = append(doc.Staff, s)
		if err := store.Save(ctx, r.col.Docs, StaffDoc, doc); err != nil {
			return domain.Staff{}, err
		}
		return s, nil
	})
}

func (r *StaffRepo) Update(ctx context.Context, s domain.Staff) (*domain.Staff, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Staff, error) {
		doc := r.load(ctx)
		i := indexOfStaff(doc.Staff, s.ID)
		if i < 0 {
			return nil, nil
		}
		doc.Staff[i] = s
		if err := store.Save(ctx, r.col.Docs, StaffDoc, doc); err != nil {
			return nil, err
		}
		return &s, nil
	})
}

func (r *StaffRepo) Remove(ctx context.Context, id string) (bool, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (bool, error) {
		doc := r.load(ctx)
		i := indexOfStaff(doc.Staff, id)
		if i < 0 {
			return false, nil
		}
		doc.Staff = slices.Delete(doc.Staff, i, i+1)
		if err := store.Save(ctx, r.col.Docs, StaffDoc, doc); err != nil {
			return false, err
		}
		return true, nil
	})
}

func indexOfStaff(staff []domain.Staff, id string) int {
	return slices.IndexFunc(staff, func(s domain.Staff) bool { return s.ID == id })
}
