package repo

import (
	"context"
	"slices"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/store"
)

type adoptersDocument struct {
	LastID   int              `json:"lastId"`
	Adopters []domain.Adopter `json:"adopters"`
}

func emptyAdopters() adoptersDocument { return adoptersDocument{Adopters: []domain.Adopter{}} }

type AdopterRepo struct{ col Collection }

func NewAdopterRepo(col Collection) *AdopterRepo { return &AdopterRepo{col: col} }

func (r *AdopterRepo) load(ctx context.Context) adoptersDocument {
	return store.LoadOrDefault(ctx, r.col.Docs, AdoptersDoc, emptyAdopters)
}

func (r *AdopterRepo) Get(ctx context.Context, id int) (*domain.Adopter, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Adopter, error) {
		doc := r.load(ctx)
		if i := indexOfAdopter(doc.Adopters, id); i >= 0 {
			a := doc.Adopters[i]
			return &a, nil
		}
		return nil, nil
	})
}

func (r *AdopterRepo) List(ctx context.Context) ([]domain.Adopter, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.Adopter, error) {
		doc := r.load(ctx)
		return append(make([]domain.Adopter, 0, len(doc.Adopters)), doc.Adopters...), nil
	})
}

func (r *AdopterRepo) Add(ctx context.Context, a domain.Adopter) (domain.Adopter, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (domain.Adopter, error) {
		doc := r.load(ctx)
		a.ID = nextID(doc.LastID, func(yield func(int) bool) {
			for _, x := range doc.Adopters {
				if !yield(x.ID) {
					return
				}
			}
		})
		doc.LastID = a.ID
		doc.Adopters = append(doc.Adopters, a)
		if err := store.Save(ctx, r.col.Docs, AdoptersDoc, doc); err != nil {
			return domain.Adopter{}, err
		}
		return a, nil
	})
}

func (r *AdopterRepo) Update(ctx context.Context, a domain.Adopter) (*domain.Adopter, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Adopter, error) {
		doc := r.load(ctx)
		i := indexOfAdopter(doc.Adopters, a.ID)
		if i < 0 {
			return nil, nil
		}
		doc.Adopters[i] = a
		if err := store.Save(ctx, r.col.Docs, AdoptersDoc, doc); err != nil {
			return nil, err
		}
		return &a, nil
	})
}

func (r *AdopterRepo) Remove(ctx context.Context, id int) (bool, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (bool, error) {
		doc := r.load(ctx)
		i := indexOfAdopter(doc.Adopters, id)
		if i < 0 {
			return false, nil
		}
		doc.Adopters = slices.Delete(doc.Adopters, i, i+1)
		if err := store.Save(ctx, r.col.Docs, AdoptersDoc, doc); err != nil {
			return false, err
		}
		return true, nil
	})
}

func indexOfAdopter(as []domain.Adopter, id int) int {
	return slices.IndexFunc(as, func(a domain.Adopter) bool { return a.ID == id })
}
