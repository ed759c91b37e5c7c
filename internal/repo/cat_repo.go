package repo

import (
	"context"
	"slices"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/store"
)

type catsDocument struct {
	LastID int          `json:"lastId"`
	Cats   []domain.Cat `json:"cats"`
}

func emptyCats() catsDocument { return catsDocument{Cats: []domain.Cat{}} }

type CatRepo struct{ col Collection }

func NewCatRepo(col Collection) *CatRepo { return &CatRepo{col: col} }

func (r *CatRepo) load(ctx context.Context) catsDocument {
	return store.LoadOrDefault(ctx, r.col.Docs, CatsDoc, emptyCats)
}

func (r *CatRepo) save(ctx context.Context, doc catsDocument) error {
	return store.Save(ctx, r.col.Docs, CatsDoc, doc)
}

// Get 不存在返回 nil, nil
func (r *CatRepo) Get(ctx context.Context, id int) (*domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Cat, error) {
		doc := r.load(ctx)
		if i := indexOfCat(doc.Cats, id); i >= 0 {
			c := doc.Cats[i]
			return &c, nil
		}
		return nil, nil
	})
}

func (r *CatRepo) List(ctx context.Context, f domain.CatFilter) ([]domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.Cat, error) {
		doc := r.load(ctx)
		out := make([]domain.Cat, 0, len(doc.Cats))
		for _, c := range doc.Cats {
			if f.Match(c) {
				out = append(out, c)
			}
		}
		return out, nil
	})
}

// ListByStaff 返回的猫不带 staffInCharge
func (r *CatRepo) ListByStaff(ctx context.Context, staffID string) ([]domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.Cat, error) {
		doc := r.load(ctx)
		out := make([]domain.Cat, 0)
		for _, c := range doc.Cats {
			if c.StaffInCharge == staffID {
				c.StaffInCharge = ""
				out = append(out, c)
			}
		}
		return out, nil
	})
}

// ListByAdopter 返回的猫不带 adopterId
func (r *CatRepo) ListByAdopter(ctx context.Context, adopterID int) ([]domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.Cat, error) {
		doc := r.load(ctx)
		out := make([]domain.Cat, 0)
		for _, c := range doc.Cats {
			if c.AdopterID != nil && *c.AdopterID == adopterID {
				c.AdopterID = nil
				out = append(out, c)
			}
		}
		return out, nil
	})
}

// Add 分配 id = lastId + 1，计数器与记录同一次写入
func (r *CatRepo) Add(ctx context.Context, c domain.Cat) (domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (domain.Cat, error) {
		doc := r.load(ctx)
		c.ID = nextID(doc.LastID, catIDs(doc.Cats))
		if c.Temperament == nil {
			c.Temperament = []domain.Temperament{}
		}
		doc.LastID = c.ID
		doc.Cats = append(doc.Cats, c)
		if err := r.save(ctx, doc); err != nil {
			return domain.Cat{}, err
		}
		return c, nil
	})
}

// Update 整体替换；不存在返回 nil, nil
func (r *CatRepo) Update(ctx context.Context, c domain.Cat) (*domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Cat, error) {
		doc := r.load(ctx)
		i := indexOfCat(doc.Cats, c.ID)
		if i < 0 {
			return nil, nil
		}
		if c.Temperament == nil {
			c.Temperament = []domain.Temperament{}
		}
		doc.Cats[i] = c
		if err := r.save(ctx, doc); err != nil {
			return nil, err
		}
		return &c, nil
	})
}

// Patch 仅修改负责员工与领养人；给出 adopterID 即视为已领养
func (r *CatRepo) Patch(ctx context.Context, id int, staffInCharge *string, adopterID *int) (*domain.Cat, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.Cat, error) {
		doc := r.load(ctx)
		i := indexOfCat(doc.Cats, id)
		if i < 0 {
			return nil, nil
		}
		c := &doc.Cats[i]
		if staffInCharge != nil && *staffInCharge != "" {
			c.StaffInCharge = *staffInCharge
		}
		if adopterID != nil {
			a := *adopterID
			c.AdopterID = &a
			c.IsAdopted = true
		}
		if err := r.save(ctx, doc); err != nil {
			return nil, err
		}
		out := *c
		return &out, nil
	})
}

// Remove 返回是否删除了记录
func (r *CatRepo) Remove(ctx context.Context, id int) (bool, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (bool, error) {
		doc := r.load(ctx)
		i := indexOfCat(doc.Cats, id)
		if i < 0 {
			return false, nil
		}
		doc.Cats = slices.Delete(doc.Cats, i, i+1)
		if err := r.save(ctx, doc); err != nil {
			return false, err
		}
		return true, nil
	})
}

func indexOfCat(cats []domain.Cat, id int) int {
	return slices.IndexFunc(cats, func(c domain.Cat) bool { return c.ID == id })
}

func catIDs(cats []domain.Cat) func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for _, c := range cats {
			if !yield(c.ID) {
				return
			}
		}
	}
}
