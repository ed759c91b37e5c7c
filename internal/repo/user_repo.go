package repo

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/store"
)

type usersDocument struct {
	Users []domain.User `json:"users"`
}

func emptyUsers() usersDocument { return usersDocument{Users: []domain.User{}} }

type UserRepo struct {
	col    Collection
	hasher domain.PasswordHasher
	newID  func() string
	now    func() time.Time
}

func NewUserRepo(col Collection, hasher domain.PasswordHasher) *UserRepo {
	return &UserRepo{col: col, hasher: hasher, newID: uuid.NewString, now: time.Now}
}

func (r *UserRepo) load(ctx context.Context) usersDocument {
	return store.LoadOrDefault(ctx, r.col.Docs, UsersDoc, emptyUsers)
}

// Register 用户名区分大小写精确匹配；哈希在串行区内完成，避免并发重复注册
func (r *UserRepo) Register(ctx context.Context, username, password string) (domain.User, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (domain.User, error) {
		doc := r.load(ctx)
		if slices.ContainsFunc(doc.Users, func(u domain.User) bool { return u.Username == username }) {
			return domain.User{}, domain.Conflict("username already exists")
		}
		hash, err := r.hasher.Hash(password)
		if err != nil {
			return domain.User{}, err
		}
		u := domain.User{
			ID:        r.newID(),
			Username:  username,
			Password:  hash,
			CreatedAt: r.now().UTC(),
		}
		doc.Users = append(doc.Users, u)
		if err := store.Save(ctx, r.col.Docs, UsersDoc, doc); err != nil {
			return domain.User{}, err
		}
		return u, nil
	})
}

// FindByUsername 不存在返回 nil, nil
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(ctx, func(u domain.User) bool { return u.Username == username })
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.find(ctx, func(u domain.User) bool { return u.ID == id })
}

func (r *UserRepo) find(ctx context.Context, match func(domain.User) bool) (*domain.User, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) (*domain.User, error) {
		doc := r.load(ctx)
		if i := slices.IndexFunc(doc.Users, match); i >= 0 {
			u := doc.Users[i]
			return &u, nil
		}
		return nil, nil
	})
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	return store.WithExclusiveAccess(ctx, r.col.Seq, func(ctx context.Context) ([]domain.User, error) {
		doc := r.load(ctx)
		return append(make([]domain.User, 0, len(doc.Users)), doc.Users...), nil
	})
}
