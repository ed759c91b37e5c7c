// Package app 组装两个进程共用的依赖。
package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
	"cat-cafe/internal/core/config"
	"cat-cafe/internal/core/database"
	"cat-cafe/internal/domain"
	"cat-cafe/internal/repo"
	"cat-cafe/internal/service"
	"cat-cafe/internal/store"
	mdw "cat-cafe/internal/transport/http/middleware"
	"cat-cafe/pkg/utils"
)

type Container struct {
	Cats     *service.CatService
	Staff    *service.StaffService
	Adopters *service.AdopterService
	Auth     *service.AuthService
	JWT      *auth.JWTer
	Limiter  mdw.Limiter
}

// OpenBackend driver=file 写 JSON 文件，其余走 gorm documents 表
func OpenBackend(c config.Store, l *zap.Logger) (store.Backend, func(), error) {
	if c.Driver == "" || c.Driver == "file" {
		fb, err := store.NewFileBackend(c.Dir)
		if err != nil {
			return nil, nil, err
		}
		l.Info("store opened", zap.String("driver", "file"), zap.String("dir", fb.Dir()))
		return fb, func() {}, nil
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Username:           c.Username,
		Password:           c.Password,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetimeMin: c.ConnMaxLifetimeMin,
		LogLevel:           c.LogLevel,
	})
	if err != nil {
		return nil, nil, err
	}
	gb, err := store.NewGormBackend(db, c.AutoMigrate)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	l.Info("store opened", zap.String("driver", c.Driver))
	return gb, closeFn, nil
}

// Build 每个集合一个串行化器；同一进程内所有访问都经过它
func Build(cfg *config.Config, b store.Backend, l *zap.Logger) *Container {
	docs := store.NewDocs(b, l)
	col := func(name string) repo.Collection {
		return repo.NewCollection(docs, store.NewSequencer(name))
	}
	cats := repo.NewCatRepo(col(repo.CatsDoc))
	staff := repo.NewStaffRepo(col(repo.StaffDoc))
	adopters := repo.NewAdopterRepo(col(repo.AdoptersDoc))
	users := repo.NewUserRepo(col(repo.UsersDoc), utils.BcryptHasher{Cost: cfg.Auth.BcryptCost})

	jwter := &auth.JWTer{
		Secret:     []byte(cfg.JWT.Secret),
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		RefreshTTL: time.Duration(cfg.JWT.RefreshTokenTTLHours) * time.Hour,
	}
	v := domain.NewValidator()

	return &Container{
		Cats:     service.NewCatService(cats, staff, adopters, v),
		Staff:    service.NewStaffService(staff, cats, v),
		Adopters: service.NewAdopterService(adopters, cats, v),
		Auth:     service.NewAuthService(users, jwter, v, l),
		JWT:      jwter,
		Limiter:  LoginLimiter(cfg, l),
	}
}

// LoginLimiter 配了 redis 且可连通时多实例共享计数，否则进程内
func LoginLimiter(cfg *config.Config, l *zap.Logger) mdw.Limiter {
	window := time.Duration(cfg.Auth.LoginWindowSec) * time.Second
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := rdb.Ping(ctx).Err()
		if err == nil {
			l.Info("login limiter uses redis", zap.String("addr", cfg.Redis.Addr))
			return mdw.NewRedisLimiter(rdb, cfg.Auth.LoginLimit, window)
		}
		l.Warn("redis unreachable, login limiter falls back to memory", zap.Error(err))
		_ = rdb.Close()
	}
	return mdw.NewMemoryLimiter(cfg.Auth.LoginLimit, window)
}
