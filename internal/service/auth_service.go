package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
	"cat-cafe/internal/domain"
	"cat-cafe/internal/repo"
	"cat-cafe/pkg/utils"
)

type AuthService struct {
	users *repo.UserRepo
	jwt   *auth.JWTer
	v     *domain.Validator
	log   *zap.Logger
}

func NewAuthService(users *repo.UserRepo, jwter *auth.JWTer, v *domain.Validator, l *zap.Logger) *AuthService {
	if l == nil {
		l = zap.NewNop()
	}
	return &AuthService{users: users, jwt: jwter, v: v, log: l}
}

func (s *AuthService) Register(ctx context.Context, in domain.Credentials) (domain.User, error) {
	if err := s.v.Credentials(in); err != nil {
		return domain.User{}, err
	}
	u, err := s.users.Register(ctx, in.Username, in.Password)
	if err != nil {
		return domain.User{}, err
	}
	s.log.Info("user registered", zap.String("uid", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Login 用户不存在与密码错误返回同一错误
func (s *AuthService) Login(ctx context.Context, in domain.Credentials) (auth.TokenPair, error) {
	if err := s.v.Credentials(in); err != nil {
		return auth.TokenPair{}, err
	}
	u, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if u == nil || !utils.CheckPassword(in.Password, u.Password) {
		return auth.TokenPair{}, domain.Unauthorized("invalid credentials")
	}
	return s.issue(u)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" {
		return auth.TokenPair{}, domain.Validation("refresh token is required",
			domain.FieldError{Field: "refreshToken", Message: "is required"})
	}
	claims, err := s.jwt.Parse(refreshToken, auth.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, &domain.Error{Kind: domain.KindUnauthorized, Msg: "invalid refresh token", Err: err}
	}
	u, err := s.users.FindByID(ctx, claims.UID)
	if err != nil {
		return auth.TokenPair{}, err
	}
	if u == nil {
		return auth.TokenPair{}, domain.Unauthorized("invalid refresh token")
	}
	return s.issue(u)
}

func (s *AuthService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AuthService) issue(u *domain.User) (auth.TokenPair, error) {
	pair, err := s.jwt.IssuePair(u.ID, u.Username)
	if err != nil {
		return auth.TokenPair{}, errors.Join(errors.New("issue token failed"), err)
	}
	return pair, nil
}
