package service

import (
	"context"

	"github.com/bookshare/bookshare-service/internal/errs"
	"github.com/bookshare/bookshare-service/internal/model"
	"github.com/bookshare/bookshare-service/pkg/auth"
	"github.com/pkg/errors"
)

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}
	return s.repo.CreateUser(ctx, req, hash)
}

func (s *Service) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCreds
		}
		return model.AuthResponse{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return model.AuthResponse{}, errs.ErrInvalidCreds
	}

	token, expiresAt, err := auth.NewToken(s.authCfg, user.UserUid, user.Username)
	if err != nil {
		return model.AuthResponse{}, errors.Wrap(err, "sign token")
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Unix()),
	}, nil
}

func (s *Service) GetProfile(ctx context.Context, userUid string) (model.User, error) {
	return s.repo.GetUserByUid(ctx, userUid)
}

func (s *Service) UpdateProfile(ctx context.Context, userUid string, req model.UpdateProfileRequest) (model.User, error) {
	if req.FullName == nil && req.Bio == nil && req.AvatarURL == nil {
		return s.repo.GetUserByUid(ctx, userUid)
	}
	return s.repo.UpdateProfile(ctx, userUid, req)
}
