package service

import (
	"context"

	"github.com/contractorpro/contractorpro/internal/api/dto"
	"github.com/contractorpro/contractorpro/internal/domain/user"
	ierr "github.com/contractorpro/contractorpro/internal/errors"
)

const invalidCredentialsHint = "Invalid email or password"

type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
}

func NewAuthService(params ServiceParams) AuthService {
	return &authService{
		ServiceParams: params,
	}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("user already exists").
			WithHint("An account with this email already exists").
			WithReportableDetails(map[string]any{"email": req.Email}).
			Mark(ierr.ErrAlreadyExists)
	}

	hash, err := s.Auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := user.NewUser(req.Email, req.Name, hash)
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.Infow("user signed up", "user_id", u.ID)
	return s.issueToken(u)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("unknown email").
				WithHint(invalidCredentialsHint).
				Mark(ierr.ErrUnauthorized)
		}
		return nil, err
	}

	if err := s.Auth.ComparePassword(u.PasswordHash, req.Password); err != nil {
		return nil, ierr.WithError(err).
			WithHint(invalidCredentialsHint).
			Mark(ierr.ErrUnauthorized)
	}

	return s.issueToken(u)
}

func (s *authService) issueToken(u *user.User) (*dto.AuthResponse, error) {
	token, err := s.Auth.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:  token,
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
	}, nil
}
