package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/model"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/rs/zerolog/log"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if len(req.Password) > auth.MaxPasswordBytes {
		return nil, invalid("password", fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes))
	}

	_, err := s.users.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return nil, ErrPhoneTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, storageError("find user by phone", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		PasswordHash: hash,
		Grade:        strings.TrimSpace(req.Grade),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPhoneTaken
		}
		return nil, storageError("insert user", err)
	}

	log.Info().Uint("userID", user.ID).Msg("User registered")
	return s.session(user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByPhone(ctx, strings.TrimSpace(req.Phone))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storageError("find user by phone", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		log.Warn().Uint("userID", user.ID).Msg("Login failed: wrong password")
		return nil, err
	}
	return s.session(user)
}

func (s *authService) session(user *model.User) (*dto.AuthResponse, error) {
	token, exp, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AuthResponse{Token: token, ExpiresAt: exp}
	if err := copier.Copy(&resp.User, user); err != nil {
		return nil, err
	}
	return resp, nil
}
