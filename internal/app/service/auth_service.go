package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"casthub/internal/common"
	"casthub/internal/common/security"
	"casthub/internal/domain/model"
	"casthub/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type CreateAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) CreateAccount(ctx context.Context, req CreateAccountRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrBadRequest
	}
	if req.Role == "" {
		req.Role = model.RoleListener
	}
	if !model.ValidRole(req.Role) {
		return nil, common.ErrBadRequest
	}

	email := normalizeEmail(req.Email)

	// The duplicate check runs before hashing so a taken email costs nothing.
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: hashedPassword,
		Role:           req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			// Raced another signup for the same email.
			return nil, common.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", common.ErrBadRequest
	}

	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Known enumeration asymmetry: a missing account and a bad password
			// answer differently. Kept for wire compatibility.
			return "", common.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return "", common.ErrWrongPassword
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user.HashedPassword = ""
	return user, nil
}

func (s *AuthService) EditProfile(ctx context.Context, userID string, req EditProfileRequest) error {
	if req.Email == nil && req.Password == nil {
		return common.ErrBadRequest
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email == "" {
			return common.ErrBadRequest
		}
		if email != user.Email {
			if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
				return common.ErrDuplicateAccount
			} else if !errors.Is(err, common.ErrNotFound) {
				return fmt.Errorf("failed to check for existing user: %w", err)
			}
			user.Email = email
		}
	}

	if req.Password != nil {
		if *req.Password == "" {
			return common.ErrBadRequest
		}
		hashedPassword, err := security.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return common.ErrDuplicateAccount
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
