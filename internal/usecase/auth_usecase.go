package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"roomatch/internal/domain/entity"
	"roomatch/internal/domain/repository"
	"roomatch/internal/infrastructure/auth"
	"roomatch/pkg/errors"
	"roomatch/pkg/logger"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.JWTManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.JWTManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *entity.User `json:"user"`
}

func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, errors.Conflict("User already exists with this email")
	} else if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	role := input.Role
	if role != entity.RoleBuyer && role != entity.RoleSeller && role != entity.RoleBoth {
		role = entity.RoleBoth
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		Preferences: entity.Preferences{
			PriceMin:         0,
			PriceMax:         2000,
			NumRoommates:     "Any",
			PreferredGenders: []string{"Any"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User %s signed up", user.ID)
	return uc.issue(user)
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || user == nil {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	return uc.issue(user)
}

func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name         *string
	Role         *string
	ProfileImage *string
	Preferences  *entity.Preferences
}

// UpdateProfile mutates the caller's own record. Identity (ID, email)
// is immutable; role may change between buyer, seller and both.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Role != nil {
		switch *input.Role {
		case entity.RoleBuyer, entity.RoleSeller, entity.RoleBoth:
			user.Role = *input.Role
		default:
			return nil, errors.BadRequest("Role must be buyer, seller or both", nil)
		}
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}
	if input.Preferences != nil {
		user.Preferences = *input.Preferences
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*AuthResult, error) {
	token, expiresAt, err := uc.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
