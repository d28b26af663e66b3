package usecase

import (
	"context"
	"testing"

	"roomatch/internal/adapter/repository"
	"roomatch/internal/domain/entity"
	"roomatch/internal/infrastructure/auth"
	"roomatch/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) *AuthUseCase {
	t.Helper()

	store := repository.NewMemoryStore()
	tokens := auth.NewJWTManager("test-secret", 3600)
	return NewAuthUseCase(repository.NewMemoryUserRepository(store), tokens)
}

func TestSignupAndLogin(t *testing.T) {
	uc := newAuthEnv(t)
	ctx := context.Background()

	result, err := uc.Signup(ctx, SignupInput{
		Email:    "Alice@Example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
		Role:     entity.RoleSeller,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, entity.RoleSeller, result.User.Role)

	login, err := uc.Login(ctx, "alice@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	uc := newAuthEnv(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, SignupInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
	})
	require.NoError(t, err)

	_, err = uc.Signup(ctx, SignupInput{
		Email:    "ALICE@example.com",
		Password: "different-password",
		Name:     "Imposter",
	})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := newAuthEnv(t)
	ctx := context.Background()

	_, err := uc.Signup(ctx, SignupInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
	})
	require.NoError(t, err)

	// Wrong password and unknown email fail identically.
	_, err = uc.Login(ctx, "alice@example.com", "wrong-password")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.Login(ctx, "nobody@example.com", "hunter2hunter2")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestUpdateProfileRoleAndPreferences(t *testing.T) {
	uc := newAuthEnv(t)
	ctx := context.Background()

	result, err := uc.Signup(ctx, SignupInput{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
		Name:     "Alice",
		Role:     entity.RoleBuyer,
	})
	require.NoError(t, err)

	role := entity.RoleBoth
	prefs := entity.Preferences{PriceMax: 1800, PreferredLocations: []string{"Bushwick"}}
	updated, err := uc.UpdateProfile(ctx, result.User.ID, UpdateProfileInput{
		Role:        &role,
		Preferences: &prefs,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBoth, updated.Role)
	assert.Equal(t, 1800.0, updated.Preferences.PriceMax)

	bad := "landlord"
	_, err = uc.UpdateProfile(ctx, result.User.ID, UpdateProfileInput{Role: &bad})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
