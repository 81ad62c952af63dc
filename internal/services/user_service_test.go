package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(setupTestDB(t))

	user, err := svc.Register(ctx, "tech@x.com", "pw123456", models.RoleTechnician)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleTechnician, user.Role)
	assert.NotEqual(t, "pw123456", user.Password, "password must be stored hashed")

	stored, err := svc.Authenticate(ctx, "tech@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.Equal(t, models.RoleTechnician, stored.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(setupTestDB(t))

	first, err := svc.Register(ctx, "dup@x.com", "pw123456", models.RoleDentist)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.Register(ctx, "dup@x.com", "another", models.RoleTechnician)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Nil(t, second)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(setupTestDB(t))

	testCases := []struct {
		name     string
		email    string
		password string
		role     models.Role
		wantErr  error
	}{
		{name: "missing email", email: "", password: "pw", role: models.RoleDentist, wantErr: ErrMissingFields},
		{name: "blank email", email: "   ", password: "pw", role: models.RoleDentist, wantErr: ErrMissingFields},
		{name: "missing password", email: "a@x.com", password: "", role: models.RoleDentist, wantErr: ErrMissingFields},
		{name: "missing role", email: "a@x.com", password: "pw", role: "", wantErr: ErrMissingFields},
		{name: "unknown role", email: "a@x.com", password: "pw", role: "Admin", wantErr: ErrInvalidRole},
		{name: "wrong case role", email: "a@x.com", password: "pw", role: "dentist", wantErr: ErrInvalidRole},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, tt.role)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(setupTestDB(t))

	registered, err := svc.Register(ctx, "doc@x.com", "pw123456", models.RoleDentist)
	require.NoError(t, err)

	t.Run("matching credentials", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "doc@x.com", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, models.RoleDentist, user.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@x.com", "pw123456")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("email match is exact", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "DOC@x.com", "pw123456")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "doc@x.com", "wrong")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})
}
