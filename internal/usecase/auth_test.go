package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	users := newMemUsers()
	svc := NewAuthService(users)
	ctx := context.Background()

	user, fields, err := svc.Register(ctx, " Ada@Example.com ", "correct-horse", "correct-horse")
	require.NoError(t, err)
	require.Nil(t, fields)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	t.Run("duplicate email", func(t *testing.T) {
		_, fields, err := svc.Register(ctx, "ada@example.com", "another-pass", "another-pass")
		require.NoError(t, err)
		assert.Contains(t, fields, "email")
		assert.Len(t, users.items, 1)
	})

	t.Run("field errors", func(t *testing.T) {
		cases := []struct {
			name, email, password, confirm string
			field                          string
		}{
			{"empty email", "", "long-enough", "long-enough", "email"},
			{"empty password", "b@example.com", "", "", "password"},
			{"short password", "b@example.com", "short", "short", "password"},
			{"mismatch", "b@example.com", "long-enough", "long-enougH", "password_confirm"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, fields, err := svc.Register(ctx, tc.email, tc.password, tc.confirm)
				require.NoError(t, err)
				assert.Contains(t, fields, tc.field)
			})
		}
		assert.Len(t, users.items, 1, "failed registrations write nothing")
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	svc := NewAuthService(newMemUsers())
	ctx := context.Background()
	_, _, err := svc.Register(ctx, "ada@example.com", "correct-horse", "correct-horse")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "ADA@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.Authenticate(ctx, "ada@example.com", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct-horse")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
