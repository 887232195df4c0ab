package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService registers and authenticates users against a UsersRepo.
type AuthService struct {
	users UsersRepo
	cost  int
}

func NewAuthService(users UsersRepo) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// Register creates a user. Input problems are returned as field errors with
// nothing written; err is reserved for store failures.
func (s *AuthService) Register(ctx context.Context, email, password, confirm string) (domain.User, domain.FieldErrors, error) {
	email = normalizeEmail(email)
	fields := domain.FieldErrors{}

	if email == "" {
		fields.Add("email", "Email is required.")
	} else if _, err := s.users.GetByEmail(ctx, email); err == nil {
		fields.Add("email", "An account with this email already exists.")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, nil, fmt.Errorf("lookup user: %w", err)
	}

	switch {
	case password == "":
		fields.Add("password", "Password is required.")
	case len(password) < MinPasswordLength:
		fields.Add("password", fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength))
	}
	if password != confirm {
		fields.Add("password_confirm", "Passwords do not match.")
	}
	if !fields.Empty() {
		return domain.User{}, fields, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.User{}, nil, err
	}
	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			fields.Add("email", "An account with this email already exists.")
			return domain.User{}, fields, nil
		}
		return domain.User{}, nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil, nil
}

// Authenticate checks credentials. Unknown emails and wrong passwords both
// return ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
