package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cornerstone/chores-api/internal/core/domain"
	"github.com/cornerstone/chores-api/internal/core/ports"
)

// dummyHash is compared against when a username does not exist, so a login
// attempt for an unknown user costs the same as one with a wrong password.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("cornerstone-dummy"), bcrypt.DefaultCost)
	return h
}()

// AuthService implements signup, credential verification, and user lookups.
type AuthService struct {
	repo    ports.UserRepository
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, limiter: limiter, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || input.Role == "" {
		return nil, domain.ErrInvalidUserData
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidUserData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		AvatarURL:    input.AvatarURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and wrong
// passwords fail with the same ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login limiter unavailable")
		} else if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Burn a bcrypt compare so the two failure paths cost the same.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.recordFailure(ctx, username)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Clear(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to clear login counter")
		}
	}

	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
	}
}

func (s *AuthService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *AuthService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// seedUser is the on-disk shape accepted by LoadUsersFromFile. Passwords are
// plaintext in the file and hashed before persisting.
type seedUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
}

// LoadUsersFromFile bulk-loads users from a JSON array file. The first entry
// with a missing required field aborts the load with a descriptive error;
// already-existing usernames are skipped.
func (s *AuthService) LoadUsersFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []seedUser
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	loaded := 0
	for i, seed := range seeds {
		if seed.Username == "" || seed.Password == "" || seed.Role == "" {
			return loaded, fmt.Errorf("seed entry %d: %w", i, domain.ErrInvalidUserData)
		}
		_, err := s.Signup(ctx, ports.SignupInput{
			Username:  seed.Username,
			Password:  seed.Password,
			Email:     seed.Email,
			Role:      seed.Role,
			AvatarURL: seed.AvatarURL,
		})
		if err == domain.ErrUserExists {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("seed entry %d: %w", i, err)
		}
		loaded++
	}

	s.logger.Info().Int("loaded", loaded).Str("path", path).Msg("seeded users from file")
	return loaded, nil
}
