package application

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/outlet-platform/stock-service/internal/apperrors"
	"github.com/outlet-platform/stock-service/internal/domain"
	"github.com/outlet-platform/stock-service/internal/logging"
)

const minPasswordLength = 4

// UserService registers online customers and authenticates their logins.
type UserService struct {
	users  domain.UserRepository
	logger *logging.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, logger *logging.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a new online customer account.
func (s *UserService) Register(ctx context.Context, cmd RegisterUserCommand) (*UserDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" {
		return nil, apperrors.ErrValidation("Name cannot be empty")
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, apperrors.ErrValidation("Password must be at least 4 characters")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email %s: %w", email, err)
	}
	if exists {
		return nil, apperrors.ErrDuplicate("Email already registered")
	}

	user, err := domain.NewUser(
		uuid.NewString(),
		name,
		email,
		hashPassword(cmd.Password),
		strings.TrimSpace(cmd.Address),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, apperrors.ErrValidation(mapUserError(err))
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user %s: %w", user.UserID, err)
	}

	s.logger.Info("User registered", "userId", user.UserID, "email", user.Email)
	return ToUserDTO(user), nil
}

// Authenticate verifies a login attempt. A missing account and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, cmd AuthenticateUserCommand) (*UserDTO, error) {
	email := strings.TrimSpace(cmd.Email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
	}
	if user == nil {
		return nil, apperrors.ErrAuthentication("")
	}

	supplied := hashPassword(cmd.Password)
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(user.PasswordHash)) != 1 {
		s.logger.Warn("Authentication failed", "email", email)
		return nil, apperrors.ErrAuthentication("")
	}

	s.logger.Info("User authenticated", "userId", user.UserID)
	return ToUserDTO(user), nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func mapUserError(err error) string {
	switch err {
	case domain.ErrInvalidEmail:
		return "Invalid email address"
	case domain.ErrEmptyUserName:
		return "Name cannot be empty"
	default:
		return err.Error()
	}
}
