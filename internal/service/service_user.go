package service

import (
	"context"
	"fmt"

	"github.com/rta-cma/camtrack/internal/authz"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

const minPasswordLength = 8

// userService implements [UserService]. Every operation is gated by the
// manage_users action, with two carve-outs: any account may read itself and
// change its own password.
type userService struct {
	logger    *logger.Logger
	users     store.UserRepository
	evaluator *authz.Evaluator
}

// NewUserService constructs a [UserService].
func NewUserService(users store.UserRepository, evaluator *authz.Evaluator, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		users:     users,
		evaluator: evaluator,
		logger:    logger,
	}
}

func validateUser(user models.User) error {
	if user.Username == "" || user.Email == "" {
		return fmt.Errorf("%w: username and email are required", ErrInvalidDataProvided)
	}
	if !user.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, user.Role)
	}
	return nil
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, principal models.User, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
		return models.User{}, err
	}
	if err := validateUser(user); err != nil {
		return models.User{}, err
	}
	if len(password) < minPasswordLength {
		return models.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.HashedPassword = hash

	saved, err := s.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return saved, nil
}

// GetUser returns one account. Accounts may always read themselves; reading
// anyone else requires manage_users.
func (s *userService) GetUser(ctx context.Context, principal models.User, id int64) (models.User, error) {
	if principal.ID != id {
		if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
			return models.User{}, err
		}
	}
	return s.users.GetUserByID(ctx, id)
}

// ListUsers returns the page of accounts matching spec.
func (s *userService) ListUsers(ctx context.Context, principal models.User, spec query.Spec) (models.Page[models.User], error) {
	if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
		return models.Page[models.User]{}, err
	}
	if err := spec.Validate(); err != nil {
		return models.Page[models.User]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	users, total, err := s.users.ListUsers(ctx, spec)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("error listing users: %w", err)
	}

	return models.NewPage(users, total, spec.Skip, spec.Limit), nil
}

// UpdateUser overwrites the identity and authorization fields of an account.
func (s *userService) UpdateUser(ctx context.Context, principal models.User, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
		return models.User{}, err
	}
	if err := validateUser(user); err != nil {
		return models.User{}, err
	}

	saved, err := s.users.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return saved, nil
}

// UpdateUserPassword replaces the account's password hash. Accounts may
// change their own password; changing anyone else's requires manage_users.
func (s *userService) UpdateUserPassword(ctx context.Context, principal models.User, id int64, password string) error {
	log := logger.FromContext(ctx)

	if principal.ID != id {
		if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
			return err
		}
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidDataProvided, minPasswordLength)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUserPassword").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.users.UpdateUserPassword(ctx, id, hash)
}

// DeleteUser removes an account. Self-deletion is rejected so an
// administrator cannot lock the system by removing its last admin in one
// careless call.
func (s *userService) DeleteUser(ctx context.Context, principal models.User, id int64) error {
	if err := authorize(s.evaluator, principal, authz.ActionManageUsers, nil); err != nil {
		return err
	}
	if principal.ID == id {
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidDataProvided)
	}
	return s.users.DeleteUser(ctx, id)
}
