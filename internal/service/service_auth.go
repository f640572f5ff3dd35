package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rta-cma/camtrack/internal/config"
	"github.com/rta-cma/camtrack/internal/logger"
	"github.com/rta-cma/camtrack/internal/store"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// authService implements [AuthService] over the user repository and the
// application's JWT settings.
type authService struct {
	logger *logger.Logger
	users  store.UserRepository
	cfg    config.App
}

// NewAuthService constructs an [AuthService].
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		users:  users,
		cfg:    cfg,
		logger: logger,
	}
}

// Login resolves the account by username or email and verifies the password.
// A matching but deactivated account yields [ErrUserInactive]; an unknown
// login and a wrong password are both reported as [ErrWrongPassword] so the
// response does not reveal which accounts exist.
func (s *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: login and password are required", ErrInvalidDataProvided)
	}

	user, err := s.users.FindUserByLoginOrEmail(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "*authService.Login").Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if !utils.VerifyPassword(password, user.HashedPassword) {
		return models.User{}, ErrWrongPassword
	}
	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}

	if err = s.users.TouchLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the stamp is best-effort.
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to stamp last login")
	}

	return user, nil
}

// CreateToken issues a signed JWT for the authenticated user.
func (s *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.ID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}

// ParseToken validates the signed token string against the application's
// sign key and issuer. Any validation failure is normalised to
// [ErrTokenIsExpiredOrInvalid].
func (s *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return token, nil
}

// CurrentUser resolves a bearer token to its live account. The account is
// re-read on every call so role changes and deactivation take effect
// immediately, not at token expiry.
func (s *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := s.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "*authService.CurrentUser").Msg("error fetching user")
		return models.User{}, fmt.Errorf("error fetching user: %w", err)
	}
	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}

	return user, nil
}
