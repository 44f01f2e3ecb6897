// Package auth provides login and JWT issuance.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	userrepo "github.com/finexa/backend/pkg/repository/user"
	"github.com/finexa/backend/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service authenticates users and issues bearer tokens.
type Service struct {
	users  userrepo.Repository
	cfg    *config.Jwt
	logger *slog.Logger
}

// New creates an auth Service.
func New(users userrepo.Repository, cfg *config.Jwt, logger *slog.Logger) *Service {
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Login checks the credentials and returns the matching user.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (*dto.UserRead, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, u.HashedPassword) {
		s.logger.Warn("login rejected", "email", email)
		return nil, ErrInvalidCredentials
	}
	s.logger.Info("login successful", "user_id", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 bearer token carrying the user's id and
// email.
func (s *Service) GenerateToken(u *dto.UserRead) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUserID extracts the subject id from a verified token.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("token has no user_id claim")
	}
	return uuid.Parse(raw)
}
