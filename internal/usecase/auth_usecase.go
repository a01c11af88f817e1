package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"fukuro_studio/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("admin credentials not configured")
)

// AccessToken is a signed admin session.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// IAuthUseCase authenticates the single studio administrator.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (AccessToken, error)
}

type AuthUseCase struct {
	username     string
	passwordHash []byte
	tokens       interfaces.ITokenIssuer
	log          *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

// NewAuthUseCase expects passwordHash to be a bcrypt hash.
func NewAuthUseCase(username, passwordHash string, tokens interfaces.ITokenIssuer, log *zap.Logger) *AuthUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthUseCase{username: username, passwordHash: []byte(passwordHash), tokens: tokens, log: log}
}

func (u *AuthUseCase) Login(_ context.Context, username, password string) (AccessToken, error) {
	if len(u.passwordHash) == 0 || u.username == "" {
		return AccessToken{}, ErrAuthNotConfigured
	}

	username = strings.TrimSpace(username)
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		u.log.Warn("[auth][usecase] login rejected", zap.String("username", username))
		return AccessToken{}, ErrInvalidCredentials
	}

	token, exp, err := u.tokens.Issue(u.username)
	if err != nil {
		return AccessToken{}, err
	}
	u.log.Info("[auth][usecase] login success", zap.String("username", username))
	return AccessToken{Token: token, ExpiresAt: exp}, nil
}
