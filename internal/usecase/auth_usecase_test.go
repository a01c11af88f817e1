package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "fukuro_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mock_interfaces.NewMockITokenIssuer(ctrl)
		exp := testNow.Add(time.Hour)
		tokens.EXPECT().Issue("admin").Return("jwt-token", exp, nil)

		uc := NewAuthUseCase("admin", string(hash), tokens, nil)
		tok, err := uc.Login(context.Background(), " admin ", "s3cret")
		assertNoErr(t, err)
		if tok.Token != "jwt-token" || !tok.ExpiresAt.Equal(exp) {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewAuthUseCase("admin", string(hash), mock_interfaces.NewMockITokenIssuer(ctrl), nil)
		if _, err := uc.Login(context.Background(), "admin", "nope"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewAuthUseCase("admin", string(hash), mock_interfaces.NewMockITokenIssuer(ctrl), nil)
		if _, err := uc.Login(context.Background(), "root", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		uc := NewAuthUseCase("admin", "", nil, nil)
		if _, err := uc.Login(context.Background(), "admin", "x"); !errors.Is(err, ErrAuthNotConfigured) {
			t.Fatalf("expected ErrAuthNotConfigured, got %v", err)
		}
	})
}
