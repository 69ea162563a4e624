package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/service"
	"github.com/stylesam/luxuria/internal/transport/http/middleware"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	repo := newMemoryUserRepo()
	users := service.NewUserService(repo, zap.NewNop())
	return service.NewAuthService(repo, users, testSecret, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(context.Background(), service.CreateUserInput{
		Login:    "stylesam",
		Password: "secret123",
		Name:     "Sam",
		Phone:    "+79001234567",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, "stylesam", resp.User.Login)

	requester, err := middleware.ParseRequester(resp.AccessToken, testSecret)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, requester.UserID)
	require.Equal(t, domain.RoleUser, requester.Role)

	login, err := svc.Login(context.Background(), service.LoginInput{Login: "StyleSam", Password: "secret123"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, login.User.ID)
	require.NotEmpty(t, login.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(context.Background(), service.CreateUserInput{
		Login: "stylesam", Password: "secret123", Name: "Sam", Phone: "+79001234567",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), service.LoginInput{Login: "stylesam", Password: "wrong"})
	require.True(t, apperr.IsForbidden(err))
}

func TestLogin_UnknownLogin(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(context.Background(), service.LoginInput{Login: "ghost", Password: "secret123"})
	require.True(t, apperr.IsForbidden(err))
}
