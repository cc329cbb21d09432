package authhandler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employability-backend/config"
	"employability-backend/db"
	"employability-backend/lib/utils/apperr"
	authutils "employability-backend/lib/utils/auth-utils"
	"employability-backend/models"
	authapimodels "employability-backend/models/api/auth"
)

func setupTest(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	config.Conf.Auth.JWTRefreshExpireInSec = 7200

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.DB = conn
	require.NoError(t, db.AutoMigrateDB())
	NewHandler()
}

func registerRequest() authapimodels.RegisterRequest {
	return authapimodels.RegisterRequest{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	t.Run(`регистрация выдает токены, роль всегда кодер`, func(t *testing.T) {
		setupTest(t)
		resp, err := Instance.Register(registerRequest())
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
		require.Equal(t, models.UserRoleCoder, resp.User.Role)

		claims, err := authutils.ParseToken(resp.Token)
		require.NoError(t, err)
		require.Equal(t, string(models.UserRoleCoder), claims["role"])
		require.Equal(t, resp.User.ID, claims["sub"])
	})

	t.Run(`повторная регистрация почты - Conflict`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Register(registerRequest())
		require.NoError(t, err)
		_, err = Instance.Register(registerRequest())
		require.True(t, apperr.IsConflict(err))
	})
}

func TestLogin(t *testing.T) {
	t.Run(`вход по верному паролю`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Register(registerRequest())
		require.NoError(t, err)

		resp, err := Instance.Login("ivan@example.com", "secret123")
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
	})

	t.Run(`одинаковый ответ на неверную почту и неверный пароль`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Register(registerRequest())
		require.NoError(t, err)

		_, errBadEmail := Instance.Login("missing@example.com", "secret123")
		require.Error(t, errBadEmail)
		_, errBadPassword := Instance.Login("ivan@example.com", "wrong")
		require.Error(t, errBadPassword)
		require.Equal(t, errBadEmail.Error(), errBadPassword.Error())
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run(`по refresh-токену выдается новая пара`, func(t *testing.T) {
		setupTest(t)
		resp, err := Instance.Register(registerRequest())
		require.NoError(t, err)

		refreshed, err := Instance.RefreshToken(resp.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.Token)
		require.Equal(t, resp.User.ID, refreshed.User.ID)
	})

	t.Run(`мусорный токен отклоняется`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.RefreshToken("garbage")
		require.Error(t, err)
	})
}
