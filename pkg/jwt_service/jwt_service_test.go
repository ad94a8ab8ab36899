package jwtservice_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/healthydev/internal/error_values"
	"github.com/limbo/healthydev/pkg/entity"
	jwtservice "github.com/limbo/healthydev/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	serv := jwtservice.New("secret", time.Minute)
	user := &entity.User{ID: uuid.New(), Name: "test_name"}
	token, err := serv.GenerateToken(user)
	require.NoError(t, err)
	claims, err := serv.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Name, claims.Username)
}

func TestParseTokenErrors(t *testing.T) {
	serv := jwtservice.New("secret", time.Minute)
	token, err := jwtservice.New("other_secret", time.Minute).GenerateToken(&entity.User{ID: uuid.New(), Name: "n"})
	require.NoError(t, err)
	t.Run("foreign signature", func(t *testing.T) {
		_, err := serv.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := serv.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
