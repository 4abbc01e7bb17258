package jwt_test

import (
	"rideflow/config"
	"rideflow/infras/jwt"
	"testing"

	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "rideflow"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	identity := jwt.Identity{UserID: "rider-1", Email: "asha@example.com", Role: "rider"}

	pair, err := svc.GenerateTokenPair(identity)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.Equal(t, "rideflow", claims.Issuer)

	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = svc.ValidateToken("garbage", jwt.AccessToken)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateRejectsWrongType(t *testing.T) {
	claims := jwt.Claims{UserID: "rider-1", Type: jwt.RefreshToken}

	signed, err := jwtGo.NewWithClaims(jwtGo.SigningMethodHS256, claims).SignedString([]byte("access-secret"))
	require.NoError(t, err)

	_, err = newService().ValidateToken(signed, jwt.AccessToken)
	require.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	require.ErrorIs(t, err, jwt.ErrMissingHeader)

	_, err = jwt.ExtractTokenFromHeader("Basic dXNlcg==")
	require.ErrorIs(t, err, jwt.ErrMalformedToken)

	_, err = jwt.ExtractTokenFromHeader("Bearer ")
	require.ErrorIs(t, err, jwt.ErrMalformedToken)
}
