package service_test

import (
	"context"
	"errors"
	"rideflow/config"
	"rideflow/infras/jwt"
	jwtMocks "rideflow/infras/jwt/mocks"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/internal/domains/auth/model/dto"
	"rideflow/internal/domains/auth/service"
	userMocks "rideflow/internal/domains/user/mocks"
	userModel "rideflow/internal/domains/user/model"
	"rideflow/shared/constant"
	"rideflow/shared/failure"
	"rideflow/shared/password"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = "user-1"

var tokenPair = &jwt.TokenPair{
	AccessToken:  "access",
	RefreshToken: "refresh",
	TokenType:    "Bearer",
	ExpiresIn:    3600,
}

type fixture struct {
	repo *userMocks.MockUser
	jwt  *jwtMocks.MockJWT
	svc  service.Auth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo: userMocks.NewMockUser(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, otelMocks.NewOtel(), f.jwt)

	return f
}

func storedUser(t *testing.T, role string, active bool) userModel.User {
	t.Helper()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	return userModel.User{
		ID:       userID,
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "+919000000001",
		Password: hash,
		Role:     role,
		IsActive: active,
	}
}

func TestRegister(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Ravi",
		Email:    "Ravi@Example.com",
		Phone:    "+919000000002",
		Password: "correct-horse",
		Role:     constant.RoleDriver,
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
			assert.Equal(t, "ravi@example.com", user.Email)
			assert.Equal(t, constant.RoleDriver, user.Role)
			assert.True(t, user.IsActive)
			assert.NoError(t, password.Verify("correct-horse", user.Password))

			return nil
		})
		f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).DoAndReturn(func(identity jwt.Identity) (*jwt.TokenPair, error) {
			assert.Equal(t, constant.RoleDriver, identity.Role)

			return tokenPair, nil
		})

		res, err := f.svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "Ravi", res.User.Name)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), req)
		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("unique violation race", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := f.svc.Register(context.Background(), req)
		assert.True(t, failure.IsKind(err, failure.KindConflict))
	})

	t.Run("defaults to rider", func(t *testing.T) {
		rider := req
		rider.Role = ""

		assert.Equal(t, constant.RoleRider, rider.ToUserModel("hash").Role)
	})
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		password string
		user     func(t *testing.T) userModel.User
		setup    func(f *fixture)
		wantKind failure.Kind
	}{
		{
			name:     "success",
			password: "correct-horse",
			user:     func(t *testing.T) userModel.User { return storedUser(t, constant.RoleRider, true) },
			setup: func(f *fixture) {
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokenPair, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Contains(t, fields, userModel.FieldLastLogin)

					return nil
				})
			},
		},
		{
			name:     "unknown email",
			password: "correct-horse",
			user:     func(*testing.T) userModel.User { return userModel.User{} },
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "wrong password",
			password: "wrong-horse",
			user:     func(t *testing.T) userModel.User { return storedUser(t, constant.RoleRider, true) },
			wantKind: failure.KindUnauthorized,
		},
		{
			name:     "deactivated",
			password: "correct-horse",
			user:     func(t *testing.T) userModel.User { return storedUser(t, constant.RoleRider, false) },
			wantKind: failure.KindForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user(t), nil)

			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: tt.password})
			if tt.wantKind != "" {
				assert.True(t, failure.IsKind(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.NotNil(t, res.User.LastLogin)
		})
	}
}

func TestRefreshToken(t *testing.T) {
	t.Run("reissues with current role", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(&jwt.Claims{UserID: userID, Role: constant.RoleRider}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, constant.RoleDriver, true), nil)
		f.jwt.EXPECT().GenerateTokenPair(jwt.Identity{UserID: userID, Email: "asha@example.com", Role: constant.RoleDriver}).Return(tokenPair, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", res.TokenType)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("bogus", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bogus"})
		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})

	t.Run("deleted user", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(&jwt.Claims{UserID: userID}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
	})
}

func TestValidate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, constant.RoleRider, true), nil)

	res, err := f.svc.Validate(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", res.Email)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("connection reset"))

	_, err = f.svc.Validate(context.Background(), userID)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, constant.RoleRider, true), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			hash, _ := fields[userModel.FieldPassword].(string)
			assert.NoError(t, password.Verify("battery-staple", hash))
			assert.Equal(t, userID, fields[constant.FieldModifiedBy])

			return nil
		})

		err := f.svc.ChangePassword(context.Background(), userID, dto.ChangePasswordRequest{
			CurrentPassword: "correct-horse",
			NewPassword:     "battery-staple",
		})
		require.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, constant.RoleRider, true), nil)

		err := f.svc.ChangePassword(context.Background(), userID, dto.ChangePasswordRequest{
			CurrentPassword: "nope-nope",
			NewPassword:     "battery-staple",
		})
		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})
}
