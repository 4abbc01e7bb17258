package dto_test

import (
	"encoding/json"
	"rideflow/infras/jwt"
	"rideflow/internal/domains/auth/model/dto"
	userModel "rideflow/internal/domains/user/model"
	"rideflow/shared/constant"
	"rideflow/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "rider",
			body: `{"name":"Asha","email":"asha@example.com","phone":"+919000000001","password":"correct-horse"}`,
		},
		{
			name: "driver",
			body: `{"name":"Ravi","email":"ravi@example.com","phone":"+919000000002","password":"correct-horse","role":"driver"}`,
		},
		{
			name:    "admin role",
			body:    `{"name":"Eve","email":"eve@example.com","phone":"+919000000003","password":"correct-horse","role":"admin"}`,
			wantErr: true,
		},
		{
			name:    "short password",
			body:    `{"name":"Asha","email":"asha@example.com","phone":"+919000000001","password":"short"}`,
			wantErr: true,
		},
		{
			name:    "missing phone",
			body:    `{"name":"Asha","email":"asha@example.com","password":"correct-horse"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.RegisterRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRegisterRequestToUserModel(t *testing.T) {
	req := dto.RegisterRequest{Name: "  Asha ", Email: " Asha@Example.COM", Phone: "+919000000001"}

	user := req.ToUserModel("hash")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, constant.RoleRider, user.Role)
	assert.Equal(t, user.ID, user.CreatedBy)
	assert.True(t, user.IsActive)
}

func TestLoginResponse(t *testing.T) {
	var res dto.LoginResponse

	res.From(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 60},
		userModel.User{ID: "user-1", Name: "Asha", Password: "hash", Role: constant.RoleRider})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, `"accessToken":"a"`)
	assert.Contains(t, body, `"refreshToken":"r"`)
	assert.Contains(t, body, `"expiresIn":60`)
	assert.Contains(t, body, `"name":"Asha"`)
	assert.NotContains(t, body, "hash")
}

func TestChangePasswordRequest(t *testing.T) {
	same := dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "correct-horse"}
	assert.Error(t, validator.ValidateStruct(&same))

	ok := dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "battery-staple"}
	assert.NoError(t, validator.ValidateStruct(&ok))
}
