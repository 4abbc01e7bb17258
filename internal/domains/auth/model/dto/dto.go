package dto

import (
	"rideflow/infras/jwt"
	userModel "rideflow/internal/domains/user/model"
	userDto "rideflow/internal/domains/user/model/dto"
	"rideflow/shared/constant"
	gModel "rideflow/shared/model"
	"rideflow/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Phone    string `json:"phone"    validate:"required,min=7,max=20"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=rider driver"`
}

// Email addresses are stored lower-cased so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleRider
	}

	now := timezone.Now()
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Name:     strings.TrimSpace(r.Name),
		Email:    NormalizeEmail(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (t *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.TokenType = tokenPair.TokenType
	t.ExpiresIn = tokenPair.ExpiresIn
}

type LoginResponse struct {
	TokenResponse
	User userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) From(tokenPair *jwt.TokenPair, user userModel.User) {
	l.FromTokenPair(tokenPair)
	l.User.FromModel(user)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
