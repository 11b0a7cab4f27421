// Package dto содержит объекты передачи данных HTTP слоя.
package dto

import (
	"time"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/ports/api"
)

// RegisterRequest содержит данные регистрационной формы.
type RegisterRequest struct {
	Surname    string `json:"surname" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Patronymic string `json:"patronymic"`
	Gender     string `json:"gender" validate:"required"`
	PhoneCode  string `json:"phone_code" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

// ToInput преобразует форму в входные данные регистрации.
func (r *RegisterRequest) ToInput() api.RegistrationInput {
	return api.RegistrationInput{
		Surname:    r.Surname,
		Name:       r.Name,
		Patronymic: r.Patronymic,
		Gender:     r.Gender,
		PhoneCode:  r.PhoneCode,
		Phone:      r.Phone,
		Email:      r.Email,
		Password:   r.Password,
	}
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse содержит данные о токенах.
type TokenResponse struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RefreshRequest содержит данные для обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest содержит данные для выхода пользователя.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserProfileResponse содержит данные профиля пользователя.
type UserProfileResponse struct {
	UserID     string    `json:"user_id"`
	Surname    string    `json:"surname"`
	Name       string    `json:"name"`
	Patronymic string    `json:"patronymic,omitempty"`
	Gender     string    `json:"gender"`
	PhoneCode  string    `json:"phone_code"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserProfileResponse создает ответ профиля из доменной сущности.
func NewUserProfileResponse(user *entities.User) *UserProfileResponse {
	return &UserProfileResponse{
		UserID:     user.ID,
		Surname:    user.Surname,
		Name:       user.Name,
		Patronymic: user.Patronymic,
		Gender:     string(user.Gender),
		PhoneCode:  user.PhoneCode,
		Phone:      user.Phone,
		Email:      user.Email,
		CreatedAt:  user.CreatedAt,
	}
}
