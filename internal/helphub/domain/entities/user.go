// Package entities определяет доменные сущности сервиса HelpHub.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidEmail = errors.New("invalid email format")
)

// Gender определяет пол пользователя.
type Gender string

// Допустимые значения пола.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User представляет основную сущность домена пользователя.
// Учетная запись неизменяема после регистрации.
type User struct {
	ID           string
	Surname      string
	Name         string
	Patronymic   string
	Gender       Gender
	PhoneCode    string
	Phone        string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullPhone возвращает номер телефона вместе с кодом страны.
func (u *User) FullPhone() string {
	return u.PhoneCode + u.Phone
}
