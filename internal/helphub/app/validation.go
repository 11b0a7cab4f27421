package app

import (
	"regexp"
	"strings"

	"helphub/internal/helphub/domain/services"
	"helphub/internal/helphub/ports/api"
)

// Сообщения валидации, отображаемые пользователю.
const (
	MsgEnterSurname    = "Введіть прізвище."
	MsgEnterName       = "Введіть ім'я."
	MsgEnterPatronymic = "Введіть по батькові."
	MsgChooseGender    = "Оберіть стать."
	MsgChoosePhoneCode = "Оберіть коректний код країни."
	MsgPhoneDigits     = "Номер телефону має містити від 7 до 12 цифр."
	MsgEnterValidEmail = "Введіть коректну електронну пошту."
	MsgEmailExists     = "Користувач з такою поштою вже існує."
	MsgPasswordTooShort= "Пароль має містити щонайменше 8 символів."
	MsgEnterPassword   = "Введіть пароль."
	MsgWrongCredentials= "Невірна пошта або пароль."
)

// Границы количества цифр в номере телефона.
const (
	MinPhoneDigits = 7
	MaxPhoneDigits = 12
)

var (
	emailRegex    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)

	validGenders = map[string]struct{}{
		"male":   {},
		"female": {},
	}

	validPhoneCodes = map[string]struct{}{
		"+380": {},
		"+1":   {},
		"+44":  {},
		"+49":  {},
		"+33":  {},
		"+48":  {},
	}
)

// ValidationError накапливает ошибки проверки пользовательского ввода.
// Действие не выполняется, если список сообщений не пуст.
type ValidationError struct {
	Messages []string
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ValidateRegistration проверяет поля регистрационной формы и возвращает все
// найденные ошибки в фиксированном порядке, не прерываясь на первой.
// Проверка занятости email выполняется через emailTaken и только после того,
// как email прошел проверку формата; сама функция побочных эффектов не имеет.
func ValidateRegistration(input api.RegistrationInput, emailTaken func(string) bool) []string {
	var errs []string

	if strings.TrimSpace(input.Surname) == "" {
		errs = append(errs, MsgEnterSurname)
	}
	if strings.TrimSpace(input.Name) == "" {
		errs = append(errs, MsgEnterName)
	}
	if strings.TrimSpace(input.Patronymic) == "" {
		errs = append(errs, MsgEnterPatronymic)
	}

	if _, ok := validGenders[input.Gender]; !ok {
		errs = append(errs, MsgChooseGender)
	}

	if _, ok := validPhoneCodes[input.PhoneCode]; !ok {
		errs = append(errs, MsgChoosePhoneCode)
	}

	digits := nonDigitRegex.ReplaceAllString(input.Phone, "")
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		errs = append(errs, MsgPhoneDigits)
	}

	if !IsValidEmail(input.Email) {
		errs = append(errs, MsgEnterValidEmail)
	} else if emailTaken != nil && emailTaken(strings.TrimSpace(input.Email)) {
		errs = append(errs, MsgEmailExists)
	}

	if len(strings.TrimSpace(input.Password)) < services.MinPasswordLength {
		errs = append(errs, MsgPasswordTooShort)
	}

	return errs
}

// ValidateLogin проверяет поля формы входа.
func ValidateLogin(email, password string) []string {
	var errs []string

	if !IsValidEmail(email) {
		errs = append(errs, MsgEnterValidEmail)
	}
	if strings.TrimSpace(password) == "" {
		errs = append(errs, MsgEnterPassword)
	}

	return errs
}

// IsValidEmail проверяет формат электронной почты.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}
