// Package app реализует бизнес-логику сервиса HelpHub.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"helphub/internal/helphub/domain/entities"
	"helphub/internal/helphub/domain/services"
	"helphub/internal/helphub/ports/api"
	"helphub/internal/helphub/ports/repositories"
	svc "helphub/internal/helphub/ports/services"
	"helphub/pkg/logger"
)

const (
	methodRegister       = "Register"
	methodAuthenticate   = "Authenticate"
	methodLogin          = "Login"
	methodRefreshTokens  = "RefreshTokens"
	methodLogout         = "Logout"
	methodListUsers      = "ListUsers"
	methodGetProfile     = "GetProfile"
	methodGenerateTokens = "generateTokenPair"

	msgStartRegistration   = "starting user registration"
	msgRegistrationInvalid = "registration input failed validation"
	msgUserRegistered      = "user registered successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent email"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserAuthenticated   = "user authenticated successfully"
	msgTokensGenerated     = "authentication tokens generated for user"
	msgRefreshingTokens    = "refreshing tokens"
	msgRevokedTokenAttempt = "attempt to use revoked token"
	msgOldTokenRevoked     = "old token revoked successfully"
	msgTokensRefreshed     = "tokens refreshed successfully"
	msgProcessingLogout    = "processing logout request"
	msgUserLoggedOut       = "user logged out successfully"

	msgErrHashPassword        = "failed to hash password"
	msgErrCreateUser          = "failed to create user"
	msgErrFindingUser         = "error finding user by email"
	msgErrVerifyingPassword   = "error verifying password"
	msgErrGenerateLoginTokens = "failed to generate tokens on login"
	msgErrInvalidRefreshToken = "invalid refresh token"
	msgErrFindingUserForToken = "failed to find user for refresh token"
	msgErrRevokingOldToken    = "failed to revoke old token"
	msgErrListUsers           = "failed to list users"

	errCtxHashingPassword     = "hashing password"
	errCtxCreatingUser        = "creating user"
	errCtxInvalidCredentials  = "invalid credentials"
	errCtxFindingUser         = "finding user"
	errCtxVerifyingPassword   = "verifying password"
	errCtxGeneratingTokens    = "generating tokens"
	errCtxFindingRefreshToken = "finding refresh token"
	errCtxTokenRevoked        = "token revoked"
	errCtxRevokingOldToken    = "revoking old token"
	errCtxRevokingToken       = "revoking token"
	errCtxListingUsers        = "listing users"
	errCtxFindingProfile      = "finding profile"
	errCtxStoringRefreshToken = "storing refresh token"
)

// AccountUseCaseImpl реализует интерфейс api.AccountUseCase.
type AccountUseCaseImpl struct {
	userRepo    repositories.UserRepository
	tokenRepo   repositories.TokenRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAccountUseCase создает новый экземпляр сервиса учетных записей.
func NewAccountUseCase(
	userRepo repositories.UserRepository,
	tokenRepo repositories.TokenRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AccountUseCase {
	return &AccountUseCaseImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с предоставленными данными формы.
// Все ошибки валидации накапливаются и возвращаются одним *ValidationError;
// гонка двух регистраций с одинаковым email разрешается уникальным индексом
// хранилища и приводит к services.ErrEmailAlreadyExists.
func (a *AccountUseCaseImpl) Register(ctx context.Context, input api.RegistrationInput) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", input.Email))
	log.Debug(ctx, msgStartRegistration)

	vErrs := ValidateRegistration(input, func(email string) bool {
		existing, err := a.userRepo.FindByEmail(ctx, email)
		return err == nil && existing != nil
	})
	if len(vErrs) > 0 {
		log.Debug(ctx, msgRegistrationInvalid, zap.Strings("messages", vErrs))
		return nil, &ValidationError{Messages: vErrs}
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, strings.TrimSpace(input.Password))
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Surname:      strings.TrimSpace(input.Surname),
		Name:         strings.TrimSpace(input.Name),
		Patronymic:   strings.TrimSpace(input.Patronymic),
		Gender:       entities.Gender(input.Gender),
		PhoneCode:    input.PhoneCode,
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hashedPassword,
	}

	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgErrCreateUser, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, services.ErrEmailAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Authenticate проверяет учетные данные и возвращает пользователя.
// Неизвестный email и неверный пароль намеренно неразличимы.
func (a *AccountUseCaseImpl) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserAuthenticated, zap.String("userID", user.ID))
	return user, nil
}

// Login аутентифицирует пользователя и выдает пару токенов.
func (a *AccountUseCaseImpl) Login(ctx context.Context, email, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))

	user, err := a.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrGenerateLoginTokens, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensGenerated, zap.String("userID", user.ID))
	return tokenPair, nil
}

// RefreshTokens обновляет пару токенов.
func (a *AccountUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))
	log.Debug(ctx, msgRefreshingTokens)

	token, err := a.tokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		log.Debug(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingRefreshToken, services.ErrInvalidRefreshToken)
	}

	log = log.With(zap.String("userID", token.UserID))

	if token.IsRevoked {
		log.Debug(ctx, msgRevokedTokenAttempt)
		return nil, fmt.Errorf("%s: %w", errCtxTokenRevoked, services.ErrRevokedRefreshToken)
	}

	user, err := a.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserForToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	if err := a.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		log.Error(ctx, msgErrRevokingOldToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRevokingOldToken, err)
	}

	log.Debug(ctx, msgOldTokenRevoked)

	tokenPair, err := a.generateTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, err)
	}

	log.Info(ctx, msgTokensRefreshed)
	return tokenPair, nil
}

// Logout отзывает refresh-токен.
func (a *AccountUseCaseImpl) Logout(ctx context.Context, refreshToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))
	log.Debug(ctx, msgProcessingLogout)

	if err := a.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		log.Error(ctx, msgErrInvalidRefreshToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// ListUsers возвращает всех пользователей, сначала самые новые.
func (a *AccountUseCaseImpl) ListUsers(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	users, err := a.userRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	return users, nil
}

// GetProfile возвращает профиль пользователя по его ID.
func (a *AccountUseCaseImpl) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("userID", userID))

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Debug(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, err)
	}

	return user, nil
}

// Вспомогательная функция для генерации пары токенов.
func (a *AccountUseCaseImpl) generateTokenPair(ctx context.Context, user *entities.User) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGenerateTokens),
		zap.String("userID", user.ID),
	)

	accessToken, accessExpires, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrGenerateLoginTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	refreshToken, refreshExpires, err := a.tokenSvc.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGenerateLoginTokens, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingTokens, services.ErrTokenGenerationFailed)
	}

	if err := a.tokenRepo.StoreRefreshToken(ctx, &services.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: refreshExpires,
		IsRevoked: false,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxStoringRefreshToken, err)
	}

	return &services.TokenPair{
		UserID:       user.ID,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpires,
	}, nil
}
