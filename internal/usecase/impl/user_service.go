// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/service"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after checking the email is not taken.
// The unique constraint on email is the authoritative check; the lookup
// only provides the friendlier duplicate message.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.UserExists(input.Email)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check existing account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrHashingFailed
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		MobileNumber: input.MobileNumber,
		Role:         entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A racing registration may win between the lookup and the insert.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.UserExists(input.Email)
		}
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues a signed token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown account", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to load account for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.NewPersistenceError(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected, wrong password", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(&service.Claims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role.String(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrSigningFailed
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user, Token: token}, nil
}
