// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
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

// Register creates an account. The lookup and the insert share one transaction;
// a concurrent insert that wins the race still surfaces as ErrUserAlreadyExists.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil:
			return domainerrors.ErrUserAlreadyExists
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "failed to look up user")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user := &entity.User{
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserEmailTaken) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}
		registered = user

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			srv.log(ctx).Info("Registration rejected, email already registered")

			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.WrapInternal(err, domainerrors.ErrAuthFailed)
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", registered.ID))

	return &usecase.RegisterOutput{User: registered}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.WrapInternal(err, domainerrors.ErrAuthFailed)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, domainerrors.WrapInternal(err, domainerrors.ErrAuthFailed)
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}
