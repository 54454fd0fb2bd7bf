package commands

import (
	"context"

	"apothecary/internal/domain/user"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/errs"
	"apothecary/internal/pkg/jwt"
	"apothecary/internal/pkg/password"
	"apothecary/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserAlreadyExists  = errs.New("a user with this email already exists")
	ErrRegisterFail       = errs.New("failed to register user")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  user.User
}

type UserRepository interface {
	FindByEmail(ctx context.Context, dbx db.DBTX, email string) (*user.User, error)
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*user.User, error)
}

type authCommandsImpl struct {
	pool       *pgxpool.Pool
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(pool *pgxpool.Pool, userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		pool:       pool,
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	u, err := a.userRepo.FindByEmail(ctx, a.pool, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to look up user")
	}

	if err := password.ComparePassword(u.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: *u}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*user.User, error) {
	if err := user.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrRegisterFail)
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         user.RoleUser,
	}

	created, err := shared.RunInTx(ctx, a.pool, func(tx db.DBTX) (*user.User, error) {
		if err := a.userRepo.Create(ctx, tx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrUserAlreadyExists
			}
			return nil, errs.Mark(err, ErrRegisterFail)
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
