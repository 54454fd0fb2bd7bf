package writerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"apothecary/internal/domain/user"
	"apothecary/internal/infra"
	"apothecary/internal/infra/db"
	"apothecary/internal/pkg/pgconv"
	"apothecary/internal/usecase/commands"
)

const userByEmailQuery = `
	SELECT id, name, email, password_hash, role FROM users WHERE email = $1`

const insertUserQuery = `
	INSERT INTO users (id, name, email, password_hash, role)
	VALUES ($1, $2, $3, $4, $5)`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var _ commands.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByEmail(ctx context.Context, dbx db.DBTX, email string) (*user.User, error) {
	var (
		u    user.User
		role string
	)
	err := dbx.QueryRow(ctx, userByEmailQuery, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to query user", err)
	}

	u.Role, err = user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupted user role", err, infra.KindIntegrity)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUserQuery, u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role))
	if err != nil {
		return infra.WrapRepoErr("failed to insert user", err, kindFromPgError(err))
	}
	return nil
}

// kindFromPgError maps postgres constraint violations onto repository kinds.
func kindFromPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.KindDuplicateKey
		case "23503":
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
