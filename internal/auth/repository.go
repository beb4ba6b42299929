package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository is the Postgres-backed UserStore.
type UserRepository struct {
	DB *pgxpool.Pool
}

var _ UserStore = (*UserRepository)(nil)

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, email, password_hash, role, is_email_verified, email_verified_at, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, role Role) (*User, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO users (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	row := r.DB.QueryRow(ctx, query, id, email, passwordHash, role)
	user, err := scanUser(row)
	if isUniqueViolation(err) {
		// Duplicate registration raced past the existence check.
		return nil, conflict("User with this email already exists")
	}
	return user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

// MarkEmailVerified flips the verified flag and stamps the timestamp in
// one UPDATE so concurrent readers never see the pair out of sync.
func (r *UserRepository) MarkEmailVerified(ctx context.Context, id string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE users
		SET is_email_verified = TRUE, email_verified_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, id)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`, id, passwordHash)
	return err
}

func (r *UserRepository) FindProfile(ctx context.Context, userID string) (*Profile, error) {
	row := r.DB.QueryRow(ctx, `
		SELECT first_name, last_name, avatar_url
		FROM profiles
		WHERE user_id = $1
	`, userID)

	var p Profile
	if err := row.Scan(&p.FirstName, &p.LastName, &p.AvatarURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsEmailVerified,
		&u.EmailVerifiedAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
