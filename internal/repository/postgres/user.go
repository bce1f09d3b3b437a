package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) repository.User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO users(id, username, email, bio) VALUES($1, $2, $3, $4) RETURNING created_at",
		user.ID, user.Username, user.Email, user.Bio,
	).Scan(&user.CreatedAt); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.findOne(ctx, "SELECT u.id, u.username, u.email, u.bio, u.created_at FROM users u WHERE u.id = $1", id)
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, "SELECT u.id, u.username, u.email, u.bio, u.created_at FROM users u WHERE u.username = $1", username)
}

func (r *userRepo) findOne(ctx context.Context, query string, arg interface{}) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Bio,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.Query(ctx, "SELECT u.id, u.username, u.email, u.bio, u.created_at FROM users u ORDER BY u.created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.Bio, &user.CreatedAt); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *userRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"UPDATE users SET bio = $1 WHERE id = $2 RETURNING id, username, email, bio, created_at",
		bio, id,
	).Scan(&user.ID, &user.Username, &user.Email, &user.Bio, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}
