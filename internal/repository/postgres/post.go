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

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) repository.Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(author_id, content) VALUES($1, $2) RETURNING id, created_at",
		post.AuthorID, post.Content,
	).Scan(&post.ID, &post.CreatedAt); err != nil {
		return nil, err
	}

	return post, nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.id, p.author_id, p.content, p.created_at FROM posts p WHERE p.id = $1",
		id,
	).Scan(&post.ID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	return r.findMany(
		ctx,
		`
		SELECT p.id, p.author_id, p.content, p.created_at
		FROM posts p
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		`,
		authorID,
	)
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	return r.findMany(ctx, "SELECT p.id, p.author_id, p.content, p.created_at FROM posts p ORDER BY p.created_at DESC")
}

func (r *postRepo) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

func (r *postRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}
