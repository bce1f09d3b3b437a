package postgres

import (
	"context"
	"errors"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const UNIQUE_VIOLATION_CODE = "23505"

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) repository.Follow {
	return &followRepo{
		db: db,
	}
}

func (r *followRepo) Create(ctx context.Context, follow *model.Follow) (*model.Follow, error) {
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO follows(follower_id, followee_id) VALUES($1, $2) RETURNING id, created_at",
		follow.FollowerID, follow.FolloweeID,
	).Scan(&follow.ID, &follow.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == UNIQUE_VIOLATION_CODE {
			return nil, repository.ErrDuplicateFollow
		}
		return nil, err
	}

	return follow, nil
}

func (r *followRepo) FindByFollowerID(ctx context.Context, followerID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(
		ctx,
		"SELECT f.id, f.follower_id, f.followee_id, f.created_at FROM follows f WHERE f.follower_id = $1 ORDER BY f.id",
		followerID,
	)
}

func (r *followRepo) FindByFolloweeID(ctx context.Context, followeeID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(
		ctx,
		"SELECT f.id, f.follower_id, f.followee_id, f.created_at FROM follows f WHERE f.followee_id = $1 ORDER BY f.id",
		followeeID,
	)
}

func (r *followRepo) FindByPair(ctx context.Context, followerID, followeeID uuid.UUID) ([]*model.Follow, error) {
	return r.findMany(
		ctx,
		"SELECT f.id, f.follower_id, f.followee_id, f.created_at FROM follows f WHERE f.follower_id = $1 AND f.followee_id = $2",
		followerID, followeeID,
	)
}

func (r *followRepo) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.Follow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var follows []*model.Follow
	for rows.Next() {
		var follow model.Follow
		if err := rows.Scan(&follow.ID, &follow.FollowerID, &follow.FolloweeID, &follow.CreatedAt); err != nil {
			return nil, err
		}

		follows = append(follows, &follow)
	}

	return follows, rows.Err()
}

func (r *followRepo) DeleteAll(ctx context.Context, follows []*model.Follow) error {
	ids := make([]int64, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.ID)
	}

	_, err := r.db.Exec(ctx, "DELETE FROM follows WHERE id = ANY($1)", ids)
	return err
}

func (r *followRepo) CountByFollowerID(ctx context.Context, followerID uuid.UUID) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM follows WHERE follower_id = $1", followerID)
}

func (r *followRepo) CountByFolloweeID(ctx context.Context, followeeID uuid.UUID) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM follows WHERE followee_id = $1", followeeID)
}

func (r *followRepo) count(ctx context.Context, query string, arg interface{}) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, query, arg).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
