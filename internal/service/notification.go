package service

import (
	"context"
	"errors"
	"time"

	"github.com/BloggingApp/social-service/internal/model"
	"github.com/BloggingApp/social-service/internal/repository"
	"github.com/BloggingApp/social-service/internal/repository/redisrepo"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	NOTIFICATIONS_CACHE_TTL   = time.Minute * 2
	OLD_NOTIFICATIONS_MAX_AGE = time.Hour * 24 * 14
	DELETE_OLD_JOB_INTERVAL   = time.Hour * 12
)

type notificationService struct {
	logger    *zap.Logger
	store     *repository.Store
	rdb       *redis.Client
	scheduler gocron.Scheduler
}

func newNotificationService(logger *zap.Logger, store *repository.Store, rdb *redis.Client) Notification {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	return &notificationService{
		logger:    logger,
		store:     store,
		rdb:       rdb,
		scheduler: scheduler,
	}
}

// Create persists a notification directly, without going through the
// dispatcher. Fan-out events must use the dispatcher instead so that
// listeners fire.
func (s *notificationService) Create(ctx context.Context, receiverID uuid.UUID, message string, notificationType string) (*model.Notification, error) {
	n, err := s.store.Notification.Create(ctx, &model.Notification{
		ReceiverID: receiverID,
		Message:    message,
		Type:       notificationType,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create notification for user(%s): %s", receiverID.String(), err.Error())
		return nil, ErrInternal
	}

	return n, nil
}

func (s *notificationService) GetUserNotifications(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	if s.rdb != nil {
		cached, err := redisrepo.Get[[]*model.Notification](s.rdb, ctx, redisrepo.UserNotificationsKey(receiverID.String()))
		if err == nil {
			return *cached, nil
		}
		if err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get user(%s)'s notifications from redis: %s", receiverID.String(), err.Error())
		}
	}

	notifications, err := s.store.Notification.FindByReceiverID(ctx, receiverID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s notifications: %s", receiverID.String(), err.Error())
		return nil, ErrInternal
	}

	if s.rdb != nil {
		if err := redisrepo.SetJSON(s.rdb, ctx, redisrepo.UserNotificationsKey(receiverID.String()), notifications, NOTIFICATIONS_CACHE_TTL); err != nil {
			s.logger.Sugar().Errorf("failed to set user(%s)'s notifications in redis cache: %s", receiverID.String(), err.Error())
		}
	}

	return notifications, nil
}

func (s *notificationService) GetUnread(ctx context.Context, receiverID uuid.UUID) ([]*model.Notification, error) {
	notifications, err := s.store.Notification.FindUnreadByReceiverID(ctx, receiverID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s)'s unread notifications: %s", receiverID.String(), err.Error())
		return nil, ErrInternal
	}

	return notifications, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	count, err := s.store.Notification.CountUnreadByReceiverID(ctx, receiverID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to count user(%s)'s unread notifications: %s", receiverID.String(), err.Error())
		return 0, ErrInternal
	}

	return count, nil
}

// MarkAsRead flips the read flag. Notifications belong to their receiver;
// anyone else gets ErrNotificationNotFound.
func (s *notificationService) MarkAsRead(ctx context.Context, receiverID uuid.UUID, id int64) (*model.Notification, error) {
	n, err := s.findOwned(ctx, receiverID, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Notification.MarkAsRead(ctx, n.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to mark notification(%d) as read: %s", id, err.Error())
		return nil, ErrInternal
	}

	s.invalidateCache(ctx, receiverID)

	return updated, nil
}

func (s *notificationService) Delete(ctx context.Context, receiverID uuid.UUID, id int64) error {
	n, err := s.findOwned(ctx, receiverID, id)
	if err != nil {
		return err
	}

	if err := s.store.Notification.DeleteByID(ctx, n.ID); err != nil {
		s.logger.Sugar().Errorf("failed to delete notification(%d): %s", id, err.Error())
		return ErrInternal
	}

	s.invalidateCache(ctx, receiverID)

	return nil
}

func (s *notificationService) findOwned(ctx context.Context, receiverID uuid.UUID, id int64) (*model.Notification, error) {
	n, err := s.store.Notification.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Sugar().Errorf("failed to get notification(%d): %s", id, err.Error())
		return nil, ErrInternal
	}
	if n.ReceiverID != receiverID {
		return nil, ErrNotificationNotFound
	}

	return n, nil
}

func (s *notificationService) invalidateCache(ctx context.Context, receiverID uuid.UUID) {
	if s.rdb == nil {
		return
	}

	if err := s.rdb.Del(ctx, redisrepo.UserNotificationsKey(receiverID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to invalidate user(%s)'s notifications cache: %s", receiverID.String(), err.Error())
	}
}

func (s *notificationService) newDeleteOldNotificationsJob() {
	s.scheduler.NewJob(gocron.DurationJob(DELETE_OLD_JOB_INTERVAL), gocron.NewTask(func(ctx context.Context) {
		if err := s.store.Notification.DeleteReadOlderThan(ctx, OLD_NOTIFICATIONS_MAX_AGE); err != nil {
			s.logger.Sugar().Errorf("failed to delete old notifications: %s", err.Error())
		}
	}))
}

func (s *notificationService) StartJobs() {
	s.newDeleteOldNotificationsJob()

	s.scheduler.Start()
}
