package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/repository/dao"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	BatchCreate(ctx context.Context, ns []domain.Notification) error
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	CountUnread(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	DeleteReadBefore(ctx context.Context, before int64, limit int) (int64, error)
}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{
		dao: d,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(n))
}

func (r *notificationRepository) BatchCreate(ctx context.Context, ns []domain.Notification) error {
	return r.dao.BatchCreate(ctx, slice.Map(ns, func(_ int, src domain.Notification) dao.Notification {
		return r.toEntity(src)
	}))
}

func (r *notificationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	ns, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ns, func(_ int, src dao.Notification) domain.Notification {
		return r.toDomain(src)
	}), nil
}

func (r *notificationRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *notificationRepository) CountUnread(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountUnread(ctx, uid)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, uid int64) error {
	return r.dao.MarkRead(ctx, id, uid)
}

func (r *notificationRepository) DeleteReadBefore(ctx context.Context, before int64, limit int) (int64, error) {
	return r.dao.DeleteReadBefore(ctx, before, limit)
}

func (r *notificationRepository) toEntity(n domain.Notification) dao.Notification {
	var read uint8
	if n.Read {
		read = 1
	}
	return dao.Notification{
		Id:      n.ID,
		Uid:     n.UID,
		Type:    n.Type.String(),
		Title:   n.Title,
		Message: n.Message,
		Url:     n.URL,
		Read:    read,
	}
}

func (r *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:      n.Id,
		UID:     n.Uid,
		Type:    domain.Type(n.Type),
		Title:   n.Title,
		Message: n.Message,
		URL:     n.Url,
		Read:    n.Read == 1,
		Ctime:   n.Ctime,
	}
}
