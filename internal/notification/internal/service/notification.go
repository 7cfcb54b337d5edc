// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/schoolhire/internal/notification/internal/domain"
	"github.com/ecodeclub/schoolhire/internal/notification/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidNotification = errors.New("非法的通知内容")

//go:generate mockgen -source=./notification.go -destination=../../mocks/notification.mock.go -package=notificationmocks -typed Service
type Service interface {
	// Send 投递一条通知。调用方自行决定失败是否致命，本服务照常返回错误。
	Send(ctx context.Context, n domain.Notification) (int64, error)
	// SendMany 批量投递，一次事务写入，适用于"广播给学校全部管理员"。
	SendMany(ctx context.Context, ns []domain.Notification) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error)
	UnreadCount(ctx context.Context, uid int64) (int64, error)
	MarkRead(ctx context.Context, id, uid int64) error
	// CleanRead 清理已读通知，给定时任务用
	CleanRead(ctx context.Context, before int64, limit int) (int64, error)
}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Send(ctx context.Context, n domain.Notification) (int64, error) {
	if !n.IsValid() {
		return 0, ErrInvalidNotification
	}
	return s.repo.Create(ctx, n)
}

func (s *service) SendMany(ctx context.Context, ns []domain.Notification) error {
	for i := range ns {
		if !ns[i].IsValid() {
			return ErrInvalidNotification
		}
	}
	return s.repo.BatchCreate(ctx, ns)
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, int64, error) {
	var (
		ns    []domain.Notification
		total int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		ns, err = s.repo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	return ns, total, eg.Wait()
}

func (s *service) UnreadCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountUnread(ctx, uid)
}

func (s *service) MarkRead(ctx context.Context, id, uid int64) error {
	return s.repo.MarkRead(ctx, id, uid)
}

func (s *service) CleanRead(ctx context.Context, before int64, limit int) (int64, error) {
	return s.repo.DeleteReadBefore(ctx, before, limit)
}
