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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository/dao"
)

type NotificationRepository interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
}

var _ NotificationRepository = &notificationRepository{}

type notificationRepository struct {
	dao dao.NotificationDAO
}

func NewNotificationRepository(d dao.NotificationDAO) NotificationRepository {
	return &notificationRepository{dao: d}
}

func (repo *notificationRepository) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return repo.dao.Create(ctx, dao.Notification{
		Uid:       n.Uid,
		Title:     n.Title,
		Content:   n.Content,
		RelatedSN: n.RelatedSN,
	})
}

func (repo *notificationRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	notifications, err := repo.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(notifications, func(idx int, n dao.Notification) domain.Notification {
		return domain.Notification{
			ID:        n.ID,
			Uid:       n.Uid,
			Title:     n.Title,
			Content:   n.Content,
			RelatedSN: n.RelatedSN,
			Ctime:     n.Ctime,
		}
	}), nil
}
