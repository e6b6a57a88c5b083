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

	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/repository"
)

type Service interface {
	Create(ctx context.Context, n domain.Notification) (int64, error)
	ListForUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error)
}

var _ Service = &service{}

type service struct {
	repo repository.NotificationRepository
}

func NewService(repo repository.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, n domain.Notification) (int64, error) {
	return s.repo.Create(ctx, n)
}

func (s *service) ListForUser(ctx context.Context, uid int64, offset, limit int) ([]domain.Notification, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}
