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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/talent/internal/offer/internal/domain"
	"github.com/ecodeclub/talent/internal/offer/internal/repository/dao"
)

type TemplateRepository interface {
	Save(ctx context.Context, t domain.Template) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Template, error)
	FindActive(ctx context.Context) (domain.Template, error)
	List(ctx context.Context) ([]domain.Template, error)
}

var _ TemplateRepository = &templateRepository{}

type templateRepository struct {
	dao dao.TemplateDAO
}

func NewTemplateRepository(d dao.TemplateDAO) TemplateRepository {
	return &templateRepository{dao: d}
}

func (repo *templateRepository) Save(ctx context.Context, t domain.Template) (int64, error) {
	return repo.dao.Save(ctx, dao.Template{
		ID:        t.ID,
		Name:      t.Name,
		Language:  t.Language,
		Content:   t.Content,
		Variables: sqlx.JsonColumn[[]string]{Val: t.Variables, Valid: true},
		Active:    t.Active,
	})
}

func (repo *templateRepository) FindByID(ctx context.Context, id int64) (domain.Template, error) {
	t, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Template{}, err
	}
	return repo.toDomain(t), nil
}

func (repo *templateRepository) FindActive(ctx context.Context) (domain.Template, error) {
	t, err := repo.dao.FindActive(ctx)
	if err != nil {
		return domain.Template{}, err
	}
	return repo.toDomain(t), nil
}

func (repo *templateRepository) List(ctx context.Context) ([]domain.Template, error) {
	templates, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(templates, func(idx int, t dao.Template) domain.Template {
		return repo.toDomain(t)
	}), nil
}

func (repo *templateRepository) toDomain(t dao.Template) domain.Template {
	return domain.Template{
		ID:        t.ID,
		Name:      t.Name,
		Language:  t.Language,
		Content:   t.Content,
		Variables: t.Variables.Val,
		Active:    t.Active,
	}
}
