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
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository/dao"
)

type VacancyRepository interface {
	Save(ctx context.Context, v domain.Vacancy) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Vacancy, error)
	List(ctx context.Context) ([]domain.Vacancy, error)
}

var _ VacancyRepository = &vacancyRepository{}

type vacancyRepository struct {
	dao dao.VacancyDAO
}

func NewVacancyRepository(d dao.VacancyDAO) VacancyRepository {
	return &vacancyRepository{dao: d}
}

func (repo *vacancyRepository) Save(ctx context.Context, v domain.Vacancy) (int64, error) {
	return repo.dao.Save(ctx, dao.Vacancy{
		ID:         v.ID,
		Title:      v.Title,
		City:       v.City,
		TestID:     v.TestID,
		Commission: v.Commission,
	})
}

func (repo *vacancyRepository) FindByID(ctx context.Context, id int64) (domain.Vacancy, error) {
	v, err := repo.dao.FindByID(ctx, id)
	return repo.toDomain(v), err
}

func (repo *vacancyRepository) List(ctx context.Context) ([]domain.Vacancy, error) {
	vs, err := repo.dao.List(ctx)
	return slice.Map(vs, func(idx int, src dao.Vacancy) domain.Vacancy {
		return repo.toDomain(src)
	}), err
}

func (repo *vacancyRepository) toDomain(v dao.Vacancy) domain.Vacancy {
	return domain.Vacancy{
		ID:         v.ID,
		Title:      v.Title,
		City:       v.City,
		TestID:     v.TestID,
		Commission: v.Commission,
	}
}
