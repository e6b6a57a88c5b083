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

var (
	ErrCandidateNotFound = dao.ErrRecordNotFound
	ErrStatusConflict    = dao.ErrStatusConflict
)

type CandidateRepository interface {
	Save(ctx context.Context, c domain.Candidate) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Candidate, error)
	FindByUID(ctx context.Context, uid int64) (domain.Candidate, error)
	Transition(ctx context.Context, id int64, t domain.Transition) error
	List(ctx context.Context, f domain.Filter) ([]domain.Candidate, error)
}

var _ CandidateRepository = &candidateRepository{}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

func (repo *candidateRepository) Save(ctx context.Context, c domain.Candidate) (int64, error) {
	return repo.dao.Save(ctx, repo.toEntity(c))
}

func (repo *candidateRepository) FindByID(ctx context.Context, id int64) (domain.Candidate, error) {
	c, err := repo.dao.FindByID(ctx, id)
	return repo.toDomain(c), err
}

func (repo *candidateRepository) FindByUID(ctx context.Context, uid int64) (domain.Candidate, error) {
	c, err := repo.dao.FindByUID(ctx, uid)
	return repo.toDomain(c), err
}

// Transition 状态转移落到一条条件 UPDATE 上，并发场景下也只会有一个赢家
func (repo *candidateRepository) Transition(ctx context.Context, id int64, t domain.Transition) error {
	target, ok := t.Target()
	if !ok {
		return domain.ErrInvalidTransition
	}
	from := slice.Map(t.Sources(), func(idx int, src domain.Status) string {
		return src.String()
	})
	return repo.dao.UpdateStatus(ctx, id, from, target.String())
}

func (repo *candidateRepository) List(ctx context.Context, f domain.Filter) ([]domain.Candidate, error) {
	res, err := repo.dao.List(ctx, f.Keyword, f.StartAt, f.EndAt)
	return slice.Map(res, func(idx int, src dao.Candidate) domain.Candidate {
		return repo.toDomain(src)
	}), err
}

func (repo *candidateRepository) toEntity(c domain.Candidate) dao.Candidate {
	status := c.Status
	if status == "" {
		status = domain.StatusRegistered
	}
	return dao.Candidate{
		ID:        c.ID,
		UID:       c.UID,
		Name:      c.Name,
		Phone:     c.Phone,
		City:      c.City,
		VacancyID: c.VacancyID,
		Status:    status.String(),
	}
}

func (repo *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.ID,
		UID:       c.UID,
		Name:      c.Name,
		Phone:     c.Phone,
		City:      c.City,
		VacancyID: c.VacancyID,
		Status:    domain.Status(c.Status),
		Ctime:     c.Ctime,
		Utime:     c.Utime,
	}
}
