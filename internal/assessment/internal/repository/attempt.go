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
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
)

var (
	ErrAttemptNotFound  = dao.ErrRecordNotFound
	ErrAttemptFinalized = dao.ErrAttemptFinalized
)

type AttemptRepository interface {
	Create(ctx context.Context, a domain.Attempt) (int64, error)
	// Latest 最近一次考试，不带答案
	Latest(ctx context.Context, candidateID, blueprintID int64) (domain.Attempt, error)
	// Detail 带答案的完整记录
	Detail(ctx context.Context, id int64) (domain.Attempt, error)
	Finalize(ctx context.Context, a domain.Attempt) error
	// LatestForCandidates 每个候选人最近一次考试，没考过的不在结果里
	LatestForCandidates(ctx context.Context, candidateIDs []int64) (map[int64]domain.Attempt, error)
}

var _ AttemptRepository = &attemptRepository{}

type attemptRepository struct {
	dao dao.AttemptDAO
}

func NewAttemptRepository(d dao.AttemptDAO) AttemptRepository {
	return &attemptRepository{dao: d}
}

func (repo *attemptRepository) Create(ctx context.Context, a domain.Attempt) (int64, error) {
	return repo.dao.Create(ctx, dao.Attempt{
		CandidateID: a.CandidateID,
		Bid:         a.BlueprintID,
		Status:      a.Status.String(),
	})
}

func (repo *attemptRepository) Latest(ctx context.Context, candidateID, blueprintID int64) (domain.Attempt, error) {
	a, err := repo.dao.FindLatest(ctx, candidateID, blueprintID)
	if err != nil {
		return domain.Attempt{}, err
	}
	return repo.toDomain(a), nil
}

func (repo *attemptRepository) Detail(ctx context.Context, id int64) (domain.Attempt, error) {
	a, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Attempt{}, err
	}
	answers, err := repo.dao.FindAnswers(ctx, id)
	if err != nil {
		return domain.Attempt{}, err
	}
	res := repo.toDomain(a)
	res.Answers = slice.Map(answers, func(idx int, ans dao.AttemptAnswer) domain.Answer {
		return domain.Answer{
			QuestionID: ans.QuestionID,
			Raw:        ans.Raw,
			Correct:    ans.Correct,
			Points:     ans.Points,
		}
	})
	return res, nil
}

func (repo *attemptRepository) Finalize(ctx context.Context, a domain.Attempt) error {
	return repo.dao.Finalize(ctx, a.ID, a.Status.String(), a.Score,
		slice.Map(a.Answers, func(idx int, ans domain.Answer) dao.AttemptAnswer {
			return dao.AttemptAnswer{
				QuestionID: ans.QuestionID,
				Raw:        ans.Raw,
				Correct:    ans.Correct,
				Points:     ans.Points,
			}
		}))
}

func (repo *attemptRepository) LatestForCandidates(ctx context.Context, candidateIDs []int64) (map[int64]domain.Attempt, error) {
	if len(candidateIDs) == 0 {
		return map[int64]domain.Attempt{}, nil
	}
	attempts, err := repo.dao.FindLatestForCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	// 按开考时间升序扫一遍，后写的覆盖前面的
	res := make(map[int64]domain.Attempt, len(candidateIDs))
	for _, a := range attempts {
		res[a.CandidateID] = repo.toDomain(a)
	}
	return res, nil
}

func (repo *attemptRepository) toDomain(a dao.Attempt) domain.Attempt {
	return domain.Attempt{
		ID:          a.ID,
		CandidateID: a.CandidateID,
		BlueprintID: a.Bid,
		Status:      domain.AttemptStatus(a.Status),
		Score:       a.Score,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
	}
}
