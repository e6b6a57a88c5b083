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
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/cache"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrBlueprintNotFound = dao.ErrRecordNotFound

type BlueprintRepository interface {
	Save(ctx context.Context, bp domain.Blueprint) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Blueprint, error)
	// PassingScores 批量查及格线，只要卷面主记录，不带题目
	PassingScores(ctx context.Context, ids []int64) (map[int64]int, error)
}

var _ BlueprintRepository = &CachedBlueprintRepository{}

type CachedBlueprintRepository struct {
	dao    dao.BlueprintDAO
	cache  cache.BlueprintCache
	logger *elog.Component
}

func NewCachedBlueprintRepository(d dao.BlueprintDAO, c cache.BlueprintCache) BlueprintRepository {
	return &CachedBlueprintRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedBlueprintRepository) Save(ctx context.Context, bp domain.Blueprint) (int64, error) {
	id, err := repo.dao.Save(ctx, dao.Blueprint{
		ID:           bp.ID,
		Title:        bp.Title,
		PassingScore: bp.PassingScore,
		TimeLimit:    bp.TimeLimit,
	}, slice.Map(bp.Questions, func(idx int, q domain.Question) dao.Question {
		return dao.Question{
			ID:            q.ID,
			Type:          string(q.Type),
			Title:         q.Title,
			Options:       sqlx.JsonColumn[[]string]{Val: q.Options, Valid: true},
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
		}
	}))
	if err != nil {
		return 0, err
	}
	// 缓存直接失效，等下一次读再回填
	if er := repo.cache.Del(ctx, id); er != nil {
		repo.logger.Error("删除测评卷缓存失败",
			elog.Int64("bid", id), elog.FieldErr(er))
	}
	return id, nil
}

func (repo *CachedBlueprintRepository) GetByID(ctx context.Context, id int64) (domain.Blueprint, error) {
	bp, err := repo.cache.Get(ctx, id)
	if err == nil {
		return bp, nil
	}
	daoBp, questions, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Blueprint{}, err
	}
	bp = repo.toDomain(daoBp, questions)
	if er := repo.cache.Set(ctx, bp); er != nil {
		repo.logger.Error("回填测评卷缓存失败",
			elog.Int64("bid", id), elog.FieldErr(er))
	}
	return bp, nil
}

func (repo *CachedBlueprintRepository) PassingScores(ctx context.Context, ids []int64) (map[int64]int, error) {
	if len(ids) == 0 {
		return map[int64]int{}, nil
	}
	bps, err := repo.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int, len(bps))
	for _, bp := range bps {
		res[bp.ID] = bp.PassingScore
	}
	return res, nil
}

func (repo *CachedBlueprintRepository) toDomain(bp dao.Blueprint, questions []dao.Question) domain.Blueprint {
	return domain.Blueprint{
		ID:           bp.ID,
		Title:        bp.Title,
		PassingScore: bp.PassingScore,
		TimeLimit:    bp.TimeLimit,
		Questions: slice.Map(questions, func(idx int, q dao.Question) domain.Question {
			return domain.Question{
				ID:            q.ID,
				Type:          domain.QuestionType(q.Type),
				Title:         q.Title,
				Options:       q.Options.Val,
				CorrectAnswer: q.CorrectAnswer,
				Points:        q.Points,
			}
		}),
	}
}
