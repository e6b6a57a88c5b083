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
	"errors"

	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository/dao"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, e domain.Enrollment) (int64, error)
	UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error
	Complete(ctx context.Context, candidateID int64) error
	Latest(ctx context.Context, candidateID int64) (domain.Enrollment, error)
	// LatestForCandidates 每个候选人取最近开始的一门课
	LatestForCandidates(ctx context.Context, candidateIDs []int64) (map[int64]domain.Enrollment, error)
}

var _ EnrollmentRepository = &enrollmentRepository{}

type enrollmentRepository struct {
	dao dao.EnrollmentDAO
}

func NewEnrollmentRepository(d dao.EnrollmentDAO) EnrollmentRepository {
	return &enrollmentRepository{dao: d}
}

func (repo *enrollmentRepository) Create(ctx context.Context, e domain.Enrollment) (int64, error) {
	return repo.dao.Create(ctx, dao.Enrollment{
		CandidateID: e.CandidateID,
		CourseID:    e.CourseID,
		Progress:    e.Progress,
	})
}

func (repo *enrollmentRepository) UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error {
	return repo.dao.UpdateProgress(ctx, candidateID, courseID, progress)
}

func (repo *enrollmentRepository) Complete(ctx context.Context, candidateID int64) error {
	return repo.dao.Complete(ctx, candidateID)
}

func (repo *enrollmentRepository) Latest(ctx context.Context, candidateID int64) (domain.Enrollment, error) {
	e, err := repo.dao.LatestByCandidate(ctx, candidateID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Enrollment{}, ErrCandidateNotFound
	}
	return repo.toDomain(e), err
}

func (repo *enrollmentRepository) LatestForCandidates(ctx context.Context, candidateIDs []int64) (map[int64]domain.Enrollment, error) {
	if len(candidateIDs) == 0 {
		return map[int64]domain.Enrollment{}, nil
	}
	es, err := repo.dao.FindByCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	// 按 started_at 升序遍历，后写入的覆盖先写入的，留下的就是最近一门
	res := make(map[int64]domain.Enrollment, len(candidateIDs))
	for _, e := range es {
		res[e.CandidateID] = repo.toDomain(e)
	}
	return res, nil
}

func (repo *enrollmentRepository) toDomain(e dao.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		ID:          e.ID,
		CandidateID: e.CandidateID,
		CourseID:    e.CourseID,
		Progress:    e.Progress,
		StartedAt:   e.StartedAt,
		CompletedAt: e.CompletedAt,
	}
}
