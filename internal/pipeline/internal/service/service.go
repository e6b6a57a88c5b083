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
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/pipeline/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Board 按筛选条件把候选人分到八个阶段，纯读模型，每次现算
	Board(ctx context.Context, f candidate.Filter) (domain.Board, error)
}

var _ Service = &service{}

type service struct {
	candidateSvc  candidate.Service
	assessmentSvc assessment.Service
}

func NewService(candidateSvc candidate.Service, assessmentSvc assessment.Service) Service {
	return &service{
		candidateSvc:  candidateSvc,
		assessmentSvc: assessmentSvc,
	}
}

func (s *service) Board(ctx context.Context, f candidate.Filter) (domain.Board, error) {
	candidates, err := s.candidateSvc.List(ctx, f)
	if err != nil {
		return domain.Board{}, err
	}
	ids := slice.Map(candidates, func(idx int, c candidate.Candidate) int64 {
		return c.ID
	})
	var (
		attempts    map[int64]assessment.AttemptSummary
		enrollments map[int64]candidate.Enrollment
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var er error
		attempts, er = s.assessmentSvc.LatestAttempts(ctx, ids)
		return er
	})
	eg.Go(func() error {
		var er error
		enrollments, er = s.candidateSvc.LatestEnrollments(ctx, ids)
		return er
	})
	if err = eg.Wait(); err != nil {
		return domain.Board{}, err
	}

	snapshots := make([]domain.Snapshot, 0, len(candidates))
	for _, c := range candidates {
		snap := domain.Snapshot{
			CandidateID: c.ID,
			Status:      c.Status,
		}
		if e, ok := enrollments[c.ID]; ok {
			snap.Progress = sql.Null[int64]{V: int64(e.EffectiveProgress()), Valid: true}
		}
		if a, ok := attempts[c.ID]; ok {
			snap.HasAttempt = true
			snap.AttemptCompleted = a.Status == assessment.AttemptStatusCompleted
			snap.Score = a.Score
			snap.PassingScore = a.PassingScore
		}
		snapshots = append(snapshots, snap)
	}
	stages := domain.Classify(snapshots)

	byStage := make(map[domain.Stage][]candidate.Candidate, len(domain.Stages))
	for _, c := range candidates {
		stage, ok := stages[c.ID]
		if !ok {
			continue
		}
		byStage[stage] = append(byStage[stage], c)
	}
	total := len(candidates)
	columns := slice.Map(domain.Stages, func(idx int, stage domain.Stage) domain.StageColumn {
		members := byStage[stage]
		col := domain.StageColumn{
			Stage:      stage,
			Candidates: members,
			Count:      len(members),
		}
		if total > 0 {
			col.Percent = 100 * float64(len(members)) / float64(total)
		}
		return col
	})
	return domain.Board{
		Total:   total,
		Columns: columns,
	}, nil
}
