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
	"errors"
	"math"

	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrTestNotFound = repository.ErrBlueprintNotFound
	// ErrAttemptFinalized 已出最终结果的考试不允许再提交
	ErrAttemptFinalized = repository.ErrAttemptFinalized
	// ErrUnknownQuestion 答卷里出现了不属于这份测评的题目
	ErrUnknownQuestion = errors.New("答卷里有不属于这份测评的题目")
	// ErrAttemptNotReviewable 只有等人工批改的考试才能批改
	ErrAttemptNotReviewable = errors.New("考试还没有提交，不能批改")
)

// SubmitResult 提交之后立刻返回给候选人的结果
type SubmitResult struct {
	Score       int
	NeedsReview bool
}

//go:generate mockgen -source=./service.go -destination=../../mocks/assessment.mock.go -package=assessmentmocks -typed=true Service
type Service interface {
	// Start 开一次新考试
	Start(ctx context.Context, candidateID, blueprintID int64) (int64, error)
	// Submit 判卷并落库。出最终结果时推进候选人状态，通过就触发发 offer
	Submit(ctx context.Context, candidateID, blueprintID int64, answers map[int64]string) (SubmitResult, error)
	// Review 人工批改开放题，批改完走和 Submit 一样的定稿路径
	Review(ctx context.Context, attemptID int64, awarded map[int64]int) (SubmitResult, error)
	// CompleteCourse HR 手动把候选人最近一门课标记为学完，
	// 并直接把状态推到考试完成，岗位配了测评的话再开一次考试
	CompleteCourse(ctx context.Context, candidateID int64) error
	// LatestAttempts 看板用，每个候选人最近一次考试的摘要
	LatestAttempts(ctx context.Context, candidateIDs []int64) (map[int64]domain.AttemptSummary, error)

	SaveBlueprint(ctx context.Context, bp domain.Blueprint) (int64, error)
	BlueprintDetail(ctx context.Context, id int64) (domain.Blueprint, error)
}

var _ Service = &service{}

type service struct {
	bpRepo       repository.BlueprintRepository
	attemptRepo  repository.AttemptRepository
	candidateSvc candidate.Service
	offerSvc     offer.Service
	logger       *elog.Component
}

func NewService(bpRepo repository.BlueprintRepository,
	attemptRepo repository.AttemptRepository,
	candidateSvc candidate.Service,
	offerSvc offer.Service) Service {
	return &service{
		bpRepo:       bpRepo,
		attemptRepo:  attemptRepo,
		candidateSvc: candidateSvc,
		offerSvc:     offerSvc,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Start(ctx context.Context, candidateID, blueprintID int64) (int64, error) {
	if _, err := s.bpRepo.GetByID(ctx, blueprintID); err != nil {
		return 0, err
	}
	return s.attemptRepo.Create(ctx, domain.Attempt{
		CandidateID: candidateID,
		BlueprintID: blueprintID,
		Status:      domain.AttemptStatusInProgress,
	})
}

func (s *service) Submit(ctx context.Context, candidateID, blueprintID int64,
	answers map[int64]string) (SubmitResult, error) {
	bp, err := s.bpRepo.GetByID(ctx, blueprintID)
	if err != nil {
		return SubmitResult{}, err
	}
	for questionID := range answers {
		if _, ok := bp.Question(questionID); !ok {
			return SubmitResult{}, ErrUnknownQuestion
		}
	}
	attempt, err := s.attemptRepo.Latest(ctx, candidateID, blueprintID)
	if err != nil {
		return SubmitResult{}, err
	}
	if attempt.Finalized() {
		return SubmitResult{}, ErrAttemptFinalized
	}
	graded := domain.Grade(bp, answers)
	attempt.Answers = graded.PerQuestion
	if graded.NeedsReview {
		// 还有开放题等人工批改，成绩先不落
		attempt.Status = domain.AttemptStatusPendingReview
		attempt.Score = sql.Null[int64]{}
	} else {
		attempt.Status = domain.AttemptStatusCompleted
		attempt.Score = sql.Null[int64]{V: int64(graded.Score), Valid: true}
	}
	if err = s.attemptRepo.Finalize(ctx, attempt); err != nil {
		return SubmitResult{}, err
	}
	if !graded.NeedsReview {
		s.onFinalScore(ctx, candidateID, blueprintID, graded.Score, bp.PassingScore)
	}
	return SubmitResult{Score: graded.Score, NeedsReview: graded.NeedsReview}, nil
}

func (s *service) Review(ctx context.Context, attemptID int64,
	awarded map[int64]int) (SubmitResult, error) {
	attempt, err := s.attemptRepo.Detail(ctx, attemptID)
	if err != nil {
		return SubmitResult{}, err
	}
	if attempt.Status == domain.AttemptStatusCompleted {
		return SubmitResult{}, ErrAttemptFinalized
	}
	// 还没提交的考试没有答卷可批
	if attempt.Status != domain.AttemptStatusPendingReview {
		return SubmitResult{}, ErrAttemptNotReviewable
	}
	bp, err := s.bpRepo.GetByID(ctx, attempt.BlueprintID)
	if err != nil {
		return SubmitResult{}, err
	}
	var earned int
	for i, ans := range attempt.Answers {
		q, ok := bp.Question(ans.QuestionID)
		if !ok {
			continue
		}
		if q.Type == domain.QuestionTypeOpenAnswer {
			points, reviewed := awarded[ans.QuestionID]
			if !reviewed {
				return SubmitResult{}, ErrUnknownQuestion
			}
			// 给分只能落在 [0, 题目分值] 里
			if points < 0 {
				points = 0
			}
			if points > q.Points {
				points = q.Points
			}
			attempt.Answers[i].Points = points
			attempt.Answers[i].Correct = sql.Null[bool]{V: points == q.Points, Valid: true}
		}
		earned += attempt.Answers[i].Points
	}
	score := 0
	if total := bp.TotalPoints(); total > 0 {
		score = int(math.Round(100 * float64(earned) / float64(total)))
	}
	attempt.Status = domain.AttemptStatusCompleted
	attempt.Score = sql.Null[int64]{V: int64(score), Valid: true}
	if err = s.attemptRepo.Finalize(ctx, attempt); err != nil {
		return SubmitResult{}, err
	}
	s.onFinalScore(ctx, attempt.CandidateID, attempt.BlueprintID, score, bp.PassingScore)
	return SubmitResult{Score: score}, nil
}

// onFinalScore 成绩定稿之后推进候选人状态，通过就触发发 offer。
// 发 offer 失败只记日志，不影响已经落库的成绩
func (s *service) onFinalScore(ctx context.Context, candidateID, blueprintID int64,
	score, passingScore int) {
	err := s.candidateSvc.Transition(ctx, candidateID, candidate.TransitionCompleteTest)
	if err != nil {
		// 推不过去就不发 offer，被拒掉的候选人考过了也不能拿 offer
		if errors.Is(err, candidate.ErrInvalidTransition) {
			s.logger.Warn("候选人当前状态不允许完成考试，跳过发 offer",
				elog.Int64("candidateID", candidateID), elog.FieldErr(err))
		} else {
			s.logger.Error("考试结束后推进候选人状态失败",
				elog.Int64("candidateID", candidateID), elog.FieldErr(err))
		}
		return
	}
	if score < passingScore {
		return
	}
	if err = s.offerSvc.Issue(ctx, candidateID, blueprintID); err != nil {
		s.logger.Error("考试通过后发 offer 失败",
			elog.Int64("candidateID", candidateID),
			elog.Int64("blueprintID", blueprintID), elog.FieldErr(err))
	}
}

func (s *service) CompleteCourse(ctx context.Context, candidateID int64) error {
	if err := s.candidateSvc.CompleteEnrollment(ctx, candidateID); err != nil {
		return err
	}
	err := s.candidateSvc.Transition(ctx, candidateID, candidate.TransitionCompleteTest)
	if err != nil && !errors.Is(err, candidate.ErrInvalidTransition) {
		return err
	}
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return err
	}
	if c.VacancyID == 0 {
		return nil
	}
	v, err := s.candidateSvc.Vacancy(ctx, c.VacancyID)
	if err != nil {
		return err
	}
	if v.TestID == 0 {
		return nil
	}
	// 岗位配了测评就给候选人开一次考试
	_, err = s.Start(ctx, candidateID, v.TestID)
	return err
}

func (s *service) LatestAttempts(ctx context.Context,
	candidateIDs []int64) (map[int64]domain.AttemptSummary, error) {
	attempts, err := s.attemptRepo.LatestForCandidates(ctx, candidateIDs)
	if err != nil {
		return nil, err
	}
	blueprintIDs := make([]int64, 0, len(attempts))
	for _, a := range attempts {
		blueprintIDs = append(blueprintIDs, a.BlueprintID)
	}
	passing, err := s.bpRepo.PassingScores(ctx, blueprintIDs)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.AttemptSummary, len(attempts))
	for candidateID, a := range attempts {
		res[candidateID] = domain.AttemptSummary{
			CandidateID:  candidateID,
			Status:       a.Status,
			Score:        a.Score,
			PassingScore: passing[a.BlueprintID],
		}
	}
	return res, nil
}

func (s *service) SaveBlueprint(ctx context.Context, bp domain.Blueprint) (int64, error) {
	return s.bpRepo.Save(ctx, bp)
}

func (s *service) BlueprintDetail(ctx context.Context, id int64) (domain.Blueprint, error) {
	return s.bpRepo.GetByID(ctx, id)
}
