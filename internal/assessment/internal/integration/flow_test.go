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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/ecodeclub/talent/internal/test"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3301)

// FlowTestSuite 覆盖提交判卷到发 offer 再到回复 offer 的完整链路
type FlowTestSuite struct {
	suite.Suite
	server        *egin.Component
	db            *egorm.Component
	candidateMdl  *candidate.Module
	offerMdl      *offer.Module
	assessmentMdl *assessment.Module
}

func (s *FlowTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	ec := testioc.InitCache()
	candidateMdl, err := candidate.InitModule(s.db)
	require.NoError(s.T(), err)
	offerMdl, err := offer.InitModule(s.db, q, candidateMdl)
	require.NoError(s.T(), err)
	assessmentMdl, err := assessment.InitModule(s.db, ec, candidateMdl, offerMdl)
	require.NoError(s.T(), err)
	s.candidateMdl = candidateMdl
	s.offerMdl = offerMdl
	s.assessmentMdl = assessmentMdl

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	assessmentMdl.Hdl.MemberRoutes(server.Engine)
	offerMdl.Hdl.MemberRoutes(server.Engine)
	s.server = server
}

func (s *FlowTestSuite) TearDownTest() {
	tables := []string{
		"candidates", "course_enrollments", "vacancies",
		"test_blueprints", "test_questions", "test_attempts", "test_attempt_answers",
		"offers", "offer_templates",
	}
	for _, table := range tables {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

// prepare 造一个在学习中的候选人和配好测评的岗位，并开一次考试
func (s *FlowTestSuite) prepare(questions []assessment.Question, passingScore int) (candidateID, bpID int64) {
	t := s.T()
	ctx := context.Background()
	bpID, err := s.assessmentMdl.Svc.SaveBlueprint(ctx, assessment.Blueprint{
		Title:        "销售入门测评",
		PassingScore: passingScore,
		Questions:    questions,
	})
	require.NoError(t, err)
	vacancyID, err := s.candidateMdl.Svc.SaveVacancy(ctx, candidate.Vacancy{
		Title:      "销售顾问",
		City:       "Dubai",
		TestID:     bpID,
		Commission: "30%",
	})
	require.NoError(t, err)
	candidateID, err = s.candidateMdl.Svc.SaveProfile(ctx, candidate.Candidate{
		UID:       uid,
		Name:      "张三",
		City:      "Dubai",
		VacancyID: vacancyID,
	})
	require.NoError(t, err)
	require.NoError(t, s.candidateMdl.Svc.StartCourse(ctx, candidateID, 1))
	_, err = s.assessmentMdl.Svc.Start(ctx, candidateID, bpID)
	require.NoError(t, err)
	return candidateID, bpID
}

func (s *FlowTestSuite) submit(bpID int64, answers map[int64]string) (int, test.Result[web.SubmitResp]) {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/test/submit", iox.NewJSONReader(web.SubmitReq{
			TestID:  bpID,
			Answers: answers,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan()
}

func (s *FlowTestSuite) respond(path, sn string) (int, test.Result[any]) {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(map[string]string{
		"sn": sn,
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan()
}

func singleChoiceQuestions() []assessment.Question {
	return []assessment.Question{
		{
			ID:            1,
			Type:          "single_choice",
			Title:         "第一题",
			Options:       []string{"X", "Y", "Z"},
			CorrectAnswer: "X",
			Points:        10,
		},
		{
			ID:            2,
			Type:          "single_choice",
			Title:         "第二题",
			Options:       []string{"X", "Y", "Z"},
			CorrectAnswer: "Y",
			Points:        10,
		},
	}
}

func (s *FlowTestSuite) TestSubmit_HalfRight() {
	t := s.T()
	candidateID, bpID := s.prepare(singleChoiceQuestions(), 70)
	code, res := s.submit(bpID, map[int64]string{1: "X", 2: "Z"})
	assert.Equal(t, 200, code)
	assert.Equal(t, 50, res.Data.Score)
	assert.False(t, res.Data.NeedsReview)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusTestCompleted, c.Status)
	// 没过及格线，不应该有 offer
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func (s *FlowTestSuite) TestSubmit_NeedsReview() {
	t := s.T()
	questions := append(singleChoiceQuestions(), assessment.Question{
		ID:     3,
		Type:   "open_answer",
		Title:  "谈谈你对销售的理解",
		Points: 10,
	})
	candidateID, bpID := s.prepare(questions, 70)
	code, res := s.submit(bpID, map[int64]string{1: "X", 2: "Y", 3: "认真卖"})
	assert.Equal(t, 200, code)
	assert.True(t, res.Data.NeedsReview)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var attempt struct {
		Status string
		Score  *int64
	}
	err := s.db.WithContext(ctx).Table("test_attempts").
		Select("status", "score").
		Where("candidate_id = ?", candidateID).
		Scan(&attempt).Error
	require.NoError(t, err)
	assert.Equal(t, "pending_review", attempt.Status)
	// 人工批改之前成绩必须是 NULL
	assert.Nil(t, attempt.Score)
}

func (s *FlowTestSuite) TestSubmit_PassIssuesOneOffer() {
	t := s.T()
	candidateID, bpID := s.prepare(singleChoiceQuestions(), 70)
	code, res := s.submit(bpID, map[int64]string{1: "X", 2: "Y"})
	assert.Equal(t, 200, code)
	assert.Equal(t, 100, res.Data.Score)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusOfferSent, c.Status)
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, offer.StatusSent, offers[0].Status)

	// 重复提交已出结果的考试要被拒绝，以原结果为准
	code, result := s.submit(bpID, map[int64]string{1: "Z", 2: "Z"})
	assert.Equal(t, 200, code)
	assert.Equal(t, 513003, result.Code)

	// 再触发一次发 offer 也不会多出一份
	err = s.offerMdl.Svc.Issue(ctx, candidateID, bpID)
	require.NoError(t, err)
	offers, err = s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}

func (s *FlowTestSuite) latestAttemptID(candidateID int64) int64 {
	var ids []int64
	err := s.db.Table("test_attempts").
		Where("candidate_id = ?", candidateID).
		Order("started_at DESC").Limit(1).
		Pluck("id", &ids).Error
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), ids)
	return ids[0]
}

// reviewQuestions 一道 10 分单选加一道 10 分开放题
func reviewQuestions() []assessment.Question {
	return []assessment.Question{
		{
			ID:            1,
			Type:          "single_choice",
			Title:         "第一题",
			Options:       []string{"X", "Y"},
			CorrectAnswer: "X",
			Points:        10,
		},
		{
			ID:     2,
			Type:   "open_answer",
			Title:  "谈谈你对销售的理解",
			Points: 10,
		},
	}
}

func (s *FlowTestSuite) TestReview_NegativeAwardClamped() {
	t := s.T()
	candidateID, bpID := s.prepare(reviewQuestions(), 70)
	_, res := s.submit(bpID, map[int64]string{1: "X", 2: "认真卖"})
	require.True(t, res.Data.NeedsReview)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	attemptID := s.latestAttemptID(candidateID)
	// 负分按 0 分处理，最终成绩不会跌出 [0, 100]
	result, err := s.assessmentMdl.Svc.Review(ctx, attemptID, map[int64]int{2: -1000})
	require.NoError(t, err)
	assert.Equal(t, 50, result.Score)

	var attempt struct {
		Status string
		Score  *int64
	}
	err = s.db.WithContext(ctx).Table("test_attempts").
		Select("status", "score").
		Where("id = ?", attemptID).
		Scan(&attempt).Error
	require.NoError(t, err)
	assert.Equal(t, "completed", attempt.Status)
	require.NotNil(t, attempt.Score)
	assert.Equal(t, int64(50), *attempt.Score)
	// 没到及格线，候选人停在考试完成
	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusTestCompleted, c.Status)
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func (s *FlowTestSuite) TestReview_PassIssuesOffer() {
	t := s.T()
	candidateID, bpID := s.prepare(reviewQuestions(), 70)
	_, res := s.submit(bpID, map[int64]string{1: "X", 2: "认真卖"})
	require.True(t, res.Data.NeedsReview)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	// 超出题目分值的给分压到满分
	result, err := s.assessmentMdl.Svc.Review(ctx, s.latestAttemptID(candidateID), map[int64]int{2: 15})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)

	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusOfferSent, c.Status)
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, offer.StatusSent, offers[0].Status)
}

func (s *FlowTestSuite) TestReview_NotSubmitted() {
	t := s.T()
	candidateID, _ := s.prepare(reviewQuestions(), 70)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// 还没提交的考试没有答卷可批
	attemptID := s.latestAttemptID(candidateID)
	_, err := s.assessmentMdl.Svc.Review(ctx, attemptID, map[int64]int{})
	assert.ErrorIs(t, err, assessment.ErrAttemptNotReviewable)

	var attempt struct {
		Status string
		Score  *int64
	}
	err = s.db.WithContext(ctx).Table("test_attempts").
		Select("status", "score").
		Where("id = ?", attemptID).
		Scan(&attempt).Error
	require.NoError(t, err)
	assert.Equal(t, "in_progress", attempt.Status)
	assert.Nil(t, attempt.Score)
}

func (s *FlowTestSuite) TestSubmit_PendingReviewLocked() {
	t := s.T()
	candidateID, bpID := s.prepare(reviewQuestions(), 70)
	_, res := s.submit(bpID, map[int64]string{1: "X", 2: "第一版答案"})
	require.True(t, res.Data.NeedsReview)

	// 答卷已经在批改人手里，重复提交不能覆盖
	code, result := s.submit(bpID, map[int64]string{1: "Y", 2: "第二版答案"})
	assert.Equal(t, 200, code)
	assert.Equal(t, 513003, result.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var raws []string
	err := s.db.WithContext(ctx).Table("test_attempt_answers").
		Where("attempt_id = ? AND question_id = ?", s.latestAttemptID(candidateID), int64(2)).
		Pluck("raw", &raws).Error
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "第一版答案", raws[0])
}

func (s *FlowTestSuite) TestReview_RejectedCandidateGetsNoOffer() {
	t := s.T()
	candidateID, bpID := s.prepare(reviewQuestions(), 70)
	_, res := s.submit(bpID, map[int64]string{1: "X", 2: "认真卖"})
	require.True(t, res.Data.NeedsReview)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	// 批改完成之前候选人被淘汰了
	require.NoError(t, s.candidateMdl.Svc.Transition(ctx, candidateID, candidate.TransitionReject))
	result, err := s.assessmentMdl.Svc.Review(ctx, s.latestAttemptID(candidateID), map[int64]int{2: 10})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)

	// 成绩照常落库，但被淘汰的候选人不发 offer
	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusRejected, c.Status)
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func (s *FlowTestSuite) TestSaveBlueprint_NoQuestions() {
	t := s.T()
	ctx := context.Background()
	bpID, err := s.assessmentMdl.Svc.SaveBlueprint(ctx, assessment.Blueprint{
		Title:        "还没出题的测评",
		PassingScore: 70,
	})
	require.NoError(t, err)
	bp, err := s.assessmentMdl.Svc.BlueprintDetail(ctx, bpID)
	require.NoError(t, err)
	assert.Empty(t, bp.Questions)
}

func (s *FlowTestSuite) TestSubmit_NoProfile() {
	t := s.T()
	// 登录用户还没建候选人档案
	code, result := s.submit(1, map[int64]string{1: "X"})
	assert.Equal(t, 200, code)
	assert.Equal(t, 513005, result.Code)
}

func (s *FlowTestSuite) TestRespondOffer() {
	t := s.T()
	candidateID, bpID := s.prepare(singleChoiceQuestions(), 70)
	_, res := s.submit(bpID, map[int64]string{1: "X", 2: "Y"})
	require.Equal(t, 100, res.Data.Score)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	offers, err := s.offerMdl.Svc.ListForCandidate(ctx, candidateID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	sn := offers[0].SN

	code, result := s.respond("/offer/accept", sn)
	assert.Equal(t, 200, code)
	assert.Equal(t, 0, result.Code)
	c, err := s.candidateMdl.Svc.Detail(ctx, candidateID)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusOfferAccepted, c.Status)

	// 重复接受是幂等的
	code, result = s.respond("/offer/accept", sn)
	assert.Equal(t, 200, code)
	assert.Equal(t, 0, result.Code)

	// 接受之后再拒绝要以原结果为准
	code, result = s.respond("/offer/decline", sn)
	assert.Equal(t, 200, code)
	assert.Equal(t, 514003, result.Code)
}

func TestFlow(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}
