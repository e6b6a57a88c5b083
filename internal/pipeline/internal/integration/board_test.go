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

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/ecodeclub/talent/internal/pipeline"
	"github.com/ecodeclub/talent/internal/pipeline/internal/web"
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

const hrUid = int64(9901)

type BoardTestSuite struct {
	server        *egin.Component
	db            *egorm.Component
	candidateMdl  *candidate.Module
	assessmentMdl *assessment.Module
	suite.Suite
}

func (s *BoardTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	ec := testioc.InitCache()
	candidateMdl, err := candidate.InitModule(s.db)
	require.NoError(s.T(), err)
	offerMdl, err := offer.InitModule(s.db, q, candidateMdl)
	require.NoError(s.T(), err)
	assessmentMdl, err := assessment.InitModule(s.db, ec, candidateMdl, offerMdl)
	require.NoError(s.T(), err)
	pipelineMdl, err := pipeline.InitModule(candidateMdl, assessmentMdl)
	require.NoError(s.T(), err)
	s.candidateMdl = candidateMdl
	s.assessmentMdl = assessmentMdl

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: hrUid,
			Data: map[string]string{
				"hr": "true",
			},
		}))
	})
	pipelineMdl.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *BoardTestSuite) TearDownTest() {
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

// seed 造五个处在不同阶段的候选人
func (s *BoardTestSuite) seed() {
	t := s.T()
	ctx := context.Background()
	bpID, err := s.assessmentMdl.Svc.SaveBlueprint(ctx, assessment.Blueprint{
		Title:        "入门测评",
		PassingScore: 70,
		Questions: []assessment.Question{
			{
				ID:            1,
				Type:          "single_choice",
				Title:         "第一题",
				Options:       []string{"X", "Y"},
				CorrectAnswer: "X",
				Points:        10,
			},
		},
	})
	require.NoError(t, err)
	vacancyID, err := s.candidateMdl.Svc.SaveVacancy(ctx, candidate.Vacancy{
		Title:  "销售顾问",
		City:   "Dubai",
		TestID: bpID,
	})
	require.NoError(t, err)

	newProfile := func(uid int64, name string) int64 {
		id, err := s.candidateMdl.Svc.SaveProfile(ctx, candidate.Candidate{
			UID:       uid,
			Name:      name,
			City:      "Dubai",
			VacancyID: vacancyID,
		})
		require.NoError(t, err)
		return id
	}

	// 刚注册
	newProfile(1, "甲")

	// 课程进度 30
	c2 := newProfile(2, "乙")
	require.NoError(t, s.candidateMdl.Svc.StartCourse(ctx, c2, 1))
	require.NoError(t, s.candidateMdl.Svc.UpdateProgress(ctx, c2, 1, 30))

	// 课程进度 60
	c3 := newProfile(3, "丙")
	require.NoError(t, s.candidateMdl.Svc.StartCourse(ctx, c3, 1))
	require.NoError(t, s.candidateMdl.Svc.UpdateProgress(ctx, c3, 1, 60))

	// 考过了
	c4 := newProfile(4, "丁")
	require.NoError(t, s.candidateMdl.Svc.StartCourse(ctx, c4, 1))
	_, err = s.assessmentMdl.Svc.Start(ctx, c4, bpID)
	require.NoError(t, err)
	_, err = s.assessmentMdl.Svc.Submit(ctx, c4, bpID, map[int64]string{1: "X"})
	require.NoError(t, err)

	// 没考过
	c5 := newProfile(5, "戊")
	require.NoError(t, s.candidateMdl.Svc.StartCourse(ctx, c5, 1))
	_, err = s.assessmentMdl.Svc.Start(ctx, c5, bpID)
	require.NoError(t, err)
	_, err = s.assessmentMdl.Svc.Submit(ctx, c5, bpID, map[int64]string{1: "Y"})
	require.NoError(t, err)
}

func (s *BoardTestSuite) TestBoard() {
	t := s.T()
	s.seed()
	req, err := http.NewRequest(http.MethodPost,
		"/pipeline/board", iox.NewJSONReader(web.BoardReq{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.BoardResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	assert.Equal(t, 5, resp.Total)

	counts := make(map[string]int, len(resp.Columns))
	for _, col := range resp.Columns {
		counts[col.Stage] = col.Count
		assert.Len(t, col.Candidates, col.Count)
	}
	assert.Equal(t, 1, counts["new_candidate"])
	assert.Equal(t, 1, counts["started_learning"])
	assert.Equal(t, 1, counts["in_training"])
	assert.Equal(t, 1, counts["test_passed"])
	assert.Equal(t, 1, counts["test_failed"])
	assert.Equal(t, 0, counts["offer_accepted"])
}

func TestPipelineBoard(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}
