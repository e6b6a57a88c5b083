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
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/candidate/internal/web"
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

const hrUid = int64(8801)

type AdminHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    candidate.Service
}

func (s *AdminHandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	mdl, err := candidate.InitModule(s.db)
	require.NoError(s.T(), err)
	s.svc = mdl.Svc

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
	mdl.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `candidates`").Error
	require.NoError(s.T(), err)
}

func (s *AdminHandlerTestSuite) transition(path string, candidateID int64) test.Result[any] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(web.TransitionReq{
		CandidateID: candidateID,
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func (s *AdminHandlerTestSuite) TestRejectAndHire() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	id, err := s.svc.SaveProfile(ctx, candidate.Candidate{
		UID:  201,
		Name: "张三",
		City: "Dubai",
	})
	require.NoError(t, err)

	result := s.transition("/candidate/admin/reject", id)
	assert.Equal(t, 0, result.Code)
	c, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusRejected, c.Status)

	// 被淘汰是终态，录用不了
	result = s.transition("/candidate/admin/hire", id)
	assert.Equal(t, 512003, result.Code)
	c, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusRejected, c.Status)
}

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
