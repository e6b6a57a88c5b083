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
	"testing"

	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer"
	testioc "github.com/ecodeclub/talent/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TemplateTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc offer.Service
}

func (s *TemplateTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	candidateMdl, err := candidate.InitModule(s.db)
	require.NoError(s.T(), err)
	offerMdl, err := offer.InitModule(s.db, q, candidateMdl)
	require.NoError(s.T(), err)
	s.svc = offerMdl.Svc
}

func (s *TemplateTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `offer_templates`").Error
	require.NoError(s.T(), err)
}

func (s *TemplateTestSuite) TestSaveTemplate() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.SaveTemplate(ctx, offer.Template{
		Name:     "销售 offer 英文版",
		Language: "en",
		Content:  "Dear {{candidateName}}, welcome to {{city}}!",
		Variables: []string{
			"candidateName", "vacancyTitle", "commission", "startDate", "city",
		},
		Active: true,
	})
	require.NoError(t, err)

	templates, err := s.svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	got := templates[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, []string{
		"candidateName", "vacancyTitle", "commission", "startDate", "city",
	}, got.Variables)
	assert.True(t, got.Active)

	// 编辑要保住语言和占位符声明
	got.Language = "ru"
	got.Variables = []string{"candidateName"}
	_, err = s.svc.SaveTemplate(ctx, got)
	require.NoError(t, err)
	templates, err = s.svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "ru", templates[0].Language)
	assert.Equal(t, []string{"candidateName"}, templates[0].Variables)
}

func TestOfferTemplate(t *testing.T) {
	suite.Run(t, new(TemplateTestSuite))
}
