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

package web

import "github.com/ecodeclub/talent/internal/offer/internal/domain"

type RespondReq struct {
	SN string `json:"sn"`
}

type SaveTemplateReq struct {
	Template TemplateVO `json:"template"`
}

type SaveGeneralOfferReq struct {
	VacancyID  int64  `json:"vacancyId"`
	TestID     int64  `json:"testId"`
	TemplateID int64  `json:"templateId"`
	Content    string `json:"content"`
}

type OfferVO struct {
	SN          string `json:"sn"`
	VacancyID   int64  `json:"vacancyId"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	SentAt      int64  `json:"sentAt"`
	RespondedAt int64  `json:"respondedAt"`
}

type TemplateVO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Language  string   `json:"language"`
	Content   string   `json:"content"`
	Variables []string `json:"variables"`
	Active    bool     `json:"active"`
}

func newOfferVO(o domain.Offer) OfferVO {
	return OfferVO{
		SN:          o.SN,
		VacancyID:   o.VacancyID,
		Content:     o.Content,
		Status:      o.Status.String(),
		SentAt:      o.SentAt,
		RespondedAt: o.RespondedAt,
	}
}

func newTemplateVO(t domain.Template) TemplateVO {
	return TemplateVO{
		ID:        t.ID,
		Name:      t.Name,
		Language:  t.Language,
		Content:   t.Content,
		Variables: t.Variables,
		Active:    t.Active,
	}
}

func (t TemplateVO) toDomain() domain.Template {
	return domain.Template{
		ID:        t.ID,
		Name:      t.Name,
		Language:  t.Language,
		Content:   t.Content,
		Variables: t.Variables,
		Active:    t.Active,
	}
}
