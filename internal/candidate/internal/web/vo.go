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

import "github.com/ecodeclub/talent/internal/candidate/internal/domain"

type SaveProfileReq struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	VacancyID int64  `json:"vacancyId"`
}

type StartCourseReq struct {
	CourseID int64 `json:"courseId"`
}

type ProgressReq struct {
	CourseID int64 `json:"courseId"`
	Progress int   `json:"progress"`
}

type ListReq struct {
	Keyword string `json:"keyword"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
}

type TransitionReq struct {
	CandidateID int64 `json:"candidateId"`
}

type SaveVacancyReq struct {
	Vacancy VacancyVO `json:"vacancy"`
}

type CandidateVO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	VacancyID int64  `json:"vacancyId"`
	Status    string `json:"status"`
	Ctime     int64  `json:"ctime"`
}

type VacancyVO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	City       string `json:"city"`
	TestID     int64  `json:"testId"`
	Commission string `json:"commission"`
}

func newCandidateVO(c domain.Candidate) CandidateVO {
	return CandidateVO{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		City:      c.City,
		VacancyID: c.VacancyID,
		Status:    c.Status.String(),
		Ctime:     c.Ctime,
	}
}

func newVacancyVO(v domain.Vacancy) VacancyVO {
	return VacancyVO{
		ID:         v.ID,
		Title:      v.Title,
		City:       v.City,
		TestID:     v.TestID,
		Commission: v.Commission,
	}
}

func (v VacancyVO) toDomain() domain.Vacancy {
	return domain.Vacancy{
		ID:         v.ID,
		Title:      v.Title,
		City:       v.City,
		TestID:     v.TestID,
		Commission: v.Commission,
	}
}
