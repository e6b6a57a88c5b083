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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
)

type StartReq struct {
	TestID int64 `json:"testId"`
}

type SubmitReq struct {
	TestID int64 `json:"testId"`
	// 题目 ID 到原始答案
	Answers map[int64]string `json:"answers"`
}

type SubmitResp struct {
	Score       int  `json:"score"`
	NeedsReview bool `json:"needsReview"`
}

type ReviewReq struct {
	AttemptID int64 `json:"attemptId"`
	// 开放题题目 ID 到给分
	Awarded map[int64]int `json:"awarded"`
}

type CompleteCourseReq struct {
	CandidateID int64 `json:"candidateId"`
}

type SaveBlueprintReq struct {
	Blueprint BlueprintVO `json:"blueprint"`
}

type BlueprintDetailReq struct {
	ID int64 `json:"id"`
}

type BlueprintVO struct {
	ID           int64        `json:"id"`
	Title        string       `json:"title"`
	PassingScore int          `json:"passingScore"`
	TimeLimit    int          `json:"timeLimit"`
	Questions    []QuestionVO `json:"questions"`
}

type QuestionVO struct {
	ID            int64    `json:"id"`
	Type          string   `json:"type"`
	Title         string   `json:"title"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
}

func newBlueprintVO(bp domain.Blueprint) BlueprintVO {
	return BlueprintVO{
		ID:           bp.ID,
		Title:        bp.Title,
		PassingScore: bp.PassingScore,
		TimeLimit:    bp.TimeLimit,
		Questions: slice.Map(bp.Questions, func(idx int, q domain.Question) QuestionVO {
			return QuestionVO{
				ID:            q.ID,
				Type:          string(q.Type),
				Title:         q.Title,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Points:        q.Points,
			}
		}),
	}
}

func (bp BlueprintVO) toDomain() domain.Blueprint {
	return domain.Blueprint{
		ID:           bp.ID,
		Title:        bp.Title,
		PassingScore: bp.PassingScore,
		TimeLimit:    bp.TimeLimit,
		Questions: slice.Map(bp.Questions, func(idx int, q QuestionVO) domain.Question {
			return domain.Question{
				ID:            q.ID,
				Type:          domain.QuestionType(q.Type),
				Title:         q.Title,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Points:        q.Points,
			}
		}),
	}
}
