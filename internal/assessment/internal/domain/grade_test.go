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

package domain

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrade_SingleChoice(t *testing.T) {
	bp := Blueprint{
		ID:           1,
		PassingScore: 60,
		Questions: []Question{
			{ID: 1, Type: QuestionTypeSingleChoice, Options: []string{"X", "Y", "Z"}, CorrectAnswer: "X", Points: 10},
			{ID: 2, Type: QuestionTypeSingleChoice, Options: []string{"X", "Y", "Z"}, CorrectAnswer: "Y", Points: 10},
		},
	}
	testCases := []struct {
		name      string
		submitted map[int64]string
		wantScore int
	}{
		{
			name:      "全对",
			submitted: map[int64]string{1: "X", 2: "Y"},
			wantScore: 100,
		},
		{
			name:      "对一半",
			submitted: map[int64]string{1: "X", 2: "Z"},
			wantScore: 50,
		},
		{
			name:      "答案不做归一化",
			submitted: map[int64]string{1: "x", 2: " Y"},
			wantScore: 0,
		},
		{
			name:      "没作答",
			submitted: map[int64]string{},
			wantScore: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Grade(bp, tc.submitted)
			assert.Equal(t, tc.wantScore, res.Score)
			assert.False(t, res.NeedsReview)
			assert.Len(t, res.PerQuestion, 2)
		})
	}
}

func TestGrade_MultipleChoice(t *testing.T) {
	bp := Blueprint{
		ID:           2,
		PassingScore: 60,
		Questions: []Question{
			{ID: 1, Type: QuestionTypeMultipleChoice,
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: `["A","C"]`, Points: 10},
		},
	}
	testCases := []struct {
		name      string
		raw       string
		wantScore int
	}{
		{
			name:      "顺序无关",
			raw:       `["C","A"]`,
			wantScore: 100,
		},
		{
			name:      "原样提交",
			raw:       `["A","C"]`,
			wantScore: 100,
		},
		{
			name:      "漏选没有部分得分",
			raw:       `["A"]`,
			wantScore: 0,
		},
		{
			name:      "多选一个就是错",
			raw:       `["A","C","D"]`,
			wantScore: 0,
		},
		{
			name:      "非法 JSON 记错",
			raw:       `A,C`,
			wantScore: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Grade(bp, map[int64]string{1: tc.raw})
			assert.Equal(t, tc.wantScore, res.Score)
		})
	}
}

func TestGrade_OpenAnswer(t *testing.T) {
	// 两道单选加一道开放题，开放题永远触发人工批改
	bp := Blueprint{
		ID:           3,
		PassingScore: 60,
		Questions: []Question{
			{ID: 1, Type: QuestionTypeSingleChoice, CorrectAnswer: "X", Points: 10},
			{ID: 2, Type: QuestionTypeSingleChoice, CorrectAnswer: "Y", Points: 10},
			{ID: 3, Type: QuestionTypeOpenAnswer, Points: 10},
		},
	}
	res := Grade(bp, map[int64]string{1: "X", 2: "Z", 3: "my essay"})
	assert.True(t, res.NeedsReview)
	// 开放题 0 分记 NULL
	assert.Equal(t, sql.Null[bool]{}, res.PerQuestion[2].Correct)
	assert.Equal(t, 0, res.PerQuestion[2].Points)
	// 选择题部分照常判
	assert.True(t, res.PerQuestion[0].Correct.V)
	assert.False(t, res.PerQuestion[1].Correct.V)
}

func TestGrade_Rounding(t *testing.T) {
	testCases := []struct {
		name      string
		questions []Question
		submitted map[int64]string
		wantScore int
	}{
		{
			name: "三题对一题四舍五入",
			questions: []Question{
				{ID: 1, Type: QuestionTypeSingleChoice, CorrectAnswer: "A", Points: 1},
				{ID: 2, Type: QuestionTypeSingleChoice, CorrectAnswer: "B", Points: 1},
				{ID: 3, Type: QuestionTypeSingleChoice, CorrectAnswer: "C", Points: 1},
			},
			submitted: map[int64]string{1: "A"},
			// 33.33 -> 33
			wantScore: 33,
		},
		{
			name: "三题对两题四舍五入",
			questions: []Question{
				{ID: 1, Type: QuestionTypeSingleChoice, CorrectAnswer: "A", Points: 1},
				{ID: 2, Type: QuestionTypeSingleChoice, CorrectAnswer: "B", Points: 1},
				{ID: 3, Type: QuestionTypeSingleChoice, CorrectAnswer: "C", Points: 1},
			},
			submitted: map[int64]string{1: "A", 2: "B"},
			// 66.67 -> 67
			wantScore: 67,
		},
		{
			name:      "空卷总分为零时得分为零",
			questions: []Question{},
			submitted: map[int64]string{},
			wantScore: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Grade(Blueprint{Questions: tc.questions}, tc.submitted)
			assert.Equal(t, tc.wantScore, res.Score)
			assert.True(t, res.Score >= 0 && res.Score <= 100)
		})
	}
}

func TestGrade_ScenarioMixed(t *testing.T) {
	// 2 道 10 分单选，答案 X Y，提交 X Z，得 50 分且无需人工批改
	bp := Blueprint{
		PassingScore: 60,
		Questions: []Question{
			{ID: 1, Type: QuestionTypeSingleChoice, CorrectAnswer: "X", Points: 10},
			{ID: 2, Type: QuestionTypeSingleChoice, CorrectAnswer: "Y", Points: 10},
		},
	}
	res := Grade(bp, map[int64]string{1: "X", 2: "Z"})
	assert.Equal(t, 50, res.Score)
	assert.False(t, res.NeedsReview)

	// 加一道 10 分开放题之后，任何提交都要人工批改
	bp.Questions = append(bp.Questions, Question{ID: 3, Type: QuestionTypeOpenAnswer, Points: 10})
	res = Grade(bp, map[int64]string{1: "X", 2: "Z"})
	assert.True(t, res.NeedsReview)
}
