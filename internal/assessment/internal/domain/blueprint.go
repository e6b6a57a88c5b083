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

type QuestionType string

const (
	// QuestionTypeSingleChoice 单选，答案就是选项本身
	QuestionTypeSingleChoice QuestionType = "single_choice"
	// QuestionTypeMultipleChoice 多选，答案是 JSON 数组编码的选项集合
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	// QuestionTypeOpenAnswer 开放题，只能人工批改
	QuestionTypeOpenAnswer QuestionType = "open_answer"
)

type Question struct {
	ID    int64
	Type  QuestionType
	Title string
	// 选择题的候选项
	Options []string
	// 单选题就是选项字符串，多选题是 JSON 数组，开放题为空
	CorrectAnswer string
	// 恒为正数
	Points int
}

// Blueprint 测评卷。一旦有人开考就不允许再修改，
// 修改也不会重新给历史成绩打分
type Blueprint struct {
	ID    int64
	Title string
	// 0-100
	PassingScore int
	// 分钟，0 表示不限时
	TimeLimit int
	Questions []Question
}

func (b Blueprint) TotalPoints() int {
	var total int
	for _, q := range b.Questions {
		total += q.Points
	}
	return total
}

func (b Blueprint) Question(id int64) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
