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
	"encoding/json"
	"math"
)

// GradedResult 一次自动判卷的结果。
// NeedsReview 为 true 时 Score 不是最终成绩，不能落库
type GradedResult struct {
	Score       int
	NeedsReview bool
	PerQuestion []Answer
}

// Grade 按卷面顺序给一次提交判分。纯函数，没有任何副作用。
// 规则：
//   - 没作答的题 0 分，选择题记错，开放题记 NULL
//   - 单选题答案字符串精确相等才得分，不做任何归一化
//   - 多选题集合完全相等才得满分，多选漏选都是 0 分
//   - 开放题一律 0 分记 NULL，留给人工批改
func Grade(bp Blueprint, submitted map[int64]string) GradedResult {
	var res GradedResult
	var earned int
	total := bp.TotalPoints()
	res.PerQuestion = make([]Answer, 0, len(bp.Questions))
	for _, q := range bp.Questions {
		raw, answered := submitted[q.ID]
		ans := Answer{
			QuestionID: q.ID,
			Raw:        raw,
		}
		switch q.Type {
		case QuestionTypeOpenAnswer:
			// Correct 保持 NULL
			res.NeedsReview = true
		case QuestionTypeSingleChoice:
			correct := answered && raw == q.CorrectAnswer
			ans.Correct = sql.Null[bool]{V: correct, Valid: true}
			if correct {
				ans.Points = q.Points
			}
		case QuestionTypeMultipleChoice:
			correct := answered && sameOptionSet(raw, q.CorrectAnswer)
			ans.Correct = sql.Null[bool]{V: correct, Valid: true}
			if correct {
				ans.Points = q.Points
			}
		}
		earned += ans.Points
		res.PerQuestion = append(res.PerQuestion, ans)
	}
	if total > 0 {
		res.Score = int(math.Round(100 * float64(earned) / float64(total)))
	}
	return res
}

// sameOptionSet 两个 JSON 数组解码之后是否为同一个集合，与顺序无关
func sameOptionSet(raw, correct string) bool {
	submitted, err := decodeOptionSet(raw)
	if err != nil {
		return false
	}
	want, err := decodeOptionSet(correct)
	if err != nil {
		return false
	}
	if len(submitted) != len(want) {
		return false
	}
	for opt := range want {
		if _, ok := submitted[opt]; !ok {
			return false
		}
	}
	return true
}

func decodeOptionSet(raw string) (map[string]struct{}, error) {
	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, err
	}
	res := make(map[string]struct{}, len(opts))
	for _, opt := range opts {
		res[opt] = struct{}{}
	}
	return res, nil
}
