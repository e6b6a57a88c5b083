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

import "database/sql"

type AttemptStatus string

const (
	AttemptStatusPending       AttemptStatus = "pending"
	AttemptStatusInProgress    AttemptStatus = "in_progress"
	// AttemptStatusPendingReview 有开放题还没人工批改
	AttemptStatusPendingReview AttemptStatus = "pending_review"
	AttemptStatusCompleted     AttemptStatus = "completed"
)

func (s AttemptStatus) String() string {
	return string(s)
}

// Answer 一道题的作答记录。
// 开放题在人工批改之前 Correct 是 NULL
type Answer struct {
	QuestionID int64
	Raw        string
	Correct    sql.Null[bool]
	Points     int
}

// Attempt 候选人的一次考试。
// 不变量：Score 非 NULL 当且仅当 Status == completed
type Attempt struct {
	ID          int64
	CandidateID int64
	BlueprintID int64
	Status      AttemptStatus
	Score       sql.Null[int64]
	StartedAt   int64
	CompletedAt int64
	Answers     []Answer
}

// Finalized 不允许再提交答卷。
// 等人工批改的答卷已经在批改人手里，同样拒绝覆盖
func (a Attempt) Finalized() bool {
	return a.Status == AttemptStatusCompleted || a.Status == AttemptStatusPendingReview
}

// Resolved 成绩已定（包括待人工批改之前的判定），看板据此区分"考试中"
func (a Attempt) Resolved() bool {
	return a.Status == AttemptStatusCompleted && a.Score.Valid
}

// AttemptSummary 看板要用的最近一次考试摘要
type AttemptSummary struct {
	CandidateID  int64
	Status       AttemptStatus
	Score        sql.Null[int64]
	PassingScore int
}
