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

	"github.com/ecodeclub/talent/internal/candidate"
)

type Stage string

const (
	StageNewCandidate    Stage = "new_candidate"
	StageStartedLearning Stage = "started_learning"
	StageInTraining      Stage = "in_training"
	StageStartedTest     Stage = "started_test"
	StageTestPassed      Stage = "test_passed"
	StageTestFailed      Stage = "test_failed"
	StageOfferAccepted   Stage = "offer_accepted"
	StageOfferDeclined   Stage = "offer_declined"
)

func (s Stage) String() string {
	return string(s)
}

// Stages 从早到晚的八个阶段，看板按这个顺序展示
var Stages = []Stage{
	StageNewCandidate,
	StageStartedLearning,
	StageInTraining,
	StageStartedTest,
	StageTestPassed,
	StageTestFailed,
	StageOfferAccepted,
	StageOfferDeclined,
}

// Snapshot 分类需要的一个候选人的全部事实：
// 当前状态、最近一门课的进度、最近一次考试的结果
type Snapshot struct {
	CandidateID int64
	Status      candidate.Status
	// 没报过课时 Valid 为 false
	Progress sql.Null[int64]
	// 有没有考试记录
	HasAttempt bool
	// 最近一次考试是否已出最终结果
	AttemptCompleted bool
	// 出最终结果之前是 NULL
	Score        sql.Null[int64]
	PassingScore int
}

// resolved 最近一次考试已经有最终成绩
func (s Snapshot) resolved() bool {
	return s.HasAttempt && s.AttemptCompleted && s.Score.Valid
}

// Classify 把候选人快照映射到八个阶段之一。
// 从最晚的阶段往回匹配，命中即停，保证每个候选人只落在一个阶段。
// 八个谓词都不命中的候选人不进结果，调用方不展示
func Classify(snapshots []Snapshot) map[int64]Stage {
	res := make(map[int64]Stage, len(snapshots))
	for _, s := range snapshots {
		stage, ok := stageOf(s)
		if ok {
			res[s.CandidateID] = stage
		}
	}
	return res
}

func stageOf(s Snapshot) (Stage, bool) {
	switch {
	case s.Status == candidate.StatusOfferDeclined:
		return StageOfferDeclined, true
	case s.Status == candidate.StatusOfferAccepted || s.Status == candidate.StatusHired:
		return StageOfferAccepted, true
	case s.Status == candidate.StatusRejected,
		s.resolved() && s.Score.V < int64(s.PassingScore):
		return StageTestFailed, true
	case s.resolved() && s.Score.V >= int64(s.PassingScore):
		return StageTestPassed, true
	case s.Status == candidate.StatusTestCompleted || s.Status == candidate.StatusOfferSent:
		// 走到这里说明最近一次考试还没出最终结果
		return StageStartedTest, true
	case s.Status == candidate.StatusInCourse && s.Progress.Valid &&
		s.Progress.V >= 50 && s.Progress.V < 100:
		return StageInTraining, true
	case s.Status == candidate.StatusInCourse && s.Progress.Valid && s.Progress.V < 50:
		return StageStartedLearning, true
	case s.Status == candidate.StatusRegistered || s.Status == candidate.StatusProfileCompleted:
		return StageNewCandidate, true
	default:
		return "", false
	}
}
