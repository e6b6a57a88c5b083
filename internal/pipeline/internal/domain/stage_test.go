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

	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/stretchr/testify/assert"
)

func progress(p int64) sql.Null[int64] {
	return sql.Null[int64]{V: p, Valid: true}
}

func score(s int64) sql.Null[int64] {
	return sql.Null[int64]{V: s, Valid: true}
}

func TestClassify(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		snapshot Snapshot
		want     Stage
	}{
		{
			name: "刚注册",
			snapshot: Snapshot{
				CandidateID: 1,
				Status:      candidate.StatusRegistered,
			},
			want: StageNewCandidate,
		},
		{
			name: "完善了档案还没报课",
			snapshot: Snapshot{
				CandidateID: 2,
				Status:      candidate.StatusProfileCompleted,
			},
			want: StageNewCandidate,
		},
		{
			name: "学习进度 49 算刚开始学",
			snapshot: Snapshot{
				CandidateID: 3,
				Status:      candidate.StatusInCourse,
				Progress:    progress(49),
			},
			want: StageStartedLearning,
		},
		{
			name: "学习进度 50 算培训中",
			snapshot: Snapshot{
				CandidateID: 4,
				Status:      candidate.StatusInCourse,
				Progress:    progress(50),
			},
			want: StageInTraining,
		},
		{
			name: "考试还没出最终结果",
			snapshot: Snapshot{
				CandidateID:      5,
				Status:           candidate.StatusTestCompleted,
				HasAttempt:       true,
				AttemptCompleted: false,
				PassingScore:     70,
			},
			want: StageStartedTest,
		},
		{
			name: "手动判定完成但没有考试记录",
			snapshot: Snapshot{
				CandidateID: 6,
				Status:      candidate.StatusTestCompleted,
			},
			want: StageStartedTest,
		},
		{
			name: "80 分过 70 分的及格线",
			snapshot: Snapshot{
				CandidateID:      7,
				Status:           candidate.StatusTestCompleted,
				HasAttempt:       true,
				AttemptCompleted: true,
				Score:            score(80),
				PassingScore:     70,
			},
			want: StageTestPassed,
		},
		{
			name: "已发 offer 的候选人依旧算考试通过",
			snapshot: Snapshot{
				CandidateID:      8,
				Status:           candidate.StatusOfferSent,
				HasAttempt:       true,
				AttemptCompleted: true,
				Score:            score(80),
				PassingScore:     70,
			},
			want: StageTestPassed,
		},
		{
			name: "没过及格线",
			snapshot: Snapshot{
				CandidateID:      9,
				Status:           candidate.StatusTestCompleted,
				HasAttempt:       true,
				AttemptCompleted: true,
				Score:            score(60),
				PassingScore:     70,
			},
			want: StageTestFailed,
		},
		{
			name: "被拒的候选人没有任何考试记录也算考试失败",
			snapshot: Snapshot{
				CandidateID: 10,
				Status:      candidate.StatusRejected,
			},
			want: StageTestFailed,
		},
		{
			name: "接了 offer",
			snapshot: Snapshot{
				CandidateID: 11,
				Status:      candidate.StatusOfferAccepted,
			},
			want: StageOfferAccepted,
		},
		{
			name: "已入职依旧归在接受 offer",
			snapshot: Snapshot{
				CandidateID: 12,
				Status:      candidate.StatusHired,
			},
			want: StageOfferAccepted,
		},
		{
			name: "拒了 offer 是吸收态，成绩再好也不动",
			snapshot: Snapshot{
				CandidateID:      13,
				Status:           candidate.StatusOfferDeclined,
				HasAttempt:       true,
				AttemptCompleted: true,
				Score:            score(100),
				PassingScore:     70,
			},
			want: StageOfferDeclined,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify([]Snapshot{tc.snapshot})
			assert.Equal(t, map[int64]Stage{tc.snapshot.CandidateID: tc.want}, got)
		})
	}
}

// TestClassify_Partition 八个谓词对整组候选人构成一个划分：
// 每个候选人恰好落在一个阶段，总数对得上
func TestClassify_Partition(t *testing.T) {
	t.Parallel()
	snapshots := make([]Snapshot, 0, 64)
	statuses := []candidate.Status{
		candidate.StatusRegistered,
		candidate.StatusProfileCompleted,
		candidate.StatusInCourse,
		candidate.StatusTestCompleted,
		candidate.StatusOfferSent,
		candidate.StatusOfferAccepted,
		candidate.StatusOfferDeclined,
		candidate.StatusHired,
		candidate.StatusRejected,
	}
	var id int64
	for _, status := range statuses {
		for _, p := range []sql.Null[int64]{{}, progress(0), progress(49), progress(50), progress(99)} {
			id++
			snapshots = append(snapshots, Snapshot{
				CandidateID: id,
				Status:      status,
				Progress:    p,
			})
			id++
			snapshots = append(snapshots, Snapshot{
				CandidateID:      id,
				Status:           status,
				Progress:         p,
				HasAttempt:       true,
				AttemptCompleted: true,
				Score:            score(id % 101),
				PassingScore:     70,
			})
		}
	}
	got := Classify(snapshots)
	counts := make(map[Stage]int, len(Stages))
	for _, stage := range got {
		counts[stage]++
	}
	var total int
	for _, cnt := range counts {
		total += cnt
	}
	// map 保证了一个候选人只会出现一次，这里只要确认没人被漏掉。
	// IN_COURSE 且没报过课的快照是防御性排除的
	var expected int
	for _, s := range snapshots {
		if s.Status == candidate.StatusInCourse && !s.Progress.Valid && !s.resolved() {
			continue
		}
		expected++
	}
	assert.Equal(t, expected, total)
	assert.Equal(t, expected, len(got))
}
