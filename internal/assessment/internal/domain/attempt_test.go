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

func TestAttempt_Finalized(t *testing.T) {
	testCases := []struct {
		name   string
		status AttemptStatus
		want   bool
	}{
		{
			name:   "考试中可以提交",
			status: AttemptStatusInProgress,
			want:   false,
		},
		{
			name:   "等人工批改的答卷不允许覆盖",
			status: AttemptStatusPendingReview,
			want:   true,
		},
		{
			name:   "已出最终结果",
			status: AttemptStatusCompleted,
			want:   true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Attempt{Status: tc.status}
			assert.Equal(t, tc.want, a.Finalized())
		})
	}
}

func TestAttempt_Resolved(t *testing.T) {
	// 等人工批改的考试虽然锁定了答卷，但还没有成绩
	a := Attempt{Status: AttemptStatusPendingReview}
	assert.False(t, a.Resolved())
	a = Attempt{
		Status: AttemptStatusCompleted,
		Score:  sql.Null[int64]{V: 80, Valid: true},
	}
	assert.True(t, a.Resolved())
}
