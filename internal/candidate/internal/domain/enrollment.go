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

// Enrollment 候选人的一次课程报名。
// 一个候选人可以报名多门课，看板只看最近开始的那一门
type Enrollment struct {
	ID          int64
	CandidateID int64
	CourseID    int64
	// 0-100，完成之前只增不减
	Progress    int
	StartedAt   int64
	// 0 表示还没学完
	CompletedAt int64
}

func (e Enrollment) Completed() bool {
	return e.CompletedAt > 0
}

// EffectiveProgress 学完之后进度一律按 100 算
func (e Enrollment) EffectiveProgress() int {
	if e.Completed() {
		return 100
	}
	return e.Progress
}
