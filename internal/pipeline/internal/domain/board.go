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

import "github.com/ecodeclub/talent/internal/candidate"

// StageColumn 看板上的一列
type StageColumn struct {
	Stage Stage
	// 保持筛选结果的原始顺序
	Candidates []candidate.Candidate
	Count      int
	// 占筛选总数的百分比
	Percent float64
}

type Board struct {
	Total   int
	Columns []StageColumn
}
