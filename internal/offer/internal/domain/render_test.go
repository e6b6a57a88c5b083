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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		tpl  string
		vars map[string]string
		want string
	}{
		{
			name: "全部替换",
			tpl:  "你好 {{candidateName}}，欢迎加入 {{vacancyTitle}}",
			vars: map[string]string{
				"candidateName": "张三",
				"vacancyTitle":  "销售顾问",
			},
			want: "你好 张三，欢迎加入 销售顾问",
		},
		{
			name: "没给值的占位符原样保留",
			tpl:  "佣金 {{commission}}，城市 {{city}}",
			vars: map[string]string{
				"commission": "30%",
			},
			want: "佣金 30%，城市 {{city}}",
		},
		{
			name: "同一个占位符出现多次",
			tpl:  "{{name}}，{{name}}",
			vars: map[string]string{"name": "李四"},
			want: "李四，李四",
		},
		{
			name: "没有占位符",
			tpl:  "纯文本",
			vars: map[string]string{"name": "李四"},
			want: "纯文本",
		},
		{
			name: "变量表为空",
			tpl:  "你好 {{candidateName}}",
			vars: map[string]string{},
			want: "你好 {{candidateName}}",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Render(tc.tpl, tc.vars))
		})
	}
}
