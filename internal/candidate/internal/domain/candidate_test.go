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

func TestTransition_Apply(t *testing.T) {
	testCases := []struct {
		name       string
		cur        Status
		transition Transition
		wantStatus Status
		wantErr    error
	}{
		{
			name:       "注册后开始学习",
			cur:        StatusRegistered,
			transition: TransitionStartCourse,
			wantStatus: StatusInCourse,
		},
		{
			name:       "完善资料后开始学习",
			cur:        StatusProfileCompleted,
			transition: TransitionStartCourse,
			wantStatus: StatusInCourse,
		},
		{
			name:       "学习中完成测评",
			cur:        StatusInCourse,
			transition: TransitionCompleteTest,
			wantStatus: StatusTestCompleted,
		},
		{
			name:       "重复完成测评",
			cur:        StatusTestCompleted,
			transition: TransitionCompleteTest,
			wantStatus: StatusTestCompleted,
		},
		{
			name:       "测评完成后发 Offer",
			cur:        StatusTestCompleted,
			transition: TransitionSendOffer,
			wantStatus: StatusOfferSent,
		},
		{
			name:       "没完成测评就发 Offer",
			cur:        StatusInCourse,
			transition: TransitionSendOffer,
			wantStatus: StatusInCourse,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "接受 Offer",
			cur:        StatusOfferSent,
			transition: TransitionAcceptOffer,
			wantStatus: StatusOfferAccepted,
		},
		{
			name:       "拒绝 Offer",
			cur:        StatusOfferSent,
			transition: TransitionDeclineOffer,
			wantStatus: StatusOfferDeclined,
		},
		{
			name:       "拒绝之后不能再接受",
			cur:        StatusOfferDeclined,
			transition: TransitionAcceptOffer,
			wantStatus: StatusOfferDeclined,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "接受之后入职",
			cur:        StatusOfferAccepted,
			transition: TransitionHire,
			wantStatus: StatusHired,
		},
		{
			name:       "学习中淘汰",
			cur:        StatusInCourse,
			transition: TransitionReject,
			wantStatus: StatusRejected,
		},
		{
			name:       "已淘汰不能再淘汰",
			cur:        StatusRejected,
			transition: TransitionReject,
			wantStatus: StatusRejected,
			wantErr:    ErrInvalidTransition,
		},
		{
			name:       "已入职不能淘汰",
			cur:        StatusHired,
			transition: TransitionReject,
			wantStatus: StatusHired,
			wantErr:    ErrInvalidTransition,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.transition.Apply(tc.cur)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantStatus, res)
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []Status{StatusHired, StatusRejected, StatusOfferDeclined}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), s.String())
	}
	active := []Status{StatusRegistered, StatusProfileCompleted, StatusInCourse,
		StatusTestCompleted, StatusOfferSent, StatusOfferAccepted}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestEnrollment_EffectiveProgress(t *testing.T) {
	e := Enrollment{Progress: 40}
	assert.Equal(t, 40, e.EffectiveProgress())
	// 学完之后进度一律是 100
	e.CompletedAt = 1700000000000
	assert.Equal(t, 100, e.EffectiveProgress())
}
