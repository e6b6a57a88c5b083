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

import "errors"

// ErrInvalidTransition 不允许的状态转移
var ErrInvalidTransition = errors.New("候选人状态转移不合法")

// Status 候选人在招聘流程中的存储状态。
// 只有测评和 Offer 两个模块会修改它，展示用的阶段划分是另外一回事
type Status string

const (
	StatusRegistered       Status = "REGISTERED"
	StatusProfileCompleted Status = "PROFILE_COMPLETED"
	StatusInCourse         Status = "IN_COURSE"
	StatusTestCompleted    Status = "TEST_COMPLETED"
	StatusOfferSent        Status = "OFFER_SENT"
	StatusOfferAccepted    Status = "OFFER_ACCEPTED"
	StatusOfferDeclined    Status = "OFFER_DECLINED"
	StatusHired            Status = "HIRED"
	StatusRejected         Status = "REJECTED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusRegistered, StatusProfileCompleted, StatusInCourse,
		StatusTestCompleted, StatusOfferSent, StatusOfferAccepted,
		StatusOfferDeclined, StatusHired, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal 吸收态，进去之后不会再出来
func (s Status) IsTerminal() bool {
	switch s {
	case StatusHired, StatusRejected, StatusOfferDeclined:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// Transition 命名的状态转移。
// 状态字段不允许随意覆盖，所有修改都要走这里的转移表
type Transition string

const (
	TransitionStartCourse  Transition = "start_course"
	TransitionCompleteTest Transition = "complete_test"
	TransitionSendOffer    Transition = "send_offer"
	TransitionAcceptOffer  Transition = "accept_offer"
	TransitionDeclineOffer Transition = "decline_offer"
	TransitionHire         Transition = "hire"
	TransitionReject       Transition = "reject"
)

type transitionRule struct {
	sources []Status
	target  Status
}

var transitionTable = map[Transition]transitionRule{
	TransitionStartCourse: {
		sources: []Status{StatusRegistered, StatusProfileCompleted},
		target:  StatusInCourse,
	},
	TransitionCompleteTest: {
		// 允许重复完成测评：一个候选人可以有多次考试
		sources: []Status{StatusInCourse, StatusTestCompleted},
		target:  StatusTestCompleted,
	},
	TransitionSendOffer: {
		sources: []Status{StatusTestCompleted},
		target:  StatusOfferSent,
	},
	TransitionAcceptOffer: {
		sources: []Status{StatusOfferSent},
		target:  StatusOfferAccepted,
	},
	TransitionDeclineOffer: {
		sources: []Status{StatusOfferSent},
		target:  StatusOfferDeclined,
	},
	TransitionHire: {
		sources: []Status{StatusOfferAccepted},
		target:  StatusHired,
	},
	TransitionReject: {
		sources: []Status{StatusRegistered, StatusProfileCompleted, StatusInCourse,
			StatusTestCompleted, StatusOfferSent, StatusOfferAccepted},
		target:  StatusRejected,
	},
}

// Sources 返回允许执行该转移的源状态
func (t Transition) Sources() []Status {
	return transitionTable[t].sources
}

// Target 返回转移之后的状态
func (t Transition) Target() (Status, bool) {
	rule, ok := transitionTable[t]
	return rule.target, ok
}

// Apply 校验并执行一次状态转移
func (t Transition) Apply(cur Status) (Status, error) {
	rule, ok := transitionTable[t]
	if !ok {
		return cur, ErrInvalidTransition
	}
	for _, src := range rule.sources {
		if cur == src {
			return rule.target, nil
		}
	}
	return cur, ErrInvalidTransition
}

// Candidate 候选人档案，招聘流水线的聚合根
type Candidate struct {
	ID int64
	// 关联的登录用户
	UID   int64
	Name  string
	Phone string
	City  string
	// 目标职位，0 表示还没有选定职位
	VacancyID int64
	Status    Status
	Ctime     int64
	Utime     int64
}

// Vacancy 职位。Offer 渲染和测评指派都要用到
type Vacancy struct {
	ID    int64
	Title string
	City  string
	// 该职位配置的测评，0 表示没有配置
	TestID     int64
	Commission string
}

// Filter 看板和列表的筛选条件
type Filter struct {
	Keyword string
	StartAt int64
	EndAt   int64
}
