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

type OfferType string

const (
	// OfferTypePersonal 候选人可以接受或者拒绝的那一份
	OfferTypePersonal OfferType = "personal"
	// OfferTypeGeneral 绑定在岗位+考试上的通用模板，命中之后克隆成 personal
	OfferTypeGeneral OfferType = "general"
)

type OfferStatus string

const (
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"
)

func (s OfferStatus) String() string {
	return string(s)
}

// Offer 不变量：一个候选人任意时刻至多有一份 status = sent 的 personal offer
type Offer struct {
	ID          int64
	SN          string
	Type        OfferType
	CandidateID int64
	VacancyID   int64
	// 触发这份 offer 的考试，手动触发时为 0
	TestID      int64
	TemplateID  int64
	Content     string
	Status      OfferStatus
	SentAt      int64
	RespondedAt int64
}

type Template struct {
	ID   int64
	Name string
	// 语言标签，比如 en、ru
	Language string
	Content  string
	// Content 里允许出现的占位符名
	Variables []string
	Active    bool
}
