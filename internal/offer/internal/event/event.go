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

package event

const OfferEvents = "offer_events"

// OfferEvent 每创建一份 personal offer 发一条，通知模块消费
type OfferEvent struct {
	OfferSN     string `json:"offerSN"`
	CandidateID int64  `json:"candidateID"`
	Uid         int64  `json:"uid"`
	VacancyID   int64  `json:"vacancyID"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}
