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

package candidate

import (
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/ecodeclub/talent/internal/candidate/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service

	Candidate  = domain.Candidate
	Enrollment = domain.Enrollment
	Vacancy    = domain.Vacancy
	Filter     = domain.Filter
	Status     = domain.Status
	Transition = domain.Transition
)

const (
	StatusRegistered       = domain.StatusRegistered
	StatusProfileCompleted = domain.StatusProfileCompleted
	StatusInCourse         = domain.StatusInCourse
	StatusTestCompleted    = domain.StatusTestCompleted
	StatusOfferSent        = domain.StatusOfferSent
	StatusOfferAccepted    = domain.StatusOfferAccepted
	StatusOfferDeclined    = domain.StatusOfferDeclined
	StatusHired            = domain.StatusHired
	StatusRejected         = domain.StatusRejected

	TransitionStartCourse  = domain.TransitionStartCourse
	TransitionCompleteTest = domain.TransitionCompleteTest
	TransitionSendOffer    = domain.TransitionSendOffer
	TransitionAcceptOffer  = domain.TransitionAcceptOffer
	TransitionDeclineOffer = domain.TransitionDeclineOffer
	TransitionHire         = domain.TransitionHire
	TransitionReject       = domain.TransitionReject
)

var (
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrCandidateNotFound = service.ErrCandidateNotFound
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
