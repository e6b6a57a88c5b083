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

package assessment

import (
	"github.com/ecodeclub/talent/internal/assessment/internal/domain"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service

	Blueprint      = domain.Blueprint
	Question       = domain.Question
	Attempt        = domain.Attempt
	AttemptStatus  = domain.AttemptStatus
	AttemptSummary = domain.AttemptSummary
)

const (
	AttemptStatusPending       = domain.AttemptStatusPending
	AttemptStatusInProgress    = domain.AttemptStatusInProgress
	AttemptStatusPendingReview = domain.AttemptStatusPendingReview
	AttemptStatusCompleted     = domain.AttemptStatusCompleted
)

var (
	ErrAttemptFinalized     = service.ErrAttemptFinalized
	ErrAttemptNotReviewable = service.ErrAttemptNotReviewable
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
