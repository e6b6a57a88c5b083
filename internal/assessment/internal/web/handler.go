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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment/internal/errs"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/gin-gonic/gin"
)

// Handler 候选人考试的接口
type Handler struct {
	svc          service.Service
	candidateSvc candidate.Service
}

func NewHandler(svc service.Service, candidateSvc candidate.Service) *Handler {
	return &Handler{svc: svc, candidateSvc: candidateSvc}
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/test")
	g.POST("/start", ginx.BS[StartReq](h.Start))
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	c, err := h.candidateSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return h.profileErrorResult(err)
	}
	id, err := h.svc.Start(ctx, c.ID, req.TestID)
	switch {
	case errors.Is(err, service.ErrTestNotFound):
		return ginx.Result{
			Code: errs.TestNotFound.Code,
			Msg:  errs.TestNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: id,
		}, nil
	default:
		return systemErrorResult, err
	}
}

// profileErrorResult 没档案的登录用户不是候选人，给出明确提示
func (h *Handler) profileErrorResult(err error) (ginx.Result, error) {
	if errors.Is(err, candidate.ErrCandidateNotFound) {
		return ginx.Result{
			Code: errs.CandidateNotFound.Code,
			Msg:  errs.CandidateNotFound.Msg,
		}, nil
	}
	return systemErrorResult, err
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	c, err := h.candidateSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return h.profileErrorResult(err)
	}
	res, err := h.svc.Submit(ctx, c.ID, req.TestID, req.Answers)
	switch {
	case errors.Is(err, service.ErrTestNotFound):
		return ginx.Result{
			Code: errs.TestNotFound.Code,
			Msg:  errs.TestNotFound.Msg,
		}, nil
	case errors.Is(err, service.ErrAttemptFinalized):
		return ginx.Result{
			Code: errs.AttemptFinalized.Code,
			Msg:  errs.AttemptFinalized.Msg,
		}, nil
	case errors.Is(err, service.ErrUnknownQuestion):
		return ginx.Result{
			Code: errs.InvalidAnswer.Code,
			Msg:  errs.InvalidAnswer.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: SubmitResp{
				Score:       res.Score,
				NeedsReview: res.NeedsReview,
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}
