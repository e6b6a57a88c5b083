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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/errs"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler HR 后台的接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidate/admin")
	g.POST("/list", ginx.S(h.Permission), ginx.B[ListReq](h.List))
	g.POST("/reject", ginx.S(h.Permission), ginx.B[TransitionReq](h.Reject))
	g.POST("/hire", ginx.S(h.Permission), ginx.B[TransitionReq](h.Hire))
	g.POST("/vacancy/save", ginx.S(h.Permission), ginx.B[SaveVacancyReq](h.SaveVacancy))
	g.POST("/vacancy/list", ginx.S(h.Permission), ginx.B[ListReq](h.ListVacancies))
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("hr").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问 HR 后台 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, err := h.svc.List(ctx, domain.Filter{
		Keyword: req.Keyword,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Candidate) CandidateVO {
			return newCandidateVO(src)
		}),
	}, nil
}

// Reject 把候选人淘汰出流程
func (h *AdminHandler) Reject(ctx *ginx.Context, req TransitionReq) (ginx.Result, error) {
	return h.transition(ctx, req.CandidateID, domain.TransitionReject)
}

// Hire 接受 offer 之后正式录用
func (h *AdminHandler) Hire(ctx *ginx.Context, req TransitionReq) (ginx.Result, error) {
	return h.transition(ctx, req.CandidateID, domain.TransitionHire)
}

func (h *AdminHandler) transition(ctx *ginx.Context, candidateID int64, t domain.Transition) (ginx.Result, error) {
	err := h.svc.Transition(ctx, candidateID, t)
	switch {
	// 不存在的候选人在条件更新里同样命中不了任何行
	case errors.Is(err, service.ErrInvalidTransition):
		return ginx.Result{
			Code: errs.InvalidTransition.Code,
			Msg:  errs.InvalidTransition.Msg,
		}, nil
	case err == nil:
		return ginx.Result{}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) SaveVacancy(ctx *ginx.Context, req SaveVacancyReq) (ginx.Result, error) {
	id, err := h.svc.SaveVacancy(ctx, req.Vacancy.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) ListVacancies(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	data, err := h.svc.ListVacancies(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Vacancy) VacancyVO {
			return newVacancyVO(src)
		}),
	}, nil
}
