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
	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/errs"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 候选人自己操作的接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/candidate")
	g.POST("/profile", ginx.S(h.Profile))
	g.POST("/profile/save", ginx.BS[SaveProfileReq](h.Save))
	g.POST("/course/start", ginx.BS[StartCourseReq](h.StartCourse))
	g.POST("/course/progress", ginx.BS[ProgressReq](h.UpdateProgress))
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrCandidateNotFound):
		return ginx.Result{
			Code: errs.CandidateNotFound.Code,
			Msg:  errs.CandidateNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: newCandidateVO(c),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Save(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveProfile(ctx, domain.Candidate{
		UID:       sess.Claims().Uid,
		Name:      req.Name,
		Phone:     req.Phone,
		City:      req.City,
		VacancyID: req.VacancyID,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) StartCourse(ctx *ginx.Context, req StartCourseReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.StartCourse(ctx, c.ID, req.CourseID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) UpdateProgress(ctx *ginx.Context, req ProgressReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.UpdateProgress(ctx, c.ID, req.CourseID, req.Progress)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
