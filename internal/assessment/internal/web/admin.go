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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment/internal/errs"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler HR 维护测评和批改开放题的接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/test/admin")
	g.POST("/blueprint/save", ginx.S(h.Permission), ginx.B[SaveBlueprintReq](h.SaveBlueprint))
	g.POST("/blueprint/detail", ginx.S(h.Permission), ginx.B[BlueprintDetailReq](h.BlueprintDetail))
	g.POST("/review", ginx.S(h.Permission), ginx.B[ReviewReq](h.Review))
	g.POST("/course/complete", ginx.S(h.Permission), ginx.B[CompleteCourseReq](h.CompleteCourse))
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("hr").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问 HR 后台 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) SaveBlueprint(ctx *ginx.Context, req SaveBlueprintReq) (ginx.Result, error) {
	id, err := h.svc.SaveBlueprint(ctx, req.Blueprint.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) BlueprintDetail(ctx *ginx.Context, req BlueprintDetailReq) (ginx.Result, error) {
	bp, err := h.svc.BlueprintDetail(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrTestNotFound):
		return ginx.Result{
			Code: errs.TestNotFound.Code,
			Msg:  errs.TestNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: newBlueprintVO(bp),
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) Review(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	res, err := h.svc.Review(ctx, req.AttemptID, req.Awarded)
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
	case errors.Is(err, service.ErrAttemptNotReviewable):
		return ginx.Result{
			Code: errs.AttemptNotReviewable.Code,
			Msg:  errs.AttemptNotReviewable.Msg,
		}, nil
	case errors.Is(err, service.ErrUnknownQuestion):
		return ginx.Result{
			Code: errs.InvalidAnswer.Code,
			Msg:  errs.InvalidAnswer.Msg,
		}, nil
	case err == nil:
		return ginx.Result{
			Data: SubmitResp{
				Score: res.Score,
			},
		}, nil
	default:
		return systemErrorResult, err
	}
}

func (h *AdminHandler) CompleteCourse(ctx *ginx.Context, req CompleteCourseReq) (ginx.Result, error) {
	err := h.svc.CompleteCourse(ctx, req.CandidateID)
	switch {
	case errors.Is(err, service.ErrTestNotFound):
		return ginx.Result{
			Code: errs.TestNotFound.Code,
			Msg:  errs.TestNotFound.Msg,
		}, nil
	case err == nil:
		return ginx.Result{}, nil
	default:
		return systemErrorResult, err
	}
}
