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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/offer/internal/domain"
	"github.com/ecodeclub/talent/internal/offer/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler HR 维护模板和通用 offer 的接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/offer/admin")
	g.POST("/template/save", ginx.S(h.Permission), ginx.B[SaveTemplateReq](h.SaveTemplate))
	g.POST("/template/list", ginx.S(h.Permission), ginx.W(h.ListTemplates))
	g.POST("/general/save", ginx.S(h.Permission), ginx.B[SaveGeneralOfferReq](h.SaveGeneralOffer))
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("hr").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问 HR 后台 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) SaveTemplate(ctx *ginx.Context, req SaveTemplateReq) (ginx.Result, error) {
	id, err := h.svc.SaveTemplate(ctx, req.Template.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) ListTemplates(ctx *ginx.Context) (ginx.Result, error) {
	data, err := h.svc.ListTemplates(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Template) TemplateVO {
			return newTemplateVO(src)
		}),
	}, nil
}

func (h *AdminHandler) SaveGeneralOffer(ctx *ginx.Context, req SaveGeneralOfferReq) (ginx.Result, error) {
	id, err := h.svc.SaveGeneralOffer(ctx, domain.Offer{
		VacancyID:  req.VacancyID,
		TestID:     req.TestID,
		TemplateID: req.TemplateID,
		Content:    req.Content,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}
