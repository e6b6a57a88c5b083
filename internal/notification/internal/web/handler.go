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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/errs"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gin-gonic/gin"
)

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type NotificationVO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	RelatedSN string `json:"relatedSn"`
	Ctime     int64  `json:"ctime"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/notification")
	g.POST("/list", ginx.BS[ListReq](h.List))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	data, err := h.svc.ListForUser(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, n domain.Notification) NotificationVO {
			return NotificationVO{
				ID:        n.ID,
				Title:     n.Title,
				Content:   n.Content,
				RelatedSN: n.RelatedSN,
				Ctime:     n.Ctime,
			}
		}),
	}, nil
}
