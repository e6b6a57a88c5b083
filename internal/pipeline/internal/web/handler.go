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
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/pipeline/internal/domain"
	"github.com/ecodeclub/talent/internal/pipeline/internal/errs"
	"github.com/ecodeclub/talent/internal/pipeline/internal/service"
	"github.com/gin-gonic/gin"
)

type BoardReq struct {
	Keyword string `json:"keyword"`
	StartAt int64  `json:"startAt"`
	EndAt   int64  `json:"endAt"`
}

type BoardResp struct {
	Total   int             `json:"total"`
	Columns []StageColumnVO `json:"columns"`
}

type StageColumnVO struct {
	Stage      string        `json:"stage"`
	Candidates []CandidateVO `json:"candidates"`
	Count      int           `json:"count"`
	Percent    float64       `json:"percent"`
}

type CandidateVO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Status string `json:"status"`
}

// AdminHandler 招聘看板，只有 HR 能看
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pipeline")
	g.POST("/board", ginx.S(h.Permission), ginx.B[BoardReq](h.Board))
}

func (h *AdminHandler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("hr").StringOrDefault("") != "true" {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问 HR 后台 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *AdminHandler) Board(ctx *ginx.Context, req BoardReq) (ginx.Result, error) {
	board, err := h.svc.Board(ctx, candidate.Filter{
		Keyword: req.Keyword,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Data: BoardResp{
			Total: board.Total,
			Columns: slice.Map(board.Columns, func(idx int, col domain.StageColumn) StageColumnVO {
				return StageColumnVO{
					Stage: col.Stage.String(),
					Candidates: slice.Map(col.Candidates, func(idx int, c candidate.Candidate) CandidateVO {
						return CandidateVO{
							ID:     c.ID,
							Name:   c.Name,
							City:   c.City,
							Status: c.Status.String(),
						}
					}),
					Count:   col.Count,
					Percent: col.Percent,
				}
			}),
		},
	}, nil
}
