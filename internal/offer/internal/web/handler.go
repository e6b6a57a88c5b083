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
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer/internal/domain"
	"github.com/ecodeclub/talent/internal/offer/internal/errs"
	"github.com/ecodeclub/talent/internal/offer/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 候选人回复 offer 的接口
type Handler struct {
	svc          service.Service
	candidateSvc candidate.Service
}

func NewHandler(svc service.Service, candidateSvc candidate.Service) *Handler {
	return &Handler{svc: svc, candidateSvc: candidateSvc}
}

func (h *Handler) MemberRoutes(server *gin.Engine) {
	g := server.Group("/offer")
	g.POST("/list", ginx.S(h.List))
	g.POST("/accept", ginx.BS[RespondReq](h.Accept))
	g.POST("/decline", ginx.BS[RespondReq](h.Decline))
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.candidateSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	offers, err := h.svc.ListForCandidate(ctx, c.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(offers, func(idx int, src domain.Offer) OfferVO {
			return newOfferVO(src)
		}),
	}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req RespondReq, sess session.Session) (ginx.Result, error) {
	return h.respond(ctx, req.SN, sess, h.svc.Accept)
}

func (h *Handler) Decline(ctx *ginx.Context, req RespondReq, sess session.Session) (ginx.Result, error) {
	return h.respond(ctx, req.SN, sess, h.svc.Decline)
}

func (h *Handler) respond(ctx *ginx.Context, sn string, sess session.Session,
	action func(ctx context.Context, candidateID int64, sn string) error) (ginx.Result, error) {
	c, err := h.candidateSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	err = action(ctx, c.ID, sn)
	switch {
	case errors.Is(err, service.ErrOfferNotFound):
		return ginx.Result{
			Code: errs.OfferNotFound.Code,
			Msg:  errs.OfferNotFound.Msg,
		}, nil
	case errors.Is(err, service.ErrOfferResponded):
		return ginx.Result{
			Code: errs.OfferResponded.Code,
			Msg:  errs.OfferResponded.Msg,
		}, nil
	case errors.Is(err, service.ErrUnauthorized):
		return ginx.Result{
			Code: errs.OfferUnauthorized.Code,
			Msg:  errs.OfferUnauthorized.Msg,
		}, nil
	case err == nil:
		return ginx.Result{}, nil
	default:
		return systemErrorResult, err
	}
}
