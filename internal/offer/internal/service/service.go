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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer/internal/domain"
	"github.com/ecodeclub/talent/internal/offer/internal/event"
	"github.com/ecodeclub/talent/internal/offer/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrOfferNotFound = repository.ErrOfferNotFound
	// ErrOfferResponded 回复过的 offer 不能再改成相反的结果
	ErrOfferResponded = repository.ErrOfferResponded
	ErrUnauthorized   = errors.New("没有权限操作这份 offer")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/offer.mock.go -package=offermocks -typed=true Service
type Service interface {
	// Issue 候选人通过考试或者被手动判定通过之后发 offer。
	// 没有目标职位、已经有待回复的 offer 都是业务上的"无事可做"，静默成功
	Issue(ctx context.Context, candidateID, testID int64) error
	Accept(ctx context.Context, candidateID int64, sn string) error
	Decline(ctx context.Context, candidateID int64, sn string) error
	ListForCandidate(ctx context.Context, candidateID int64) ([]domain.Offer, error)

	SaveTemplate(ctx context.Context, t domain.Template) (int64, error)
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	// SaveGeneralOffer 绑定在岗位+考试上的通用 offer，发 offer 时直接克隆内容
	SaveGeneralOffer(ctx context.Context, o domain.Offer) (int64, error)
}

var _ Service = &service{}

type service struct {
	repo         repository.OfferRepository
	tplRepo      repository.TemplateRepository
	candidateSvc candidate.Service
	producer     event.OfferEventProducer
	// 模板变量的兜底值
	commission  string
	defaultCity string
	logger      *elog.Component
}

func NewService(repo repository.OfferRepository,
	tplRepo repository.TemplateRepository,
	candidateSvc candidate.Service,
	producer event.OfferEventProducer,
	commission, defaultCity string) Service {
	return &service{
		repo:         repo,
		tplRepo:      tplRepo,
		candidateSvc: candidateSvc,
		producer:     producer,
		commission:   commission,
		defaultCity:  defaultCity,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) Issue(ctx context.Context, candidateID, testID int64) error {
	c, err := s.candidateSvc.Detail(ctx, candidateID)
	if err != nil {
		return err
	}
	if c.VacancyID == 0 {
		s.logger.Info("候选人还没有目标职位，跳过发 offer",
			elog.Int64("candidateID", candidateID))
		return nil
	}
	_, err = s.repo.FindSent(ctx, candidateID)
	if err == nil {
		// 已经有一份待回复的 offer
		return nil
	}
	if !errors.Is(err, repository.ErrOfferNotFound) {
		return err
	}
	v, err := s.candidateSvc.Vacancy(ctx, c.VacancyID)
	if err != nil {
		return err
	}
	content, templateID := s.buildContent(ctx, c, v, testID)
	o := domain.Offer{
		SN:          shortuuid.New(),
		Type:        domain.OfferTypePersonal,
		CandidateID: candidateID,
		VacancyID:   v.ID,
		TestID:      testID,
		TemplateID:  templateID,
		Content:     content,
		Status:      domain.OfferStatusSent,
	}
	_, err = s.repo.Create(ctx, o)
	if errors.Is(err, repository.ErrDuplicateOffer) {
		// 并发触发，另一边已经发出去了
		return nil
	}
	if err != nil {
		return err
	}
	err = s.candidateSvc.Transition(ctx, candidateID, candidate.TransitionSendOffer)
	if err != nil && !errors.Is(err, candidate.ErrInvalidTransition) {
		return err
	}
	evt := event.OfferEvent{
		OfferSN:     o.SN,
		CandidateID: candidateID,
		Uid:         c.UID,
		VacancyID:   v.ID,
		Title:       "你收到了一份新 offer",
		Content:     content,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送 offer 通知事件失败",
			elog.String("sn", o.SN), elog.FieldErr(er))
	}
	return nil
}

// buildContent 优先克隆岗位+考试的通用 offer，其次渲染启用中的模板，最后兜底纯文本
func (s *service) buildContent(ctx context.Context,
	c candidate.Candidate, v candidate.Vacancy, testID int64) (string, int64) {
	if testID > 0 {
		general, err := s.repo.FindGeneral(ctx, testID, v.ID)
		if err == nil {
			return general.Content, general.TemplateID
		}
		if !errors.Is(err, repository.ErrOfferNotFound) {
			s.logger.Error("查询通用 offer 失败", elog.FieldErr(err))
		}
	}
	tpl, err := s.tplRepo.FindActive(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrOfferNotFound) {
			s.logger.Error("查询 offer 模板失败", elog.FieldErr(err))
		}
		return fmt.Sprintf("%s 你好，恭喜你通过了 %s 岗位的测评，请联系 HR 确认入职事宜。",
			c.Name, v.Title), 0
	}
	city := c.City
	if city == "" {
		city = v.City
	}
	if city == "" {
		city = s.defaultCity
	}
	commission := v.Commission
	if commission == "" {
		commission = s.commission
	}
	vars := map[string]string{
		"candidateName": c.Name,
		"vacancyTitle":  v.Title,
		"commission":    commission,
		"startDate":     time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		"city":          city,
	}
	return domain.Render(tpl.Content, vars), tpl.ID
}

func (s *service) Accept(ctx context.Context, candidateID int64, sn string) error {
	return s.respond(ctx, candidateID, sn,
		domain.OfferStatusAccepted, candidate.TransitionAcceptOffer)
}

func (s *service) Decline(ctx context.Context, candidateID int64, sn string) error {
	return s.respond(ctx, candidateID, sn,
		domain.OfferStatusDeclined, candidate.TransitionDeclineOffer)
}

func (s *service) respond(ctx context.Context, candidateID int64, sn string,
	target domain.OfferStatus, t candidate.Transition) error {
	o, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	if o.CandidateID != candidateID || o.Type != domain.OfferTypePersonal {
		return ErrUnauthorized
	}
	if o.Status == target {
		// 重复提交同一个回复，维持原结果
		return nil
	}
	if o.Status != domain.OfferStatusSent {
		return ErrOfferResponded
	}
	if err = s.repo.Respond(ctx, o.ID, target); err != nil {
		return err
	}
	err = s.candidateSvc.Transition(ctx, candidateID, t)
	if errors.Is(err, candidate.ErrInvalidTransition) {
		s.logger.Warn("offer 回复后候选人状态转移被拒绝",
			elog.Int64("candidateID", candidateID), elog.String("sn", sn))
		return nil
	}
	return err
}

func (s *service) ListForCandidate(ctx context.Context, candidateID int64) ([]domain.Offer, error) {
	return s.repo.FindByCandidate(ctx, candidateID)
}

func (s *service) SaveTemplate(ctx context.Context, t domain.Template) (int64, error) {
	return s.tplRepo.Save(ctx, t)
}

func (s *service) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.tplRepo.List(ctx)
}

func (s *service) SaveGeneralOffer(ctx context.Context, o domain.Offer) (int64, error) {
	o.SN = shortuuid.New()
	o.Type = domain.OfferTypeGeneral
	o.Status = domain.OfferStatusSent
	o.CandidateID = 0
	return s.repo.Create(ctx, o)
}
