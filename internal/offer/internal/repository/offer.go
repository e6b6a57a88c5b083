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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/talent/internal/offer/internal/domain"
	"github.com/ecodeclub/talent/internal/offer/internal/repository/dao"
)

var (
	ErrOfferNotFound  = dao.ErrRecordNotFound
	ErrDuplicateOffer = dao.ErrDuplicateOffer
	ErrOfferResponded = dao.ErrOfferResponded
)

type OfferRepository interface {
	Create(ctx context.Context, o domain.Offer) (int64, error)
	FindBySN(ctx context.Context, sn string) (domain.Offer, error)
	FindSent(ctx context.Context, candidateID int64) (domain.Offer, error)
	FindByCandidate(ctx context.Context, candidateID int64) ([]domain.Offer, error)
	FindGeneral(ctx context.Context, testID, vacancyID int64) (domain.Offer, error)
	Respond(ctx context.Context, id int64, status domain.OfferStatus) error
}

var _ OfferRepository = &offerRepository{}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (repo *offerRepository) Create(ctx context.Context, o domain.Offer) (int64, error) {
	return repo.dao.Create(ctx, dao.Offer{
		SN:          o.SN,
		Type:        string(o.Type),
		CandidateID: o.CandidateID,
		VacancyID:   o.VacancyID,
		TestID:      o.TestID,
		TemplateID:  o.TemplateID,
		Content:     o.Content,
		Status:      o.Status.String(),
	})
}

func (repo *offerRepository) FindBySN(ctx context.Context, sn string) (domain.Offer, error) {
	o, err := repo.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Offer{}, err
	}
	return repo.toDomain(o), nil
}

func (repo *offerRepository) FindSent(ctx context.Context, candidateID int64) (domain.Offer, error) {
	o, err := repo.dao.FindSent(ctx, candidateID)
	if err != nil {
		return domain.Offer{}, err
	}
	return repo.toDomain(o), nil
}

func (repo *offerRepository) FindByCandidate(ctx context.Context, candidateID int64) ([]domain.Offer, error) {
	offers, err := repo.dao.FindByCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(offers, func(idx int, o dao.Offer) domain.Offer {
		return repo.toDomain(o)
	}), nil
}

func (repo *offerRepository) FindGeneral(ctx context.Context, testID, vacancyID int64) (domain.Offer, error) {
	o, err := repo.dao.FindGeneral(ctx, testID, vacancyID)
	if err != nil {
		return domain.Offer{}, err
	}
	return repo.toDomain(o), nil
}

func (repo *offerRepository) Respond(ctx context.Context, id int64, status domain.OfferStatus) error {
	return repo.dao.Respond(ctx, id, status.String())
}

func (repo *offerRepository) toDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:          o.ID,
		SN:          o.SN,
		Type:        domain.OfferType(o.Type),
		CandidateID: o.CandidateID,
		VacancyID:   o.VacancyID,
		TestID:      o.TestID,
		TemplateID:  o.TemplateID,
		Content:     o.Content,
		Status:      domain.OfferStatus(o.Status),
		SentAt:      o.SentAt,
		RespondedAt: o.RespondedAt,
	}
}
