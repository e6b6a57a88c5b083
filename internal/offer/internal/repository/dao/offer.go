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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateOffer 唯一索引兜底，并发触发时只有一个 Create 会成功
	ErrDuplicateOffer = errors.New("候选人已经有一份待回复的 offer")
	// ErrOfferResponded 条件更新没命中，offer 已经有回复了
	ErrOfferResponded = errors.New("offer 已经有回复了")
)

const (
	offerStatusSent  = "sent"
	offerTypeGeneral = "general"
)

type OfferDAO interface {
	Create(ctx context.Context, o Offer) (int64, error)
	FindBySN(ctx context.Context, sn string) (Offer, error)
	// FindSent 候选人当前待回复的 personal offer
	FindSent(ctx context.Context, candidateID int64) (Offer, error)
	FindByCandidate(ctx context.Context, candidateID int64) ([]Offer, error)
	// FindGeneral 岗位+考试对应的通用 offer
	FindGeneral(ctx context.Context, testID, vacancyID int64) (Offer, error)
	// Respond 条件更新，只有 sent 状态能改，同时清掉唯一索引占位
	Respond(ctx context.Context, id int64, status string) error
}

var _ OfferDAO = &GORMOfferDAO{}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (dao *GORMOfferDAO) Create(ctx context.Context, o Offer) (int64, error) {
	now := time.Now().UnixMilli()
	o.SentAt = now
	o.Ctime = now
	o.Utime = now
	if o.Status == offerStatusSent && o.Type != offerTypeGeneral {
		// MySQL 的唯一索引不管 NULL，所以只有待回复的 personal offer 占位
		o.SentFlag = sql.Null[bool]{V: true, Valid: true}
	}
	err := dao.db.WithContext(ctx).Create(&o).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, ErrDuplicateOffer
			}
		}
		return 0, err
	}
	return o.ID, nil
}

func (dao *GORMOfferDAO) FindBySN(ctx context.Context, sn string) (Offer, error) {
	var o Offer
	err := dao.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (dao *GORMOfferDAO) FindSent(ctx context.Context, candidateID int64) (Offer, error) {
	var o Offer
	err := dao.db.WithContext(ctx).
		Where("candidate_id = ? AND status = ?", candidateID, offerStatusSent).
		First(&o).Error
	return o, err
}

func (dao *GORMOfferDAO) FindByCandidate(ctx context.Context, candidateID int64) ([]Offer, error) {
	var res []Offer
	err := dao.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("sent_at DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) FindGeneral(ctx context.Context, testID, vacancyID int64) (Offer, error) {
	var o Offer
	err := dao.db.WithContext(ctx).
		Where("type = ? AND test_id = ? AND vacancy_id = ?", offerTypeGeneral, testID, vacancyID).
		Order("utime DESC").
		First(&o).Error
	return o, err
}

func (dao *GORMOfferDAO) Respond(ctx context.Context, id int64, status string) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND status = ?", id, offerStatusSent).
		Updates(map[string]any{
			"status":       status,
			"responded_at": now,
			"sent_flag":    nil,
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOfferResponded
	}
	return nil
}

type Offer struct {
	ID int64  `gorm:"primaryKey,autoIncrement"`
	SN string `gorm:"type:varchar(64);uniqueIndex:uniq_offer_sn"`
	// personal 或者 general
	Type        string `gorm:"type:varchar(16)"`
	CandidateID int64  `gorm:"index:idx_candidate_id;uniqueIndex:uniq_candidate_sent"`
	VacancyID   int64  `gorm:"index:idx_vacancy_id"`
	TestID      int64
	TemplateID  int64
	Content     string `gorm:"type:text"`
	Status      string `gorm:"type:varchar(16)"`
	// 待回复时为 true，回复后或 general offer 为 NULL
	SentFlag    sql.Null[bool] `gorm:"uniqueIndex:uniq_candidate_sent"`
	SentAt      int64
	RespondedAt int64
	Ctime       int64
	Utime       int64
}

func (Offer) TableName() string {
	return "offers"
}
