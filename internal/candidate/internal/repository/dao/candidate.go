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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 条件更新没命中，当前状态不允许这次转移
	ErrStatusConflict = errors.New("候选人状态不满足转移条件")
)

type CandidateDAO interface {
	Save(ctx context.Context, c Candidate) (int64, error)
	FindByID(ctx context.Context, id int64) (Candidate, error)
	FindByUID(ctx context.Context, uid int64) (Candidate, error)
	// UpdateStatus 条件更新：只有当前状态在 from 里面才会生效
	UpdateStatus(ctx context.Context, id int64, from []string, to string) error
	List(ctx context.Context, keyword string, startAt, endAt int64) ([]Candidate, error)
}

var _ CandidateDAO = &GORMCandidateDAO{}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) CandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (dao *GORMCandidateDAO) Save(ctx context.Context, c Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "city", "vacancy_id", "utime",
		}),
	}).Create(&c).Error
	return c.ID, err
}

func (dao *GORMCandidateDAO) FindByID(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (dao *GORMCandidateDAO) FindByUID(ctx context.Context, uid int64) (Candidate, error) {
	var c Candidate
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&c).Error
	return c, err
}

func (dao *GORMCandidateDAO) UpdateStatus(ctx context.Context, id int64, from []string, to string) error {
	res := dao.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (dao *GORMCandidateDAO) List(ctx context.Context, keyword string, startAt, endAt int64) ([]Candidate, error) {
	var res []Candidate
	db := dao.db.WithContext(ctx).Model(&Candidate{})
	if keyword != "" {
		db = db.Where("name LIKE ? OR phone LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if startAt > 0 {
		db = db.Where("ctime >= ?", startAt)
	}
	if endAt > 0 {
		db = db.Where("ctime <= ?", endAt)
	}
	err := db.Order("ctime DESC").Find(&res).Error
	return res, err
}

type Candidate struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	UID   int64  `gorm:"uniqueIndex:idx_uid;comment:关联的用户ID"`
	Name  string `gorm:"type:varchar(256)"`
	Phone string `gorm:"type:varchar(32)"`
	City  string `gorm:"type:varchar(128)"`
	// 0 表示还没有选定职位
	VacancyID int64  `gorm:"index:idx_vacancy_id"`
	Status    string `gorm:"type:varchar(32);index:idx_status"`
	Ctime     int64
	Utime     int64
}

func (Candidate) TableName() string {
	return "candidates"
}
