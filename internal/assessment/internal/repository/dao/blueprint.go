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
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type BlueprintDAO interface {
	// Save 整卷保存，题目全量替换
	Save(ctx context.Context, bp Blueprint, questions []Question) (int64, error)
	FindByID(ctx context.Context, id int64) (Blueprint, []Question, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Blueprint, error)
}

var _ BlueprintDAO = &GORMBlueprintDAO{}

type GORMBlueprintDAO struct {
	db *egorm.Component
}

func NewGORMBlueprintDAO(db *egorm.Component) BlueprintDAO {
	return &GORMBlueprintDAO{db: db}
}

func (dao *GORMBlueprintDAO) Save(ctx context.Context, bp Blueprint, questions []Question) (int64, error) {
	now := time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bp.Ctime = now
		bp.Utime = now
		if err := tx.Save(&bp).Error; err != nil {
			return err
		}
		if err := tx.Where("bid = ?", bp.ID).Delete(&Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].Bid = bp.ID
			questions[i].Ctime = now
			questions[i].Utime = now
		}
		return tx.Create(&questions).Error
	})
	return bp.ID, err
}

func (dao *GORMBlueprintDAO) FindByID(ctx context.Context, id int64) (Blueprint, []Question, error) {
	var bp Blueprint
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&bp).Error
	if err != nil {
		return Blueprint{}, nil, err
	}
	var questions []Question
	err = dao.db.WithContext(ctx).Where("bid = ?", id).Order("id ASC").Find(&questions).Error
	return bp, questions, err
}

func (dao *GORMBlueprintDAO) FindByIDs(ctx context.Context, ids []int64) ([]Blueprint, error) {
	var res []Blueprint
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

type Blueprint struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Title string `gorm:"type:varchar(512)"`
	// 0-100
	PassingScore int
	// 分钟，0 表示不限时
	TimeLimit int
	Ctime     int64
	Utime     int64
}

func (Blueprint) TableName() string {
	return "test_blueprints"
}

type Question struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Bid   int64  `gorm:"index:idx_bid"`
	Type  string `gorm:"type:varchar(32)"`
	Title string `gorm:"type:varchar(1024)"`
	// 选择题的候选项
	Options sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	// 单选是选项，多选是 JSON 数组，开放题为空
	CorrectAnswer string `gorm:"type:varchar(2048)"`
	Points        int
	Ctime         int64
	Utime         int64
}

func (Question) TableName() string {
	return "test_questions"
}
