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
	"gorm.io/gorm/clause"
)

type TemplateDAO interface {
	Save(ctx context.Context, t Template) (int64, error)
	FindByID(ctx context.Context, id int64) (Template, error)
	// FindActive 当前启用的模板里最新的一个
	FindActive(ctx context.Context) (Template, error)
	List(ctx context.Context) ([]Template, error)
}

var _ TemplateDAO = &GORMTemplateDAO{}

type GORMTemplateDAO struct {
	db *egorm.Component
}

func NewGORMTemplateDAO(db *egorm.Component) TemplateDAO {
	return &GORMTemplateDAO{db: db}
}

func (dao *GORMTemplateDAO) Save(ctx context.Context, t Template) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "language", "content", "variables", "active", "utime",
		}),
	}).Create(&t).Error
	return t.ID, err
}

func (dao *GORMTemplateDAO) FindByID(ctx context.Context, id int64) (Template, error) {
	var t Template
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	return t, err
}

func (dao *GORMTemplateDAO) FindActive(ctx context.Context) (Template, error) {
	var t Template
	err := dao.db.WithContext(ctx).
		Where("active = ?", true).
		Order("utime DESC").
		First(&t).Error
	return t, err
}

func (dao *GORMTemplateDAO) List(ctx context.Context) ([]Template, error) {
	var res []Template
	err := dao.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

type Template struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256)"`
	Language string `gorm:"type:varchar(32)"`
	Content  string `gorm:"type:text"`
	// 模板声明的占位符名
	Variables sqlx.JsonColumn[[]string] `gorm:"type:varchar(2048)"`
	Active    bool
	Ctime     int64
	Utime     int64
}

func (Template) TableName() string {
	return "offer_templates"
}
