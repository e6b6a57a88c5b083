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

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type VacancyDAO interface {
	Save(ctx context.Context, v Vacancy) (int64, error)
	FindByID(ctx context.Context, id int64) (Vacancy, error)
	List(ctx context.Context) ([]Vacancy, error)
}

var _ VacancyDAO = &GORMVacancyDAO{}

type GORMVacancyDAO struct {
	db *egorm.Component
}

func NewGORMVacancyDAO(db *egorm.Component) VacancyDAO {
	return &GORMVacancyDAO{db: db}
}

func (dao *GORMVacancyDAO) Save(ctx context.Context, v Vacancy) (int64, error) {
	now := time.Now().UnixMilli()
	v.Ctime = now
	v.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "city", "test_id", "commission", "utime",
		}),
	}).Create(&v).Error
	return v.ID, err
}

func (dao *GORMVacancyDAO) FindByID(ctx context.Context, id int64) (Vacancy, error) {
	var v Vacancy
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&v).Error
	return v, err
}

func (dao *GORMVacancyDAO) List(ctx context.Context) ([]Vacancy, error) {
	var res []Vacancy
	err := dao.db.WithContext(ctx).Order("id DESC").Find(&res).Error
	return res, err
}

type Vacancy struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Title string `gorm:"type:varchar(256)"`
	City  string `gorm:"type:varchar(128)"`
	// 该职位配置的测评，0 表示没有配置
	TestID     int64
	Commission string `gorm:"type:varchar(64)"`
	Ctime      int64
	Utime      int64
}

func (Vacancy) TableName() string {
	return "vacancies"
}
