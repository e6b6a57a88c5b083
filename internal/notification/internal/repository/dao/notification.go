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
)

type NotificationDAO interface {
	Create(ctx context.Context, n Notification) (int64, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error)
}

var _ NotificationDAO = &GORMNotificationDAO{}

type GORMNotificationDAO struct {
	db *egorm.Component
}

func NewGORMNotificationDAO(db *egorm.Component) NotificationDAO {
	return &GORMNotificationDAO{db: db}
}

func (dao *GORMNotificationDAO) Create(ctx context.Context, n Notification) (int64, error) {
	now := time.Now().UnixMilli()
	n.Ctime = now
	n.Utime = now
	err := dao.db.WithContext(ctx).Create(&n).Error
	return n.ID, err
}

func (dao *GORMNotificationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Notification, error) {
	var res []Notification
	err := dao.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Notification{})
}

type Notification struct {
	ID        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"index:idx_uid"`
	Title     string `gorm:"type:varchar(256)"`
	Content   string `gorm:"type:text"`
	RelatedSN string `gorm:"type:varchar(64)"`
	Ctime     int64
	Utime     int64
}

func (Notification) TableName() string {
	return "notifications"
}
