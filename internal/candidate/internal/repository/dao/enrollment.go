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

type EnrollmentDAO interface {
	Create(ctx context.Context, e Enrollment) (int64, error)
	// UpdateProgress 进度只增不减，学完之后不再变化
	UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error
	// Complete 把最近开始的一门课标记为已完成
	Complete(ctx context.Context, candidateID int64) error
	LatestByCandidate(ctx context.Context, candidateID int64) (Enrollment, error)
	FindByCandidates(ctx context.Context, candidateIDs []int64) ([]Enrollment, error)
}

var _ EnrollmentDAO = &GORMEnrollmentDAO{}

type GORMEnrollmentDAO struct {
	db *egorm.Component
}

func NewGORMEnrollmentDAO(db *egorm.Component) EnrollmentDAO {
	return &GORMEnrollmentDAO{db: db}
}

func (dao *GORMEnrollmentDAO) Create(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.StartedAt = now
	e.Ctime = now
	e.Utime = now
	err := dao.db.WithContext(ctx).Create(&e).Error
	return e.ID, err
}

func (dao *GORMEnrollmentDAO) UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error {
	// 条件里带上 progress <= ?，并发下进度也不会回退
	return dao.db.WithContext(ctx).Model(&Enrollment{}).
		Where("candidate_id = ? AND course_id = ? AND completed_at = 0 AND progress <= ?",
			candidateID, courseID, progress).
		Updates(map[string]any{
			"progress": progress,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMEnrollmentDAO) Complete(ctx context.Context, candidateID int64) error {
	latest, err := dao.LatestByCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Model(&Enrollment{}).
		Where("id = ? AND completed_at = 0", latest.ID).
		Updates(map[string]any{
			"progress":     100,
			"completed_at": now,
			"utime":        now,
		}).Error
}

func (dao *GORMEnrollmentDAO) LatestByCandidate(ctx context.Context, candidateID int64) (Enrollment, error) {
	var e Enrollment
	err := dao.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("started_at DESC").
		First(&e).Error
	return e, err
}

func (dao *GORMEnrollmentDAO) FindByCandidates(ctx context.Context, candidateIDs []int64) ([]Enrollment, error) {
	var res []Enrollment
	err := dao.db.WithContext(ctx).
		Where("candidate_id IN ?", candidateIDs).
		Order("started_at ASC").
		Find(&res).Error
	return res, err
}

type Enrollment struct {
	ID          int64 `gorm:"primaryKey,autoIncrement"`
	CandidateID int64 `gorm:"index:idx_candidate_id"`
	CourseID    int64 `gorm:"index:idx_course_id"`
	// 0-100
	Progress    int
	StartedAt   int64
	// 0 表示还没学完
	CompletedAt int64
	Ctime       int64
	Utime       int64
}

func (Enrollment) TableName() string {
	return "course_enrollments"
}
