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
	"gorm.io/gorm"
)

// ErrAttemptFinalized 条件更新没命中，这次考试已出最终结果
var ErrAttemptFinalized = errors.New("考试已出最终结果")

const attemptStatusCompleted = "completed"

type AttemptDAO interface {
	Create(ctx context.Context, a Attempt) (int64, error)
	FindByID(ctx context.Context, id int64) (Attempt, error)
	FindLatest(ctx context.Context, candidateID, bid int64) (Attempt, error)
	FindLatestForCandidates(ctx context.Context, candidateIDs []int64) ([]Attempt, error)
	FindAnswers(ctx context.Context, attemptID int64) ([]AttemptAnswer, error)
	// Finalize 单条带状态条件的更新语句，并发提交只会有一个成功。
	// 已经 completed 的考试返回 ErrAttemptFinalized
	Finalize(ctx context.Context, id int64, status string, score sql.Null[int64], answers []AttemptAnswer) error
}

var _ AttemptDAO = &GORMAttemptDAO{}

type GORMAttemptDAO struct {
	db *egorm.Component
}

func NewGORMAttemptDAO(db *egorm.Component) AttemptDAO {
	return &GORMAttemptDAO{db: db}
}

func (dao *GORMAttemptDAO) Create(ctx context.Context, a Attempt) (int64, error) {
	now := time.Now().UnixMilli()
	a.StartedAt = now
	a.Ctime = now
	a.Utime = now
	err := dao.db.WithContext(ctx).Create(&a).Error
	return a.ID, err
}

func (dao *GORMAttemptDAO) FindByID(ctx context.Context, id int64) (Attempt, error) {
	var a Attempt
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (dao *GORMAttemptDAO) FindLatest(ctx context.Context, candidateID, bid int64) (Attempt, error) {
	var a Attempt
	err := dao.db.WithContext(ctx).
		Where("candidate_id = ? AND bid = ?", candidateID, bid).
		Order("started_at DESC").
		First(&a).Error
	return a, err
}

func (dao *GORMAttemptDAO) FindLatestForCandidates(ctx context.Context, candidateIDs []int64) ([]Attempt, error) {
	var res []Attempt
	err := dao.db.WithContext(ctx).
		Where("candidate_id IN ?", candidateIDs).
		Order("started_at ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMAttemptDAO) FindAnswers(ctx context.Context, attemptID int64) ([]AttemptAnswer, error) {
	var res []AttemptAnswer
	err := dao.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("question_id ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMAttemptDAO) Finalize(ctx context.Context, id int64, status string, score sql.Null[int64], answers []AttemptAnswer) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status": status,
			"score":  score,
			"utime":  now,
		}
		if status == attemptStatusCompleted {
			updates["completed_at"] = now
		}
		res := tx.Model(&Attempt{}).
			Where("id = ? AND status <> ?", id, attemptStatusCompleted).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAttemptFinalized
		}
		// 答案全量替换
		if err := tx.Where("attempt_id = ?", id).Delete(&AttemptAnswer{}).Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		for i := range answers {
			answers[i].AttemptID = id
			answers[i].Ctime = now
			answers[i].Utime = now
		}
		return tx.Create(&answers).Error
	})
}

type Attempt struct {
	ID          int64  `gorm:"primaryKey,autoIncrement"`
	CandidateID int64  `gorm:"index:idx_candidate_id"`
	Bid         int64  `gorm:"index:idx_bid"`
	Status      string `gorm:"type:varchar(32)"`
	// NULL 表示还没有最终成绩
	Score       sql.Null[int64]
	StartedAt   int64
	CompletedAt int64
	Ctime       int64
	Utime       int64
}

func (Attempt) TableName() string {
	return "test_attempts"
}

type AttemptAnswer struct {
	ID         int64  `gorm:"primaryKey,autoIncrement"`
	AttemptID  int64  `gorm:"index:idx_attempt_id"`
	QuestionID int64
	Raw        string `gorm:"type:text"`
	// 开放题人工批改之前是 NULL
	Correct sql.Null[bool]
	Points  int
	Ctime   int64
	Utime   int64
}

func (AttemptAnswer) TableName() string {
	return "test_attempt_answers"
}
