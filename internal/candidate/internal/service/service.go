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

	"github.com/ecodeclub/talent/internal/candidate/internal/domain"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository"
)

var (
	ErrCandidateNotFound = repository.ErrCandidateNotFound
	ErrInvalidTransition = domain.ErrInvalidTransition
)

//go:generate mockgen -source=./service.go -destination=../../mocks/candidate.mock.go -package=candidatemocks -typed=true Service
type Service interface {
	// Profile 按登录用户查档案
	Profile(ctx context.Context, uid int64) (domain.Candidate, error)
	SaveProfile(ctx context.Context, c domain.Candidate) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Candidate, error)
	// Transition 执行一次命名状态转移，不允许就返回 ErrInvalidTransition
	Transition(ctx context.Context, id int64, t domain.Transition) error
	List(ctx context.Context, f domain.Filter) ([]domain.Candidate, error)

	StartCourse(ctx context.Context, candidateID, courseID int64) error
	UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error
	// CompleteEnrollment 把最近一门课标记为学完
	CompleteEnrollment(ctx context.Context, candidateID int64) error
	LatestEnrollment(ctx context.Context, candidateID int64) (domain.Enrollment, error)
	LatestEnrollments(ctx context.Context, candidateIDs []int64) (map[int64]domain.Enrollment, error)

	Vacancy(ctx context.Context, id int64) (domain.Vacancy, error)
	SaveVacancy(ctx context.Context, v domain.Vacancy) (int64, error)
	ListVacancies(ctx context.Context) ([]domain.Vacancy, error)
}

var _ Service = &service{}

type service struct {
	repo           repository.CandidateRepository
	enrollmentRepo repository.EnrollmentRepository
	vacancyRepo    repository.VacancyRepository
}

func NewService(repo repository.CandidateRepository,
	enrollmentRepo repository.EnrollmentRepository,
	vacancyRepo repository.VacancyRepository) Service {
	return &service{
		repo:           repo,
		enrollmentRepo: enrollmentRepo,
		vacancyRepo:    vacancyRepo,
	}
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Candidate, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *service) SaveProfile(ctx context.Context, c domain.Candidate) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Candidate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Transition(ctx context.Context, id int64, t domain.Transition) error {
	err := s.repo.Transition(ctx, id, t)
	if err == repository.ErrStatusConflict {
		return ErrInvalidTransition
	}
	return err
}

func (s *service) List(ctx context.Context, f domain.Filter) ([]domain.Candidate, error) {
	return s.repo.List(ctx, f)
}

func (s *service) StartCourse(ctx context.Context, candidateID, courseID int64) error {
	_, err := s.enrollmentRepo.Create(ctx, domain.Enrollment{
		CandidateID: candidateID,
		CourseID:    courseID,
	})
	if err != nil {
		return err
	}
	// 已经在学习中的候选人再报一门课，状态不变
	err = s.repo.Transition(ctx, candidateID, domain.TransitionStartCourse)
	if err == repository.ErrStatusConflict {
		return nil
	}
	return err
}

func (s *service) UpdateProgress(ctx context.Context, candidateID, courseID int64, progress int) error {
	return s.enrollmentRepo.UpdateProgress(ctx, candidateID, courseID, progress)
}

func (s *service) CompleteEnrollment(ctx context.Context, candidateID int64) error {
	return s.enrollmentRepo.Complete(ctx, candidateID)
}

func (s *service) LatestEnrollment(ctx context.Context, candidateID int64) (domain.Enrollment, error) {
	return s.enrollmentRepo.Latest(ctx, candidateID)
}

func (s *service) LatestEnrollments(ctx context.Context, candidateIDs []int64) (map[int64]domain.Enrollment, error) {
	return s.enrollmentRepo.LatestForCandidates(ctx, candidateIDs)
}

func (s *service) Vacancy(ctx context.Context, id int64) (domain.Vacancy, error) {
	return s.vacancyRepo.FindByID(ctx, id)
}

func (s *service) SaveVacancy(ctx context.Context, v domain.Vacancy) (int64, error) {
	return s.vacancyRepo.Save(ctx, v)
}

func (s *service) ListVacancies(ctx context.Context) ([]domain.Vacancy, error) {
	return s.vacancyRepo.List(ctx)
}
