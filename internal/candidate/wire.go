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

//go:build wireinject

package candidate

import (
	"sync"

	"github.com/ecodeclub/talent/internal/candidate/internal/repository"
	"github.com/ecodeclub/talent/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/candidate/internal/service"
	"github.com/ecodeclub/talent/internal/candidate/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		InitCandidateDAO,
		initEnrollmentDAO,
		initVacancyDAO,
		repository.NewCandidateRepository,
		repository.NewEnrollmentRepository,
		repository.NewVacancyRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitCandidateDAO(db *egorm.Component) dao.CandidateDAO {
	InitTableOnce(db)
	return dao.NewGORMCandidateDAO(db)
}

func initEnrollmentDAO(db *egorm.Component) dao.EnrollmentDAO {
	InitTableOnce(db)
	return dao.NewGORMEnrollmentDAO(db)
}

func initVacancyDAO(db *egorm.Component) dao.VacancyDAO {
	InitTableOnce(db)
	return dao.NewGORMVacancyDAO(db)
}
