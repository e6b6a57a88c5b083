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

package assessment

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/cache"
	"github.com/ecodeclub/talent/internal/assessment/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/assessment/internal/service"
	"github.com/ecodeclub/talent/internal/assessment/internal/web"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache,
	candidateModule *candidate.Module, offerModule *offer.Module) (*Module, error) {
	wire.Build(
		initBlueprintDAO,
		initAttemptDAO,
		cache.NewBlueprintECache,
		repository.NewCachedBlueprintRepository,
		repository.NewAttemptRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		wire.FieldsOf(new(*offer.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initBlueprintDAO(db *egorm.Component) dao.BlueprintDAO {
	initTableOnce(db)
	return dao.NewGORMBlueprintDAO(db)
}

func initAttemptDAO(db *egorm.Component) dao.AttemptDAO {
	initTableOnce(db)
	return dao.NewGORMAttemptDAO(db)
}
