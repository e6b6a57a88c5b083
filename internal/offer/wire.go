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

package offer

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/offer/internal/event"
	"github.com/ecodeclub/talent/internal/offer/internal/repository"
	"github.com/ecodeclub/talent/internal/offer/internal/repository/dao"
	"github.com/ecodeclub/talent/internal/offer/internal/service"
	"github.com/ecodeclub/talent/internal/offer/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, candidateModule *candidate.Module) (*Module, error) {
	wire.Build(
		initOfferDAO,
		initTemplateDAO,
		repository.NewOfferRepository,
		repository.NewTemplateRepository,
		event.NewOfferEventProducer,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*candidate.Module), "Svc"),
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

func initOfferDAO(db *egorm.Component) dao.OfferDAO {
	initTableOnce(db)
	return dao.NewGORMOfferDAO(db)
}

func initTemplateDAO(db *egorm.Component) dao.TemplateDAO {
	initTableOnce(db)
	return dao.NewGORMTemplateDAO(db)
}

func initService(repo repository.OfferRepository,
	tplRepo repository.TemplateRepository,
	candidateSvc candidate.Service,
	producer event.OfferEventProducer) service.Service {
	return service.NewService(repo, tplRepo, candidateSvc, producer,
		econf.GetString("offer.commission"),
		econf.GetString("offer.defaultCity"))
}
