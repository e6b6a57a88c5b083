//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/ecodeclub/talent/internal/pipeline"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		candidate.InitModule,
		assessment.InitModule,
		offer.InitModule,
		pipeline.InitModule,
		notification.InitModule,
		InitSession,
		initGinxServer,
		initConsumers)
	return new(App), nil
}
