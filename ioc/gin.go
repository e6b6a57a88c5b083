package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/talent/internal/assessment"
	"github.com/ecodeclub/talent/internal/candidate"
	"github.com/ecodeclub/talent/internal/notification"
	"github.com/ecodeclub/talent/internal/offer"
	"github.com/ecodeclub/talent/internal/pipeline"
	"github.com/ecodeclub/talent/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	candidateModule *candidate.Module,
	assessmentModule *assessment.Module,
	offerModule *offer.Module,
	pipelineModule *pipeline.Module,
	notificationModule *notification.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	candidateModule.Hdl.MemberRoutes(res.Engine)
	assessmentModule.Hdl.MemberRoutes(res.Engine)
	offerModule.Hdl.MemberRoutes(res.Engine)
	notificationModule.Hdl.MemberRoutes(res.Engine)
	// HR 后台
	candidateModule.AdminHdl.PrivateRoutes(res.Engine)
	assessmentModule.AdminHdl.PrivateRoutes(res.Engine)
	offerModule.AdminHdl.PrivateRoutes(res.Engine)
	pipelineModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}

func initConsumers(notificationModule *notification.Module) []Consumer {
	return []Consumer{
		notificationModule.Consumer,
	}
}
