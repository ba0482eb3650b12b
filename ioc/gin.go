package ioc

import (
	"net/http"
	"strings"

	"github.com/camellia-mall/camellia/internal/cart"
	"github.com/camellia-mall/camellia/internal/delivery"
	"github.com/camellia-mall/camellia/internal/notification"
	"github.com/camellia-mall/camellia/internal/order"
	"github.com/camellia-mall/camellia/internal/payment"
	"github.com/camellia-mall/camellia/internal/pkg/middleware"
	"github.com/camellia-mall/camellia/internal/product"
	"github.com/camellia-mall/camellia/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	productHdl *product.Handler,
	userHdl *user.Handler,
	cartHdl *cart.Handler,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	wechatHdl *payment.WechatHandler,
	deliveryHdl *delivery.Handler,
	notificationHdl *notification.Handler,
	wsHdl *notification.WSHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "camellia-mall.com")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	productHdl.PublicRoutes(res.Engine)
	userHdl.PublicRoutes(res.Engine)
	wechatHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	cartHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	deliveryHdl.PrivateRoutes(res.Engine)
	notificationHdl.PrivateRoutes(res.Engine)
	wsHdl.PrivateRoutes(res.Engine)
	return res
}
