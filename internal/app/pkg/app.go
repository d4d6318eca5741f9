package pkg

import (
	"fmt"

	"space_ships/internal/app/config"
	"space_ships/internal/app/handler"
	"space_ships/internal/app/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// Setup вешает middleware и маршруты на роутер
func (a *Application) Setup(stop <-chan struct{}) {
	a.Router.Use(middleware.RequestID(), middleware.Logger())
	if a.Config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(a.Config.RateLimit.RPS, a.Config.RateLimit.Burst)
		go limiter.Run(stop)
		a.Router.Use(limiter.Middleware())
	}
	a.Handler.SetupRoutes(a.Router)
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	stop := make(chan struct{})
	defer close(stop)
	a.Setup(stop)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}
	logrus.Info("Server down")
}
