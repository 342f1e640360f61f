package pkg

import (
	"fmt"

	"catering/internal/app/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config *config.Config
	Router *gin.Engine
}

func NewApp(c *config.Config, r *gin.Engine) *Application {
	return &Application{
		Config: c,
		Router: r,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
