package main

import (
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-api/api"
	api_i "github.com/beka-birhanu/maze-api/api/i"
	mazeapi "github.com/beka-birhanu/maze-api/api/maze"
	"github.com/beka-birhanu/maze-api/config"
	"github.com/beka-birhanu/maze-api/maze"
	"github.com/beka-birhanu/maze-api/service"
	"github.com/beka-birhanu/maze-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Logger
	mazeManager    i.MazeManager
	mazeController api_i.Controller
	router         *api.Router
)

func initLogger() {
	appLogger = logrus.New()
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	appLogger.Info("Logger initialized")
}

func initMazeManager() {
	seed := config.Envs.GeneratorSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	generator := maze.NewGenerator(seed)

	var err error
	mazeManager, err = service.NewMazeManager(&service.Config{
		Generate:     generator.Generate,
		Solve:        maze.Solve,
		MaxDimension: config.Envs.MazeMaxDimension,
		Logger:       appLogger.WithField("component", "maze-manager"),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze manager: %v", err))
		os.Exit(1)
	}

	appLogger.WithField("seed", seed).Info("Maze manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeManager, config.Envs.MazeDefaultDimension)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})

	appLogger.Info("Router initialized")
}

func main() {
	initLogger()
	initMazeManager()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Running router: %v", err))
		os.Exit(1)
	}
}
