package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/genmaze/api"
	api_i "github.com/beka-birhanu/genmaze/api/i"
	mazeapi "github.com/beka-birhanu/genmaze/api/maze"
	"github.com/beka-birhanu/genmaze/config"
	logger "github.com/beka-birhanu/genmaze/infrastruture/log"
	"github.com/beka-birhanu/genmaze/service"
	"github.com/beka-birhanu/genmaze/service/i"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
)

func initMazeService() {
	mazeLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	seed := config.Envs.MazeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mazeService, err = service.NewMazeService(rand.New(rand.NewSource(seed)), mazeLogger, config.Envs.MaxMazeDimension)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Mode:        config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
