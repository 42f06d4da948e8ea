package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	"github.com/beka-birhanu/vinom-pathfinder/api/mazeapi"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/cache"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/playback"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	envs           config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	solutionCache  i.SolutionCache
	solver         *maze.Solver
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *log.Logger
)

func newLogger(prefix, color string) *log.Logger {
	return log.New(os.Stdout, fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset), log.LstdFlags)
}

func info(format string, args ...interface{}) {
	appLogger.Printf("%s[INFO]%s %s", config.LogInfoColor, config.LogColorReset, fmt.Sprintf(format, args...))
}

func fatal(format string, args ...interface{}) {
	appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func initMongo(ctx context.Context) {
	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(envs.DBURI))
	if err != nil {
		fatal("Failed to connect to MongoDB: %v", err)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		fatal("MongoDB ping failed: %v", err)
	}
	info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("Redis ping failed: %v", err)
	}
	info("Connected to Redis")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, envs.DBName, "mazes")
	info("Maze repository initialized")
}

func initSolutionCache(client *redis.Client) {
	var err error
	solutionCache, err = cache.NewRedisSolutionCache(client, envs.SolutionTTLSeconds)
	if err != nil {
		fatal("Creating solution cache: %v", err)
	}
	info("Solution cache initialized")
}

func initSolver() {
	solver = maze.NewSolver(
		maze.WithMaxCells(envs.MaxMazeCells),
		maze.WithLogger(newLogger("SOLVER", config.ColorCyan)),
	)
	info("Solver initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Solver: solver,
		Cache:  solutionCache,
		Repo:   mazeRepo,
		Logger: newLogger("MAZE-SERVICE", config.ColorMagenta),
	})
	if err != nil {
		fatal("Creating maze service: %v", err)
	}
	info("Maze service initialized")
}

func initMazeController() {
	var err error
	player := playback.NewPlayer(time.Duration(envs.PlaybackDelayMS) * time.Millisecond)
	mazeController, err = mazeapi.NewMazeController(mazeService, player, newLogger("API", config.ColorBlue))
	if err != nil {
		fatal("Creating maze controller: %v", err)
	}
	info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t, identity.ScopeMazesWrite),
	})
	info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)
	envs = config.Load()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initSolutionCache(redisClient)
	initSolver()
	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
