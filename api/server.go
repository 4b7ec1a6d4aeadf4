package api

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	db "github.com/MartPlace/MartPlace-Backend/db/sqlc"
	"github.com/MartPlace/MartPlace-Backend/models"
	"github.com/MartPlace/MartPlace-Backend/providers"
	"github.com/MartPlace/MartPlace-Backend/providers/fiat"
	kycprovider "github.com/MartPlace/MartPlace-Backend/providers/kyc"
	"github.com/MartPlace/MartPlace-Backend/services/bank"
	"github.com/MartPlace/MartPlace-Backend/services/kyc"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/logging"
	"github.com/MartPlace/MartPlace-Backend/services/monitoring/tasks"
	"github.com/MartPlace/MartPlace-Backend/services/notification"
	redisservice "github.com/MartPlace/MartPlace-Backend/services/redis"
	"github.com/MartPlace/MartPlace-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router        *gin.Engine
	store         *db.Store
	config        *utils.Config
	logger        *logging.Logger
	provider      *providers.ProviderService
	redis         *redisservice.RedisService
	directory     *bank.Directory
	workflow      *kyc.Workflow
	notifications *notification.Notification
	scheduler     *tasks.TaskScheduler
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()
	l.Info(fmt.Sprintf("starting with config: %+v", c.Redact()))
	p := providers.NewProviderService()

	// Set up verification providers
	fp := fiat.NewFiatProvider()
	p.AddProvider(fp)
	kp := kycprovider.NewKYCProvider()
	p.AddProvider(kp)

	// A dead Redis degrades the bank directory to its fallbacks, it
	// must not keep the service from starting
	var rs *redisservice.RedisService
	rs, err = redisservice.NewRedisService(&redisservice.RedisConfig{
		Host:     c.RedisHost,
		Port:     c.RedisPort,
		Password: c.RedisPassword,
	})
	if err != nil {
		l.Error(fmt.Sprintf("redis unavailable, continuing without shared bank cache: %v", err))
		rs = nil
	}

	directory := bank.NewDirectory(fp, rs, l)
	notifications := notification.NewNotificationService(store, l)

	scheduler := tasks.NewTaskScheduler(l)
	scheduler.AddTask("bank-directory-refresh", "Refresh bank directory", func(ctx context.Context) error {
		directory.Load(ctx)
		return nil
	}, 12*time.Hour)
	scheduler.ScheduleTask("bank-directory-refresh", time.Minute)
	scheduler.AddTask("notification-prune", "Prune stale notifications", notifications.PruneOld, 24*time.Hour)
	scheduler.ScheduleTask("notification-prune", time.Hour)

	workflow := kyc.NewWorkflow(
		kyc.NewProviderClient(fp, kp),
		kyc.NewSQLProgressStore(store, l),
		directory,
		notifications,
		l,
	)

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())
	registerValidators()

	TokenController = utils.NewJWTToken(c)

	return &Server{
		router:        g,
		store:         store,
		config:        c,
		logger:        l,
		provider:      p,
		redis:         rs,
		directory:     directory,
		workflow:      workflow,
		notifications: notifications,
		scheduler:     scheduler,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to MartPlace!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Auth{}.router(s)
	KYC{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
