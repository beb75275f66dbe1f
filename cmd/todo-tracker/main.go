package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	gormdb "gorm.io/gorm"
	"todo-tracker/configs"
	_ "todo-tracker/docs"
	"todo-tracker/internal/application/controller"
	"todo-tracker/internal/application/middleware"
	"todo-tracker/internal/application/schedule"
	"todo-tracker/internal/domain/gateway/db"
	"todo-tracker/internal/domain/gateway/lock"
	"todo-tracker/internal/domain/gateway/queue"
	"todo-tracker/internal/domain/usecase/health"
	"todo-tracker/internal/domain/usecase/role"
	"todo-tracker/internal/domain/usecase/state"
	"todo-tracker/internal/domain/usecase/task"
	"todo-tracker/internal/domain/usecase/todo"
	"todo-tracker/internal/domain/usecase/user"
	"todo-tracker/internal/infra/aws"
	"todo-tracker/internal/infra/database/gorm"
	"todo-tracker/internal/infra/database/sqlc"
	infraredis "todo-tracker/internal/infra/redis"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
	"todo-tracker/pkg/redis"
	"todo-tracker/pkg/resource"
	"todo-tracker/pkg/sqs"
)

// @title todo-tracker API
// @version 1.0
// @description Shared to-do lists with prioritized tasks and workflow states.
// @BasePath /todo-tracker
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	gormDB, err := gorm.Open()
	if err != nil {
		log.Fatal("Fail to connect database", zap.Error(err))
	}
	if resource.GetBool("app.db.auto-migrate") {
		if err := gorm.Migrate(gormDB); err != nil {
			log.Fatal("Fail to migrate database", zap.Error(err))
		}
		if err := gorm.Seed(gormDB); err != nil {
			log.Fatal("Fail to seed database", zap.Error(err))
		}
	}

	redisClient, err := infraredis.NewClient()
	if err != nil {
		log.Fatal("Fail to create redis client", zap.Error(err))
	}
	defer redisClient.Close()

	// Init Gateways
	roleGateway, stateGateway, dbHealthGateway, sqlDB := lookupGateways(gormDB)
	if sqlDB != nil {
		defer sqlDB.Close()
	}
	userGateway := db.NewGormUserGateway(gormDB)
	todoGateway := db.NewGormToDoGateway(gormDB)
	taskGateway := db.NewGormTaskGateway(gormDB)
	activityGateway, queueHealthGateway := activityGateways(ctx)
	redisHealthGateway := lock.NewRedisHealthGateway(redis.NewHealthChecker(redisClient))

	// Init UseCase
	roleUseCase := role.NewRoleUseCase(roleGateway)
	stateUseCase := state.NewStateUseCase(stateGateway)
	userUseCase := user.NewUserUseCase(userGateway, roleUseCase)
	todoUseCase := todo.NewToDoUseCase(todoGateway, userGateway, activityGateway)
	taskUseCase := task.NewTaskUseCase(taskGateway, todoGateway, stateUseCase, activityGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, redisHealthGateway, queueHealthGateway)

	// Init Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(configs.Env.ContextPath)
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewRoleController(api, roleUseCase).InitRoleRoutes()
	controller.NewStateController(api, stateUseCase).InitStateRoutes()
	controller.NewUserController(api, userUseCase).InitUserRoutes()
	controller.NewToDoController(api, todoUseCase).InitToDoRoutes()
	controller.NewTaskController(api, taskUseCase).InitTaskRoutes()

	// Init Schedule
	orphanScheduler := schedule.NewOrphanScheduler(taskUseCase, redisClient, schedule.OrphanSchedulerConfig{
		CronExpression:  resource.GetString("app.cleanup.cron"),
		LockTTL:         time.Duration(resource.GetInt("app.cleanup.lock-ttl")) * time.Second,
		RefreshInterval: time.Duration(resource.GetInt("app.cleanup.refresh-interval")) * time.Second,
	})
	orphanScheduler.InitOrphanScheduleTasks(ctx)

	// Start Routes
	go func() {
		if err := e.Start(":" + resource.GetString("app.server.port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started"), zap.String("port", resource.GetString("app.server.port")))

	<-ctx.Done()
	orphanScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}

// lookupGateways picks the store of the role and state lookup tables from app.db.engine.
// The sqlc engine opens its own connection, returned so it can be closed on shutdown.
func lookupGateways(gormDB *gormdb.DB) (db.RoleGateway, db.StateGateway, db.HealthDBGateway, *sql.DB) {
	if resource.GetString("app.db.engine") != "sqlc" {
		return db.NewGormRoleGateway(gormDB), db.NewGormStateGateway(gormDB), db.NewGormHealthDBGateway(gormDB), nil
	}

	sqlDB, err := sqlc.Open()
	if err != nil {
		log.Fatal("Fail to connect database", zap.Error(err))
	}
	return db.NewSQLCRoleGateway(sqlDB), db.NewSQLCStateGateway(sqlDB), db.NewSQLCHealthDBGateway(sqlDB), sqlDB
}

// activityGateways publishes activity events to SQS when app.activity.enabled is set.
func activityGateways(ctx context.Context) (queue.ActivityGateway, queue.HealthGateway) {
	queueName := resource.GetString("app.activity.queue")
	if !resource.GetBool("app.activity.enabled") {
		return queue.NoopActivityGateway{}, queue.NewQueueHealthGateway(nil, queueName)
	}

	cfg, err := aws.LoadConfig(ctx)
	if err != nil {
		log.Fatal("Fail to load AWS config", zap.Error(err))
	}
	sender := sqs.NewSender(aws.NewSqsClient(cfg))
	return queue.NewSQSActivityGateway(sender, queueName), queue.NewQueueHealthGateway(sender, queueName)
}
