package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "arcade_queue/docs"
	"arcade_queue/internal/config"
	"arcade_queue/internal/events"
	"arcade_queue/internal/handlers"
	"arcade_queue/internal/logger"
	"arcade_queue/internal/queue"
	"arcade_queue/internal/storage"
	"arcade_queue/internal/tasks"
	"arcade_queue/internal/ws"
)

const shutdownTimeout = 10 * time.Second

// @Title			Arcade cabinet play queue
// @Description	Per-cabinet play queues: who is playing now and who is waiting.
// @Version		1.0
// @BasePath		/
func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}
	logger.Init(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.ConnectDatabase(cfg.DB)
	if err != nil {
		log.Fatal("database: ", err)
	}
	ping := func(ctx context.Context) error { return storage.Ping(ctx, db) }

	hub := ws.NewHub()
	go hub.Run(ctx)
	bus := events.NewBus(hub)

	rdb, err := storage.InitRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("redis: ", err)
	}
	if rdb != nil {
		defer rdb.Close()
		relay := events.NewRedisRelay(rdb, cfg.Redis.Channel, bus.InstanceID())
		bus.SetPublisher(relay)
		go func() {
			if err := relay.Run(ctx, bus.Deliver); err != nil {
				log.WithError(err).Error("redis relay stopped")
			}
		}()
	}

	svc := queue.NewService(db, bus)

	scheduler, err := tasks.InitScheduler(tasks.Jobs{ResetSpec: cfg.ResetCron, HealthSpec: cfg.HealthCron}, svc, ping)
	if err != nil {
		log.Fatal("scheduler: ", err)
	}
	defer func() { <-scheduler.Stop().Done() }()

	r := newRouter(cfg, db, svc, hub)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	if err := serve(ctx, srv); err != nil {
		log.WithError(err).Error("server stopped")
	}
}

// serve runs srv until ctx is cancelled or the listener fails. On
// cancellation it shuts the server down gracefully and returns the shutdown
// error, if any.
func serve(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config, db *gorm.DB, svc *queue.Service, hub *ws.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), handlers.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := handlers.New(svc, cfg.Geofence, func(ctx context.Context) error { return storage.Ping(ctx, db) })
	h.SetRoutes(r)
	h.SetRoutes(r.Group("/api"))

	r.GET("/ws", ws.Handler(hub))
	r.GET("/api/ws", ws.Handler(hub))

	return r
}
