package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"traffic-info/api"
	"traffic-info/config"
	"traffic-info/internal/auth"
	"traffic-info/internal/broadcast"
	"traffic-info/internal/generator"
	"traffic-info/internal/repository"
	"traffic-info/internal/scheduler"
	"traffic-info/internal/service"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化数据库
	db, err := repository.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 3. 初始化推送注册表和服务
	hub := broadcast.NewHub()
	services := service.NewServices(db, hub)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryHr)*time.Hour)

	// 4. 启动生成器调度
	gen := generator.New(cfg.Generator)
	sched := scheduler.NewScheduler(gen, services.Traffic)
	if err := sched.Start(cfg.Generator.Schedule); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// 5. 启动HTTP服务器，信号触发优雅退出
	router := api.SetupRouter(services, jwtService, hub)
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		sched.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
