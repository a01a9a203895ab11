// @title           Smart Home Dashboard API
// @version         1.0
// @description     Rooms, devices, climate automation, away mode, amortization, energy and weather for a smart home dashboard

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
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

	"github.com/joho/godotenv"

	"smarthome-http-service/config"
	"smarthome-http-service/routes"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

func main() {
	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 初始化日志配置
	if err := config.SetupLogger(cfg.LogDir); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 连接存储
	store, err := services.NewStoreService(cfg)
	if err != nil {
		config.Error("无法初始化存储 (%s): %v", cfg.StoreDriver, err)
		os.Exit(1)
	}
	config.Info("使用 %s 存储", cfg.StoreDriver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 创建服务容器并启动后台任务
	serviceContainer := container.NewServiceContainer(cfg, store)
	if err := serviceContainer.Start(ctx); err != nil {
		config.Error("启动服务失败: %v", err)
		serviceContainer.Close()
		os.Exit(1)
	}

	// 初始化路由
	r := routes.SetupRouter(serviceContainer)
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Error("启动服务器失败: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	config.Info("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		config.Warning("优雅关闭失败，强制关闭: %v", err)
		server.Close()
	}
	if err := serviceContainer.Close(); err != nil {
		config.Error("关闭存储失败: %v", err)
	}
	config.Info("服务器已退出")
}
