package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"locale-gateway-go/internal/handler"
	"locale-gateway-go/internal/i18n"
	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/middleware"
	"locale-gateway-go/internal/repository"
	"locale-gateway-go/internal/service"
	"locale-gateway-go/pkg/logging"
	"locale-gateway-go/pkg/utils"
)

func initConfig() {
	wd, _ := os.Getwd()
	log.Printf("Loading config from: %s/config.yaml", wd)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
}

func startServer(r *gin.Engine) {
	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logging.Logger.Info("Server is running on " + addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	conn := repository.RedisPool.Get()
	defer func() {
		if err := conn.Close(); err != nil {
			logging.Logger.Warn("Redis connection close failed", zap.Error(err))
		}
	}()

	logging.Logger.Info("Server exiting")
}

func main() {

	initConfig()
	logging.InitLoggerFromConfig()

	logging.Logger.Info("Application started")

	repository.InitRedis()

	// 服务自身接口消息（加载 TOML 文件）
	bundle, err := i18n.InitI18n([]string{
		"./messages/en.toml",
		"./messages/fr.toml",
		"./messages/nl.toml",
	}, "en")
	if err != nil {
		panic(err)
	}

	if err := utils.RegisterValidations(); err != nil {
		logging.Logger.Fatal("Failed to register validations", zap.Error(err))
	}

	defaultLang := locale.Normalize(viper.GetString("i18n.default_language"), locale.DefaultLanguage)

	// 语言检测：持久化槽位 -> 配置的协商 locale -> 默认语言
	store := repository.NewRedisLanguageStore(repository.RedisPool)
	langService := service.NewLanguageService(store, defaultLang, viper.GetString("i18n.accept_language"))
	langService.OnChange(func(lang locale.Language) {
		logging.Logger.Info("Active language changed", zap.String("language", lang.String()))
	})

	resolver := locale.NewResolver(locale.NewModuleMap(), defaultLang)
	stats := service.NewResolutionStats()

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.ZapGinLogger(logging.Logger))
	r.Use(middleware.CorsMiddleware())
	r.Use(middleware.I18nMiddleware(bundle, langService))

	r.SetHTMLTemplate(handler.PageTemplate())

	messages := &i18n.DefaultMessageSource{
		Bundle:      bundle,
		DefaultLang: defaultLang.String(),
	}

	r.GET("/", handler.PageHandler(resolver, langService))
	r.GET("/locales/:lng/:ns", handler.GetLocaleBundleHandler(resolver, stats))

	api := r.Group("/api")
	{
		api.GET("/language", handler.GetLanguageHandler(langService, messages))
		api.PUT("/language", handler.SetLanguageHandler(langService, messages))
		api.GET("/languages", handler.ListLanguagesHandler(langService))
	}

	c := cron.New()

	// 定时任务：每十分钟输出一次解析统计
	_, addErr := c.AddFunc("*/10 * * * *", func() {
		stats.LogSummary()
	})

	if addErr != nil {
		logging.Logger.Fatal("Failed to schedule cron job", zap.Error(addErr))
	}

	c.Start()

	startServer(r)
}
