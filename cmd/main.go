package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/config"
	"github.com/wanderlustbites/content-service/internal/auth"
	"github.com/wanderlustbites/content-service/internal/cms"
	"github.com/wanderlustbites/content-service/internal/handler"
	"github.com/wanderlustbites/content-service/internal/mailer"
	"github.com/wanderlustbites/content-service/internal/middleware"
	"github.com/wanderlustbites/content-service/pkg/cache"
	"github.com/wanderlustbites/content-service/pkg/logger"
	http_server "github.com/wanderlustbites/content-service/pkg/server/http"

	_ "github.com/wanderlustbites/content-service/docs"
)

//	@title			WANDERLUST BITES APIs
//	@version		1.0
//	@description	Content and session APIs behind the Wanderlust Bites travel food blog.
//	@termsOfService	http://swagger.io/terms/

// @securityDefinitions.apikey	SessionCookie
// @in							cookie
// @name						auth-token
// @description				Session cookie set by the auth endpoints
func main() {
	env := config.GetEnv()

	zapLogger := logger.GetLogger(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer logger.Sync()

	memCache := cache.NewCache(env.CacheConfig)
	defer memCache.Stop()

	var redisClient *redis.Client
	if env.RedisConfig.Enabled {
		redisClient = cache.NewRedisClient(env.RedisConfig)
	}

	cmsOpts := []cms.Option{
		cms.WithLogger(zapLogger),
		cms.WithCache(memCache, env.CacheConfig.DefaultTTL),
	}
	if redisClient != nil {
		cmsOpts = append(cmsOpts, cms.WithRedis(redisClient, env.CacheConfig.RedisTTL))
	}
	cmsClient := cms.New(env.CMSConfig, cmsOpts...)

	issuer, err := auth.NewIssuer([]byte(env.AuthConfig.Secret), env.AuthConfig.TokenTTL)
	if err != nil {
		zapLogger.Fatal("token issuer init failed", zap.Error(err))
	}
	authSvc := auth.NewService(cmsClient, issuer, env.AuthConfig.BcryptCost, zapLogger)
	cookie := auth.CookieOpts{
		Name:   env.AuthConfig.CookieName,
		Domain: env.AuthConfig.CookieDomain,
		MaxAge: int(env.AuthConfig.TokenTTL.Seconds()),
		Secure: env.IsProduction(),
	}

	mail := mailer.NewResendMailer(env.MailConfig, zapLogger)

	httpServer := http_server.New(env, http_server.Port(fmt.Sprintf("%d", env.AppConfig.Port)))

	httpServer.App.Use(middleware.CorrelationIDMiddleware())
	loggingMiddleware := middleware.NewLoggingMiddleware(middleware.DefaultMiddlewareConfig())
	httpServer.App.Use(loggingMiddleware.RequestLogger(), loggingMiddleware.SecurityLogger())

	pathPrefix := env.AppConfig.PathPrefix
	if pathPrefix == "" {
		pathPrefix = "/api"
	}
	handler.RegisterRoutes(httpServer.App, pathPrefix, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, cookie, zapLogger),
		Content:    handler.NewContentHandler(cmsClient, zapLogger),
		Search:     handler.NewSearchHandler(cmsClient, zapLogger),
		Contact:    handler.NewContactHandler(mail, zapLogger),
		Newsletter: handler.NewNewsletterHandler(cmsClient, zapLogger),
		Issuer:     issuer,
		Cookie:     cookie,
	})

	httpServer.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		zapLogger.Info("shutting down", zap.String("signal", s.String()))
	case err := <-httpServer.Notify():
		zapLogger.Error("http server stopped", zap.Error(err))
	}

	if err := httpServer.Shutdown(); err != nil {
		zapLogger.Error("shutdown failed", zap.Error(err))
	}
}
