package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/kgrc4si/ikgrcscore/internal/dto"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

func NewGinEngine(cfg *config.Config) (*gin.Engine, error) {
	if gin.Mode() != gin.TestMode {
		if cfg.Server.IsDevSystem {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := dto.RegisterValidations(v); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestID())
	r.Use(requestLogger())
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", ctx.Request.URL.Path).Msg("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(http.StatusInternalServerError, ctx.Request.Method, "Server Error"))
	}))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:   []string{"Content-Length", requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, ctx.Request.Method,
			fmt.Sprintf("Endpoint %s %s not found", ctx.Request.Method, ctx.Request.URL.Path)))
	})

	return r, nil
}

func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(requestIDHeader, id)
		ctx.Header(requestIDHeader, id)
		ctx.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info().
			Str("request_id", ctx.GetString(requestIDHeader)).
			Str("client_ip", ctx.ClientIP()).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status_code", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("user_agent", ctx.Request.UserAgent()).
			Str("error_message", ctx.Errors.ByType(gin.ErrorTypePrivate).String()).
			Msg("gin_request")
	}
}
