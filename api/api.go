package api

import (
	"errors"
	"fmt"
	"time"

	"sustaincalc/internal/app"
	"sustaincalc/internal/calculator"
	"sustaincalc/internal/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	CalculatorService app.CalculatorService
	Logger            *zap.SugaredLogger

	// default thresholds applied when a request doesn't override them
	Thresholds domain.SustainabilityThresholds
}

func (m ApiHandler) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to sustaincalc"})
	})
	router.POST("/calculate", m.calculate)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.Router().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	var bracketErr *calculator.InvalidOwnershipBracketError
	if errors.As(err, &bracketErr) {
		returnErrorJsonCode(err, c, 400)
		return
	}
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	m.Logger.Infow("handled request",
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
