package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"equipment-management-service/pkg/equipment"
)

type RestfulServer struct {
	Server           *gin.Engine
	Equipment        *equipment.Equipment
	RateLimiterStore *equipment.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	}
	return rs.RateLimiterStore.GetLimiter(clientKey)
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

// rateLimit gates a route group on the caller's per-IP token bucket.
func (rs *RestfulServer) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rs.CheckClientLimiter(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/limiter", rs.PostLimiter)

	machines := rs.Server.Group("/machines")
	machines.Use(rs.rateLimit())
	{
		machines.GET("", rs.GetMachines)
		machines.GET("/:id", rs.GetMachine)
		machines.POST("", rs.AddMachine)
		machines.PUT("/:id", rs.UpdateMachine)
		machines.DELETE("/:id", rs.DeleteMachine)
		machines.GET("/:id/details", rs.GetMachineDetails)
	}

	failures := rs.Server.Group("/failures")
	failures.Use(rs.rateLimit())
	{
		failures.GET("", rs.GetFailures)
		// also serves GET /failures/sorted, see GetFailure
		failures.GET("/:id", rs.GetFailure)
		failures.POST("", rs.AddFailure)
		failures.PUT("/:id", rs.UpdateFailure)
		failures.DELETE("/:id", rs.DeleteFailure)
		failures.PUT("/:id/status", rs.UpdateFailureStatus)
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// abortWithDomainError maps the core error taxonomy onto HTTP statuses.
// Persistence details are never surfaced to the client.
func abortWithDomainError(c *gin.Context, err error) {
	var validationErr *equipment.ValidationError
	var notFoundErr *equipment.NotFoundError
	var conflictErr *equipment.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"message": conflictErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
