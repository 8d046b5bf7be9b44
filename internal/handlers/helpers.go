package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"opsboard/internal/repositories"
	"opsboard/internal/services"
)

// tolerant to types (int / int64 / float64 / string)
func getInt64FromCtx(c *gin.Context, key string) (int64, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// getActor returns the authenticated user id, 0 when no session.
func getActor(c *gin.Context) int64 {
	if id, ok := getInt64FromCtx(c, "user_id"); ok {
		return id
	}
	return 0
}

// respondError maps the service/repository error taxonomy onto HTTP.
// Policy rejections from the database (insufficient_privilege) get a
// distinct message so they are not mistaken for generic failures.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrSelfLink):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrMoveInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "42501": // insufficient_privilege
				c.JSON(http.StatusForbidden, gin.H{"error": "permission denied by data service"})
				return
			case "23505": // unique_violation
				c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please retry"})
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
