package middleware

import (
	"net/http"
	"strconv"

	"github.com/epeers/estateplan/internal/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const AdvisorIDKey = "advisor_id"

// ValidateAdvisor is a stubbed authentication middleware that reads the
// advisor's ID from the X-User-ID header. A missing or malformed header
// leaves the request anonymous.
func ValidateAdvisor() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-User-ID")
		if header == "" {
			c.Next()
			return
		}

		advisorID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || advisorID <= 0 {
			log.Debugf("ignoring malformed X-User-ID %q", header)
			c.Next()
			return
		}

		c.Set(AdvisorIDKey, advisorID)
		c.Next()
	}
}

// GetAdvisorID retrieves the advisor ID from the context
func GetAdvisorID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(AdvisorIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// RequireAuth rejects anonymous requests
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetAdvisorID(c); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "authentication required",
			})
			return
		}
		c.Next()
	}
}
