package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sanyukt/utils"
)

// getLogger prefers a request-scoped logger placed on the Gin context and
// falls back to the shared application logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
