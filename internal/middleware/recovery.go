package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InternalServerErrorBody is the only detail a client sees for an unexpected failure.
const InternalServerErrorBody = "Internal Server Error"

// Recovery turns a panic into a plain-text 500 and logs what was recovered.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		GetLoggerFromCtx(c.Request.Context()).Error("Error during request handling",
			slog.String("error", fmt.Sprint(recovered)),
		)
		c.String(http.StatusInternalServerError, InternalServerErrorBody)
		c.Abort()
	})
}
