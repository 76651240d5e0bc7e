package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/dinocatalog-backend/internal/http/response"
	"github.com/yungbote/dinocatalog-backend/internal/platform/apierr"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		if log != nil {
			log.Error("panic recovered",
				"path", c.Request.URL.Path,
				"panic", fmt.Sprint(recovered),
				"stack", string(debug.Stack()),
			)
		}
		response.RespondError(c, http.StatusInternalServerError, apierr.CodeInternal, fmt.Errorf("internal server error"))
	})
}
