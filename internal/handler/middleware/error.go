package middleware

import (
	"log/slog"
	"net/http"

	"auction-engine/internal/handler/httperr"
	"auction-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalCode = "INTERNAL"

func internalResponse() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Code = internalCode
	resp.Error.Message = "Internal server error"
	return resp
}

// ErrorHandler renders the last public error a handler attached when nothing
// was written yet. Private errors never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) > 0 {
			slog.Error("unhandled request error",
				"error", c.Errors.Last().Err.Error(),
				"stack", errs.ExtractStackLines(c.Errors.Last().Err, 8),
				"path", c.FullPath(),
				"request_id", GetRequestID(c))
			c.JSON(http.StatusInternalServerError, internalResponse())
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, internalResponse())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				attrs := []any{"panic", rec, "method", c.Request.Method, "path", c.Request.URL.Path}
				if id := GetRequestID(c); id != "" {
					attrs = append(attrs, "request_id", id)
				}
				if userID, ok := GetUserID(c); ok {
					attrs = append(attrs, "user_id", userID)
				}
				slog.Error("recovered from panic", attrs...)

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalResponse())
			}
		}()
		c.Next()
	}
}
