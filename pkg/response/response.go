package response

import (
	"context"
	"fmt"
	"net/http"

	"trustrate-srv/pkg/discord"
	pkgErrors "trustrate-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   "Success",
		Data:      data,
	})
}

// Error maps err to an HTTP response. Unmapped errors become 500 and are
// reported to the ops webhook when one is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	notifyInternal(c, err, notifier)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}

// ErrorWithMap resolves err through mapping before falling back to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, notifier discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}
	Error(c, err, notifier)
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	notifyInternal(c, fmt.Errorf("panic: %v", recovered), notifier)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Internal server error",
	})
}

// Unauthorized writes a 401 with the standard envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: CodeUnauthorized,
		Message:   "Unauthorized",
	})
}

func notifyInternal(c *gin.Context, err error, notifier discord.IDiscord) {
	if notifier == nil {
		return
	}
	method := c.Request.Method
	path := c.Request.URL.Path
	// Fire and forget so a slow webhook never delays the response.
	go func() {
		_ = notifier.SendError(context.Background(), "Internal Error",
			fmt.Sprintf("%s %s", method, path), err)
	}()
}
