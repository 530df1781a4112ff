package middleware

import (
	"github.com/gin-gonic/gin"

	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/response"
)

// Recovery recovers handler panics, reports them to Discord, and returns
// a 500 response.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "internal.middleware.Recovery: panic: %v | %s %s",
					err, c.Request.Method, c.Request.URL.Path)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
