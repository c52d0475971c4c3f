package middleware

import (
	"skill_graph_backend/internal/config"
	"skill_graph_backend/internal/util"
	"skill_graph_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentUserMiddleware 解析当前用户：优先使用 Bearer token，
// 未携带 token 时回退到配置的默认用户，两者都没有则返回 401。
func CurrentUserMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")

		if tokenString == "" {
			if cfg.Auth.DefaultUserID == 0 {
				util.Unauthorized(c)
				c.Abort()
				return
			}
			c.Set(util.ContextUserIDKey, cfg.Auth.DefaultUserID)
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, claims)
		c.Set(util.ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
