package shared

import (
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSession 从上下文读取当前会话，缺失时直接写入错误响应。
func GetSession(c *gin.Context) (*service.Session, bool) {
	value, exists := c.Get(constants.SessionContextKey)
	if !exists {
		RespondError(c, response.CodeBadRequest, "error.session_required", nil)
		return nil, false
	}
	session, ok := value.(*service.Session)
	if !ok || session == nil {
		RespondError(c, response.CodeInternal, "error.internal", nil)
		return nil, false
	}
	return session, true
}
