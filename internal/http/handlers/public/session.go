package public

import (
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionResponse 会话响应
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateSession 创建新会话，忽略请求中已有的会话
func (h *Handler) CreateSession(c *gin.Context) {
	session := h.SessionStore.Create()
	c.Writer.Header().Set(constants.SessionHeader, session.ID())
	response.Success(c, SessionResponse{
		SessionID: session.ID(),
		CreatedAt: session.CreatedAt(),
	})
}

// DeleteSession 销毁当前会话并停止其计时器
func (h *Handler) DeleteSession(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	h.SessionStore.Delete(session.ID())
	c.Writer.Header().Del(constants.SessionHeader)
	respondSuccessWithKey(c, "success.session_deleted", gin.H{"session_id": session.ID()})
}
