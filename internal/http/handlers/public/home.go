package public

import (
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// HomeResponse 首页状态
type HomeResponse struct {
	Carousel   service.CarouselState   `json:"carousel"`
	SearchHint service.SearchHintState `json:"search_hint"`
	Badge      service.CartBadgeState  `json:"badge"`
}

// CarouselGoToRequest 轮播跳转请求
type CarouselGoToRequest struct {
	Index *int `json:"index" binding:"required"`
}

// GetHome 获取轮播与搜索提示当前状态
func (h *Handler) GetHome(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	response.Success(c, HomeResponse{
		Carousel:   session.Carousel().State(),
		SearchHint: session.SearchHint().State(),
		Badge:      session.Badge().State(),
	})
}

// CarouselNext 下一张
func (h *Handler) CarouselNext(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	response.Success(c, session.Carousel().Next())
}

// CarouselPrev 上一张
func (h *Handler) CarouselPrev(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	response.Success(c, session.Carousel().Prev())
}

// CarouselGoTo 跳转到指定页
func (h *Handler) CarouselGoTo(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	var req CarouselGoToRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	response.Success(c, session.Carousel().GoTo(*req.Index))
}

// PauseSearchHint 输入框聚焦时暂停提示语轮换
func (h *Handler) PauseSearchHint(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	response.Success(c, session.SearchHint().Pause())
}

// ResumeSearchHint 恢复提示语轮换
func (h *Handler) ResumeSearchHint(c *gin.Context) {
	session, ok := getSession(c)
	if !ok {
		return
	}
	response.Success(c, session.SearchHint().Resume())
}
