package public

import (
	handlershared "github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

func getSession(c *gin.Context) (*service.Session, bool) {
	return handlershared.GetSession(c)
}

func respondSuccessWithKey(c *gin.Context, key string, data interface{}) {
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), data)
}
