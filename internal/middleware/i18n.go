// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/catalog-service/internal/i18n"
)

func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", negotiateLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// negotiateLanguage picks the locale for the first language of an
// Accept-Language header such as "zh-TW,zh;q=0.9,en;q=0.8".
func negotiateLanguage(header string) string {
	if header == "" {
		return i18n.DefaultLanguage()
	}

	first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	switch first {
	case "zh-TW", "zh-Hant", "zh_TW", "zh":
		return "zh_TW"
	case "en", "en-US", "en-GB":
		return "en"
	default:
		return i18n.DefaultLanguage()
	}
}
