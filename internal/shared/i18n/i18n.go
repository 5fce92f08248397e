// Package i18n resolves the active storefront locale from the URL prefix,
// falling back to Accept-Language matching.
package i18n

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// DefaultLocale is the storefront's primary market.
const DefaultLocale = "tr"

// Supported lists the storefront locales; order matters for matching.
var Supported = []string{"tr", "en", "de"}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(Supported))
	for _, locale := range Supported {
		tags = append(tags, language.MustParse(locale))
	}
	return language.NewMatcher(tags)
}()

const contextKey = "storefront.locale"

// IsSupported reports whether the locale is one of the storefront locales.
func IsSupported(locale string) bool {
	for _, supported := range Supported {
		if locale == supported {
			return true
		}
	}
	return false
}

// Match resolves an Accept-Language header to the best supported locale.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return Supported[index]
}

// Middleware validates the :lang route parameter. Requests with an
// unsupported locale are redirected to the best Accept-Language match.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Param("lang")
		if !IsSupported(locale) {
			target := "/" + Match(c.GetHeader("Accept-Language")) +
				strings.TrimPrefix(c.Request.URL.Path, "/"+locale)
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Set(contextKey, locale)
		c.Next()
	}
}

// FromContext returns the resolved locale, defaulting when absent.
func FromContext(c *gin.Context) string {
	if locale, ok := c.Get(contextKey); ok {
		if s, ok := locale.(string); ok {
			return s
		}
	}
	return DefaultLocale
}
