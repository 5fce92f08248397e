package storefrontserver

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/shopilens/storefront-api/internal/domains/users/adapters/http/mapper"
	"github.com/shopilens/storefront-api/internal/domains/users/ports"
	apierrors "github.com/shopilens/storefront-api/internal/shared/errors"
	"github.com/shopilens/storefront-api/internal/shared/i18n"
)

const (
	// SessionCookieName is the cookie carrying the shopper's session token.
	SessionCookieName = "shopilens-session"

	sessionCookieMaxAge = 24 * 60 * 60

	usernameContextKey = "storefront.username"
)

// UserAPI serves account and session endpoints plus the session gate in
// front of checkout.
type UserAPI struct {
	service ports.Service
}

func NewUserAPI(service ports.Service) UserAPI {
	return UserAPI{service: service}
}

// Register handles POST /:lang/api/auth/register.
func (api UserAPI) Register(c *gin.Context) {
	var req mapper.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondError(c, apierrors.ErrBadRequest.WithCause(err))
		return
	}
	user, err := mapper.ToDomainUser(req)
	if err != nil {
		apierrors.RespondError(c, apierrors.APIError{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
		return
	}
	created, err := api.service.Register(c.Request.Context(), user)
	if err != nil {
		apierrors.RespondMapped(c, err, userErrorMapper)
		return
	}
	apierrors.RespondData(c, mapper.FromDomainUser(created))
}

// Login handles POST /:lang/api/auth/login. A successful login sets the
// session cookie and returns the shopper's profile.
func (api UserAPI) Login(c *gin.Context) {
	var req mapper.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondError(c, apierrors.ErrBadRequest.WithCause(err))
		return
	}
	token, err := api.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apierrors.RespondMapped(c, err, userErrorMapper)
		return
	}
	user, err := api.service.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		apierrors.RespondMapped(c, err, userErrorMapper)
		return
	}
	api.writeSession(c, token, sessionCookieMaxAge)
	apierrors.RespondData(c, mapper.FromDomainUser(user))
}

// Logout handles POST /:lang/api/auth/logout. Logging out without a session
// is a no-op.
func (api UserAPI) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		api.service.Logout(c.Request.Context(), token)
	}
	api.writeSession(c, "", -1)
	apierrors.RespondData(c, true)
}

// GetLogin handles GET /:lang/login, the target of the checkout gate's
// redirect. It echoes the callback so the storefront knows where to return
// the shopper after a successful login.
func (api UserAPI) GetLogin(c *gin.Context) {
	apierrors.RespondData(c, loginPage{
		CallbackURL: c.Query("callbackUrl"),
	})
}

// GetCheckout handles GET /:lang/checkout behind RequireSession.
func (api UserAPI) GetCheckout(c *gin.Context) {
	apierrors.RespondData(c, checkoutPage{
		Username: c.GetString(usernameContextKey),
	})
}

type loginPage struct {
	CallbackURL string `json:"callbackUrl,omitempty"`
}

type checkoutPage struct {
	Username string `json:"username"`
}

// RequireSession redirects anonymous shoppers to the locale's login page,
// carrying the original URL as callbackUrl.
func (api UserAPI) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			api.redirectToLogin(c)
			return
		}
		username, err := api.service.Authenticate(c.Request.Context(), token)
		if err != nil {
			api.redirectToLogin(c)
			return
		}
		c.Set(usernameContextKey, username)
		c.Next()
	}
}

func (api UserAPI) redirectToLogin(c *gin.Context) {
	target := "/" + i18n.FromContext(c) + "/login?callbackUrl=" +
		url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func (api UserAPI) writeSession(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", false, true)
}
