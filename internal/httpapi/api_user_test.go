package storefrontserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shopilens/storefront-api/internal/domains/users/adapters/http/mapper"
	"github.com/shopilens/storefront-api/internal/domains/users/adapters/memory"
	usersapp "github.com/shopilens/storefront-api/internal/domains/users/application"
)

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service := usersapp.NewService(memory.NewRepository(), memory.NewSessionStore())
	return NewRouter(ApiHandleFunctions{
		UserAPI: NewUserAPI(service),
	})
}

func postJSON(t *testing.T, router *gin.Engine, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}
	return nil
}

const registerAyse = `{"username":"ayse","password":"s3cret-pass","firstName":"Ayşe","email":"ayse@example.com"}`

func TestRegister_CreatesAccount(t *testing.T) {
	router := newUserRouter(t)

	rec := postJSON(t, router, "/tr/api/auth/register", registerAyse)

	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data    mapper.User `json:"data"`
		Success bool        `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.True(t, env.Success)
	require.Equal(t, "ayse", env.Data.Username)
	require.Equal(t, "Ayşe", env.Data.FirstName)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	router := newUserRouter(t)
	postJSON(t, router, "/tr/api/auth/register", registerAyse)

	rec := postJSON(t, router, "/tr/api/auth/register", registerAyse)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	router := newUserRouter(t)

	rec := postJSON(t, router, "/tr/api/auth/register", `{"username":"ali","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	router := newUserRouter(t)
	postJSON(t, router, "/tr/api/auth/register", registerAyse)

	rec := postJSON(t, router, "/tr/api/auth/login", `{"username":"ayse","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_WrongPasswordUnauthorized(t *testing.T) {
	router := newUserRouter(t)
	postJSON(t, router, "/tr/api/auth/register", registerAyse)

	rec := postJSON(t, router, "/tr/api/auth/login", `{"username":"ayse","password":"wrong-password"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, sessionCookie(rec))
}

func TestLogin_UnknownUserUnauthorized(t *testing.T) {
	router := newUserRouter(t)

	rec := postJSON(t, router, "/tr/api/auth/login", `{"username":"ghost","password":"whatever-pass"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckout_RedirectsAnonymousToLogin(t *testing.T) {
	router := newUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tr/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/tr/login?callbackUrl=%2Ftr%2Fcheckout", rec.Header().Get("Location"))
}

func TestCheckout_AllowsActiveSession(t *testing.T) {
	router := newUserRouter(t)
	postJSON(t, router, "/tr/api/auth/register", registerAyse)
	login := postJSON(t, router, "/tr/api/auth/login", `{"username":"ayse","password":"s3cret-pass"}`)
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/tr/checkout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data struct {
			Username string `json:"username"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "ayse", env.Data.Username)
}

func TestLogout_InvalidatesSession(t *testing.T) {
	router := newUserRouter(t)
	postJSON(t, router, "/tr/api/auth/register", registerAyse)
	login := postJSON(t, router, "/tr/api/auth/login", `{"username":"ayse","password":"s3cret-pass"}`)
	cookie := sessionCookie(login)

	logout := postJSON(t, router, "/tr/api/auth/logout", "{}", cookie)
	require.Equal(t, http.StatusOK, logout.Code)
	cleared := sessionCookie(logout)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)

	// The old token no longer opens the checkout gate.
	req := httptest.NewRequest(http.MethodGet, "/tr/checkout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusFound, rec.Code)
}

func TestGetLogin_EchoesCallback(t *testing.T) {
	router := newUserRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tr/login?callbackUrl=%2Ftr%2Fcheckout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Data struct {
			CallbackURL string `json:"callbackUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, "/tr/checkout", env.Data.CallbackURL)
}
