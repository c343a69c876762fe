package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// CookieConfig controls the token-pair cookies the facade sets alongside
// the JSON response. Cookies are httpOnly and SameSite=Strict; Secure
// follows the environment.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func setTokenCookies(c *gin.Context, cfg CookieConfig, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, accessToken, int(cfg.AccessTTL.Seconds()), "/", "", cfg.Secure, true)
	c.SetCookie(refreshCookieName, refreshToken, int(cfg.RefreshTTL.Seconds()), "/", "", cfg.Secure, true)
}

func setAccessCookie(c *gin.Context, cfg CookieConfig, accessToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, accessToken, int(cfg.AccessTTL.Seconds()), "/", "", cfg.Secure, true)
}

func clearTokenCookies(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(accessCookieName, "", -1, "/", "", cfg.Secure, true)
	c.SetCookie(refreshCookieName, "", -1, "/", "", cfg.Secure, true)
}
