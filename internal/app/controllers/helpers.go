// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/smartmatch/internal/app/models"
)

// CookieConfig configures the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

const flashCookieName = "smartmatch_flash"

// detached keeps external work running when the client goes away
func detached(ctx *gin.Context) context.Context {
	return context.WithoutCancel(ctx.Request.Context())
}

func (cc CookieConfig) set(ctx *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(cc.Name, token, maxAge, "/", "", cc.Secure, true)
}

func (cc CookieConfig) clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(cc.Name, "", -1, "/", "", cc.Secure, true)
}

// flash is a one-shot page message carried across a redirect
type flash struct {
	Message string
	Type    models.MessageType
}

// setFlash stores "type|message"; gin url-escapes cookie values
func setFlash(ctx *gin.Context, message string, kind models.MessageType) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(flashCookieName, string(kind)+"|"+message, 60, "/", "", false, true)
}

// popFlash reads and clears the pending message
func popFlash(ctx *gin.Context) *flash {
	value, err := ctx.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	kind, message, ok := strings.Cut(value, "|")
	if !ok || message == "" {
		return nil
	}
	if models.MessageType(kind) != models.MessageTypeError {
		kind = string(models.MessageTypeSuccess)
	}
	return &flash{Message: message, Type: models.MessageType(kind)}
}

// parseIDParam parses a positive path id, 0 when absent or malformed
func parseIDParam(ctx *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
