package middleware

import (
	"context"

	"github.com/bisagn/formalgen/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieMaxAge = 12 * 60 * 60

// SessionMiddleware scopes generated documents to a browser session.
// A missing cookie gets a fresh id; the id is only ever used as a
// cache-key component, so it carries no auth semantics.
func SessionMiddleware(c *gin.Context) {
	sid, err := c.Cookie(types.SessionCookie)
	if err != nil || sid == "" {
		sid = uuid.New().String()
		c.SetCookie(types.SessionCookie, sid, sessionCookieMaxAge, "/", "", false, true)
	}

	ctx := context.WithValue(c.Request.Context(), types.CtxSessionID, sid)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
