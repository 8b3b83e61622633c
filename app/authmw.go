package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"peminjaman-console/models"
	"peminjaman-console/session"
)

const SessionCookie = "console_session"

// Navigation targets of the route guard.
const (
	LoginPath    = "/login"
	NonAdminPath = "/user"
)

// Context keys set by AuthRequired.
const (
	CtxToken     = "token"
	CtxUser      = "user"
	CtxSessionID = "sessionID"
)

// AuthRequired is the first half of the route guard: no session means a
// redirect to the login screen. A valid session puts the backend token and
// the user record into the request context; the guard is re-evaluated on
// every request, never cached.
func AuthRequired(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(SessionCookie)
		if err != nil || ck.Value == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		sess, err := sessions.Get(c.Request.Context(), ck.Value)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(CtxSessionID, ck.Value)
		c.Set(CtxToken, sess.Token)
		c.Set(CtxUser, sess.User)
		c.Next()
	}
}

// AdminOnly is the second half: anyone whose role is not the administrator
// role is sent to the non-admin landing route.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := UserFrom(c)
		if !u.IsAdmin() {
			c.Redirect(http.StatusFound, NonAdminPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// TouchSession keeps active sessions alive, throttled per session id.
func TouchSession(sessions *session.Store, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetString(CtxSessionID); id != "" {
			_, _ = sessions.Touch(c.Request.Context(), id, throttle)
		}
		c.Next()
	}
}

// TokenFrom returns the backend bearer token for this request's session.
func TokenFrom(c *gin.Context) string { return c.GetString(CtxToken) }

// UserFrom returns the session user record, zero when unauthenticated.
func UserFrom(c *gin.Context) models.SessionUser {
	v, ok := c.Get(CtxUser)
	if !ok {
		return models.SessionUser{}
	}
	u, _ := v.(models.SessionUser)
	return u
}
