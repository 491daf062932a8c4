package middleware

import (
	"net/http"

	"go-hris-web/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "hris_session"

// Session identifies the browser so page locks are scoped per user, not per
// request. A missing or malformed cookie gets a fresh id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err == nil {
			_, err = uuid.Parse(sid)
		}
		if err != nil {
			sid = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set("session_id", sid)
		ctx := contextutil.WithSessionID(c.Request.Context(), sid)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
