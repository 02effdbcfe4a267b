package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"eyewear-store/internal/auth"
	"eyewear-store/internal/kvstore"
)

const (
	ProfileCookie = "profile_id"
	ProfileHeader = "X-Profile-ID"
	profileKey    = "profile"
	adminKey      = "admin_user"
	profileMaxAge = 365 * 24 * 60 * 60
)

// Profile identifica al visitante por cookie (o header) y le asigna uno nuevo si falta
func Profile() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(ProfileHeader)
		if id == "" {
			id, _ = c.Cookie(ProfileCookie)
		}
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(ProfileCookie, id, profileMaxAge, "/", "", false, true)
		}
		c.Header(ProfileHeader, id)
		c.Set(profileKey, id)
		c.Next()
	}
}

func ProfileID(c *gin.Context) string {
	return c.GetString(profileKey)
}

// ProfileStore retorna la vista del store del visitante actual
func ProfileStore(c *gin.Context, root *kvstore.Store) *kvstore.Store {
	return root.Scope(ProfileID(c))
}

// AdminGuard deja pasar con sesión válida del perfil o con bearer token válido
func AdminGuard(gate *auth.Gate, root *kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if user, err := gate.VerifyToken(token); err == nil {
				c.Set(adminKey, user)
				c.Next()
				return
			}
		}

		if gate.Session(ProfileStore(c, root)).IsAuthenticated(c.Request.Context()) {
			c.Set(adminKey, "session")
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin authentication required"})
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

// Logger registra cada request con zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("profile", ProfileID(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			zap.L().Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			zap.L().Warn("request", fields...)
		default:
			zap.L().Info("request", fields...)
		}
	}
}
