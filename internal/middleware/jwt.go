package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fleet_dispatch/internal/models"
)

// secret starts from the raw environment so token helpers work in tests that
// never build a config; main installs the loaded value via SetSecret, which
// also picks up a JWT_SECRET that only exists in .env.
var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// SetSecret installs the signing secret from the loaded configuration. Call
// before serving; tokens minted under a previous secret stop verifying.
func SetSecret(s string) {
	secret = []byte(s)
}

func GenerateToken(accountID uint, role models.AccountRole) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"role":       string(role),
		"exp":        time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
}

// viewerFromHeader parses a Bearer credential into a Viewer. Returns false for
// a missing header, a bad token or malformed claims.
func viewerFromHeader(authHeader string) (Viewer, bool) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return Viewer{}, false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return Viewer{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Viewer{}, false
	}
	id, ok := claims["account_id"].(float64)
	if !ok {
		return Viewer{}, false
	}
	role, ok := claims["role"].(string)
	if !ok {
		return Viewer{}, false
	}
	return Viewer{AccountID: uint(id), Role: models.AccountRole(role)}, true
}

// RequireAuth ensures a valid JWT is present and exposes the viewer to
// downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := viewerFromHeader(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		c.Set("account_id", viewer.AccountID)
		c.Set("role", viewer.Role)
		c.Request = c.Request.WithContext(WithViewer(c.Request.Context(), viewer))

		c.Next()
	}
}

// RequireMinRole ensures the JWT is valid and the account's role grants at
// least min. Unauthenticated and underprivileged callers get distinct codes.
func RequireMinRole(min models.AccountRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := RequireAuth()
		req(c)
		if c.IsAborted() {
			return
		}

		role := c.MustGet("role").(models.AccountRole)
		if !role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches a viewer to the request context when a valid token is
// present but never rejects. The GraphQL layer raises its own per-field
// unauthenticated errors.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewer, ok := viewerFromHeader(c.GetHeader("Authorization")); ok {
			c.Request = c.Request.WithContext(WithViewer(c.Request.Context(), viewer))
		}
		c.Next()
	}
}
