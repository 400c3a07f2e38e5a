package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"beach-reserve/internal/domain/user"
	"beach-reserve/internal/pkg/cookie"
	"beach-reserve/internal/pkg/jwt"
	"beach-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
	users      queries.UserQueries
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
	ctxActorKey    = "actor"
)

func NewAuthMiddleware(jwtService *jwt.Service, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			slog.Warn("Token validation failed in auth middleware", "error", errString(err))
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUserRoleKey, user.Role(claims.Role))
		c.Set("jwt_claims", map[string]any{
			"user_id": claims.UserID.String(),
			"role":    claims.Role,
		})
		c.Next()
	}
}

// RequireRole allows only the listed roles. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

// RequireVendorActor loads the caller's account and verifies it operates a
// stand. The resolved view is stored in context for handlers that need the
// actor's vendor scope. Must run after RequireAuth.
func (m *AuthMiddleware) RequireVendorActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		actor, err := m.users.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Account unavailable",
			})
			c.Abort()
			return
		}
		if actor.Role != user.RoleVendor.String() && actor.Role != user.RoleAdmin.String() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Vendor access required",
			})
			c.Abort()
			return
		}
		if actor.VendorID == nil {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No stand assigned to this account",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, *actor)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func errString(err error) string {
	if err == nil {
		return "wrong token type"
	}
	return err.Error()
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// GetActor returns the vendor-scoped account loaded by RequireVendorActor.
func GetActor(c *gin.Context) (queries.AuthorizedUserView, bool) {
	actor, exists := c.Get(ctxActorKey)
	if !exists {
		return queries.AuthorizedUserView{}, false
	}

	view, ok := actor.(queries.AuthorizedUserView)
	return view, ok
}
