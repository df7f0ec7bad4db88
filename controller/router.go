package controller

import (
	"sargalayam/auth"
	"sargalayam/utils"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []auth.Permission
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore) {
	live := NewLiveController()
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupResultController(db, live)...)
	routes = append(routes, setupPosterController(db, cacheStore)...)
	routes = append(routes, setupContactController(db)...)
	routes = append(routes, setupAuthController()...)
	routes = append(routes, setupLiveController(live)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, "/api"+route.Path, handlerfuncs...)
	}
}

func AuthMiddleware(roles []auth.Permission) gin.HandlerFunc {
	return func(r *gin.Context) {
		authCookie, err := r.Cookie("auth")
		if err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		token, err := auth.ParseToken(authCookie)
		if err != nil || !token.Valid {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		claims := &auth.Claims{}
		claims.FromJWTClaims(token.Claims)
		if err := claims.Valid(); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if len(roles) == 0 {
			r.Next()
			return
		}
		for _, requiredRole := range roles {
			if utils.Contains(claims.Permissions, requiredRole) {
				r.Next()
				return
			}
		}
		r.JSON(403, gin.H{"error": "Unauthorized"})
		r.Abort()
	}
}
