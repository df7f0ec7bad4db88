package controller

import (
	"crypto/subtle"

	"sargalayam/auth"
	"sargalayam/config"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func setupAuthController() []RouteInfo {
	e := NewAuthController()
	baseUrl := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/logout", HandlerFunc: e.logoutHandler()},
	}
	for i, route := range routes {
		routes[i].Path = baseUrl + route.Path
	}
	return routes
}

// @id Login
// @Description Authenticates the admin and sets the auth cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login LoginRequest
		if err := c.BindJSON(&login); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		cfg := config.Env()
		userOk := subtle.ConstantTimeCompare([]byte(login.Username), []byte(cfg.AdminUser))
		passOk := subtle.ConstantTimeCompare([]byte(login.Password), []byte(cfg.AdminPassword))
		if userOk&passOk != 1 {
			c.JSON(401, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := auth.CreateToken(cfg.AdminUser, []auth.Permission{auth.PermissionAdmin})
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.SetCookie("auth", token, 60*60*24*7, "/", "", config.IsProduction(), true)
		c.JSON(200, gin.H{"username": cfg.AdminUser})
	}
}

// @id Logout
// @Description Clears the auth cookie
// @Tags auth
// @Produce json
// @Success 204
// @Router /auth/logout [post]
func (e *AuthController) logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("auth", "", -1, "/", "", config.IsProduction(), true)
		c.JSON(204, nil)
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
