package routes

import (
	"norhamtrans/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	ctrl := controllers.NewAuthController()
	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Login)
	}
}
