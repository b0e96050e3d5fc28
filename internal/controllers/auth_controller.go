package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"norhamtrans/internal/config"
	"norhamtrans/internal/middleware"
)

// AuthController gates the back office behind the single dispatcher account.
// The configured password is hashed once at startup; only the hash is kept.
type AuthController struct {
	email string
	hash  []byte
}

func NewAuthController() *AuthController {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.DispatcherPassword()), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Fatal("could not hash dispatcher password")
	}
	return &AuthController{email: config.DispatcherEmail(), hash: hash}
}

func (a *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.Email != a.email ||
		bcrypt.CompareHashAndPassword(a.hash, []byte(body.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"email": body.Email},
	})
}
