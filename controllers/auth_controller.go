package controllers

import (
	"github.com/gin-gonic/gin"

	"managehotel/services"
	"managehotel/utils"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *services.UserService
}

func NewAuthController(svc *services.AuthService, users *services.UserService) *AuthController {
	return &AuthController{Auth: svc, Users: users}
}

type LoginPayload struct {
	IdentityNumber string `json:"identityNumber" binding:"required"`
	Password       string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONBadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Auth.Login(payload.IdentityNumber, payload.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, LoginResult{Token: token, FullName: user.FullName, Role: user.Role})
}

func (ctl *AuthController) GetStaff(c *gin.Context) {
	users, err := ctl.Users.ListStaff()
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSONSuccess(c, users)
}
