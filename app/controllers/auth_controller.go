package controllers

import (
	"net/http"

	"github.com/vitrinehq/vitrine/app/services"
	"github.com/vitrinehq/vitrine/pkg/ctx"
	"github.com/vitrinehq/vitrine/pkg/resource"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a bearer token.
// POST /api/login
func (ac *AuthController) Login(c *ctx.Context) {
	var input loginInput
	if errs, err := c.Bind(&input); err != nil {
		c.Error(http.StatusBadRequest, "Malformed request body")
		return
	} else if len(errs) > 0 {
		c.ValidationError(errs)
		return
	}

	token, err := ac.service.Login(input.Email, input.Password)
	if err != nil {
		c.Error(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.Success(resource.Map{"token": token})
}
