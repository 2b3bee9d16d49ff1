// Package admin provides HTTP handlers for the back-office API.
package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/scamguard-vn/scamguard/internal/application/admin/usecases"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=200"`
}

// AuthHandler issues admin access tokens.
type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

// Login handles POST /api/admin/login
// @Summary Admin login
// @Description Verifies credentials and returns a bearer token with the admin profile
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} usecases.LoginResult
// @Failure 400 {object} utils.ErrorBody
// @Failure 401 {object} utils.ErrorBody
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Set(constants.ContextKeyLoginUsername, req.Username)

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Infow("admin login rejected", "username", req.Username, "client_ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Set(constants.ContextKeyAdminID, result.Admin.ID)
	c.Set(constants.ContextKeyAdminName, result.Admin.Username)
	c.Set(constants.ContextKeyAdminRole, result.Admin.Role)
	utils.OKResponse(c, result)
}
