package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"skillhive/models"
	"skillhive/services"
	"skillhive/utils"
)

type AuthController struct {
	userModel  *models.UserModel
	jwtService *services.JWTService
}

func NewAuthController(userModel *models.UserModel, jwtService *services.JWTService) *AuthController {
	return &AuthController{
		userModel:  userModel,
		jwtService: jwtService,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		utils.BadRequestError(ctx, "Invalid username", err)
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		utils.BadRequestError(ctx, "Invalid email", err)
		return
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		utils.BadRequestError(ctx, "Weak password", err)
		return
	}

	if existing, err := c.userModel.GetByEmail(req.Email); err == nil && existing != nil {
		utils.ConflictError(ctx, "User with this email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to hash password", nil)
		return
	}

	user, err := c.userModel.Create(req.Username, req.Email, string(hashedPassword))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create user account", nil)
		return
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to generate token", nil)
		return
	}

	ctx.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created",
		User:    user,
		Token:   token,
	})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid request data", err)
		return
	}

	user, err := c.userModel.GetByEmail(req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.UnauthorizedError(ctx, "Invalid email or password")
			return
		}
		utils.InternalServerError(ctx, "Failed to look up user", nil)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.UnauthorizedError(ctx, "Invalid email or password")
		return
	}

	// Login history is best-effort, a failed insert must not block login.
	_ = c.userModel.AddLoginRecord(user.ID, ctx.ClientIP(), ctx.Request.UserAgent())

	token, err := c.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to generate token", nil)
		return
	}

	user.Password = ""
	ctx.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}
