package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillhive/middleware"
	"skillhive/models"
	"skillhive/utils"
)

type UserController struct {
	userModel     *models.UserModel
	interestModel *models.InterestModel
}

func NewUserController(userModel *models.UserModel, interestModel *models.InterestModel) *UserController {
	return &UserController{
		userModel:     userModel,
		interestModel: interestModel,
	}
}

func (c *UserController) Profile(ctx *gin.Context) {
	user, err := c.userModel.GetByID(middleware.UserID(ctx))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "User not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to load profile", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Profile loaded", user)
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Picture  string `json:"picture"`
}

func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid profile data", err)
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		utils.BadRequestError(ctx, "Invalid username", err)
		return
	}

	if err := c.userModel.UpdateProfile(middleware.UserID(ctx), req.Username, req.Picture); err != nil {
		utils.InternalServerError(ctx, "Failed to update profile", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Profile updated", nil)
}

func (c *UserController) LoginHistory(ctx *gin.Context) {
	records, err := c.userModel.GetLoginHistory(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load login history", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Login history loaded", records)
}

type InterestRequest struct {
	Name string `json:"name" binding:"required"`
}

func (c *UserController) ListInterests(ctx *gin.Context) {
	interests, err := c.interestModel.GetAll()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load interests", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Interests loaded", interests)
}

func (c *UserController) CreateInterest(ctx *gin.Context) {
	var req InterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid interest data", err)
		return
	}

	interest, err := c.interestModel.Create(req.Name)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create interest", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Interest created", interest)
}

func (c *UserController) UpdateInterest(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid interest id", err)
		return
	}

	var req InterestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid interest data", err)
		return
	}

	if err := c.interestModel.Update(id, req.Name); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Interest not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to update interest", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Interest updated", nil)
}

func (c *UserController) DeleteInterest(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid interest id", err)
		return
	}

	if err := c.interestModel.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Interest not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to delete interest", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Interest deleted", nil)
}
