package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillhive/models"
	"skillhive/utils"
)

type AdminController struct {
	userModel       *models.UserModel
	scoreModel      *models.ScoreModel
	savedVideoModel *models.SavedVideoModel
	jobModel        *models.JobModel
}

func NewAdminController(userModel *models.UserModel, scoreModel *models.ScoreModel, savedVideoModel *models.SavedVideoModel, jobModel *models.JobModel) *AdminController {
	return &AdminController{
		userModel:       userModel,
		scoreModel:      scoreModel,
		savedVideoModel: savedVideoModel,
		jobModel:        jobModel,
	}
}

// Stats reports platform-wide counts for the admin dashboard.
func (c *AdminController) Stats(ctx *gin.Context) {
	users, err := c.userModel.Count()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load stats", nil)
		return
	}
	scores, err := c.scoreModel.Count()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load stats", nil)
		return
	}
	videos, err := c.savedVideoModel.Count()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load stats", nil)
		return
	}
	jobs, err := c.jobModel.Count()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load stats", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Stats loaded", gin.H{
		"users":        users,
		"quiz_scores":  scores,
		"saved_videos": videos,
		"jobs":         jobs,
	})
}

func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.userModel.GetAll()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load users", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Users loaded", users)
}

func (c *AdminController) ListScores(ctx *gin.Context) {
	scores, err := c.scoreModel.GetAll()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load scores", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Scores loaded", scores)
}

func (c *AdminController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid user id", err)
		return
	}

	if err := c.userModel.Delete(id); err != nil {
		utils.InternalServerError(ctx, "Failed to delete user", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "User deleted", nil)
}
