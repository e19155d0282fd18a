package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillhive/middleware"
	"skillhive/models"
	"skillhive/services"
	"skillhive/utils"
)

type VideoController struct {
	youtubeService  *services.YouTubeService
	savedVideoModel *models.SavedVideoModel
}

func NewVideoController(youtubeService *services.YouTubeService, savedVideoModel *models.SavedVideoModel) *VideoController {
	return &VideoController{
		youtubeService:  youtubeService,
		savedVideoModel: savedVideoModel,
	}
}

// Search looks up educational videos for a topic.
func (c *VideoController) Search(ctx *gin.Context) {
	topic := ctx.Query("topic")
	if topic == "" {
		utils.BadRequestError(ctx, "topic query parameter is required", nil)
		return
	}

	maxResults, _ := strconv.Atoi(ctx.DefaultQuery("max_results", "12"))

	videos, err := c.youtubeService.Search(ctx.Request.Context(), topic, maxResults)
	if err != nil {
		utils.InternalServerError(ctx, "Video search failed", err)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Videos found", gin.H{"videos": videos})
}

type SaveVideoRequest struct {
	VideoURL    string `json:"video_url" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}

func (c *VideoController) Save(ctx *gin.Context) {
	var req SaveVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid video data", err)
		return
	}

	video, err := c.savedVideoModel.Create(middleware.UserID(ctx), req.VideoURL, req.Title, req.Thumbnail, req.Description)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to save video", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Video saved", video)
}

func (c *VideoController) GetSaved(ctx *gin.Context) {
	videos, err := c.savedVideoModel.GetByUser(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load saved videos", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Saved videos loaded", videos)
}

func (c *VideoController) MarkWatched(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid video id", err)
		return
	}

	if err := c.savedVideoModel.MarkWatched(id, middleware.UserID(ctx)); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Saved video not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to update video", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Video marked watched", nil)
}

func (c *VideoController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid video id", err)
		return
	}

	if err := c.savedVideoModel.Delete(id, middleware.UserID(ctx)); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Saved video not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to delete video", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Video deleted", nil)
}
