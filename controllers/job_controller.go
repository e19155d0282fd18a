package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillhive/models"
	"skillhive/parsers"
	"skillhive/services"
	"skillhive/utils"
)

type JobController struct {
	jobModel    *models.JobModel
	recommender *services.RecommendationService
}

func NewJobController(jobModel *models.JobModel, recommender *services.RecommendationService) *JobController {
	return &JobController{
		jobModel:    jobModel,
		recommender: recommender,
	}
}

func (c *JobController) List(ctx *gin.Context) {
	jobs, err := c.jobModel.GetAll()
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load jobs", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Jobs loaded", jobs)
}

func (c *JobController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job id", err)
		return
	}

	job, err := c.jobModel.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Job not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to load job", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Job loaded", job)
}

type CreateJobRequest struct {
	Title          string `json:"title" binding:"required"`
	CompanyType    string `json:"company_type"`
	Description    string `json:"description"`
	RequiredSkills string `json:"required_skills"`
	SalaryRange    string `json:"salary_range"`
	CareerGrowth   string `json:"career_growth"`
	Industry       string `json:"industry"`
}

func (c *JobController) Create(ctx *gin.Context) {
	var req CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid job data", err)
		return
	}

	job, err := c.jobModel.Create(&models.Job{
		Title:          req.Title,
		CompanyType:    req.CompanyType,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		SalaryRange:    req.SalaryRange,
		CareerGrowth:   req.CareerGrowth,
		Industry:       req.Industry,
	})
	if err != nil {
		utils.InternalServerError(ctx, "Failed to create job", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Job created", job)
}

func (c *JobController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		utils.BadRequestError(ctx, "Invalid job id", err)
		return
	}

	if err := c.jobModel.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Job not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to delete job", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Job deleted", nil)
}

type RecommendRequest struct {
	Profile parsers.Profile `json:"profile" binding:"required"`
}

// Recommend re-runs the recommendation rules against an already parsed
// profile, so the frontend can refresh cards without re-uploading the CV.
func (c *JobController) Recommend(ctx *gin.Context) {
	var req RecommendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid profile data", err)
		return
	}

	recommendations := c.recommender.Recommend(&req.Profile)
	utils.SuccessResponse(ctx, http.StatusOK, "Recommendations generated", gin.H{"recommendations": recommendations})
}
