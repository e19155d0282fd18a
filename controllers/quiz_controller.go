package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillhive/middleware"
	"skillhive/models"
	"skillhive/parsers"
	"skillhive/services"
	"skillhive/utils"
)

// ScoreStore is the score persistence surface the controller needs.
// Update and Delete are scoped to the owning user.
type ScoreStore interface {
	Create(userID, totalQuestions, correctAnswers, wrongAnswers int) (*models.Score, error)
	GetByUser(userID int) ([]models.Score, error)
	Update(scoreID string, userID, totalQuestions, correctAnswers, wrongAnswers int) error
	Delete(scoreID string, userID int) error
}

type QuizController struct {
	quizService *services.QuizService
	scoreModel  ScoreStore
}

func NewQuizController(quizService *services.QuizService, scoreModel ScoreStore) *QuizController {
	return &QuizController{
		quizService: quizService,
		scoreModel:  scoreModel,
	}
}

type QuizRequest struct {
	Profile        parsers.Profile `json:"profile"`
	RequiredSkills []string        `json:"required_skills"`
}

// Topics returns the quizzable topics derived from a profile.
func (c *QuizController) Topics(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid profile data", err)
		return
	}

	topics := c.quizService.QuizTopics(&req.Profile, req.RequiredSkills)
	utils.SuccessResponse(ctx, http.StatusOK, "Topics derived", gin.H{"topics": topics})
}

// Generate builds a personalized quiz for a profile. The service always
// returns a usable quiz, falling back to built-in questions when the
// generator is unavailable.
func (c *QuizController) Generate(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid profile data", err)
		return
	}

	quiz := c.quizService.GenerateQuiz(ctx.Request.Context(), &req.Profile, req.RequiredSkills)
	utils.SuccessResponse(ctx, http.StatusOK, "Quiz generated", gin.H{"quiz": quiz})
}

type ScoreRequest struct {
	TotalQuestions int `json:"total_questions" binding:"required"`
	CorrectAnswers int `json:"correct_answers"`
	WrongAnswers   int `json:"wrong_answers"`
}

func (c *QuizController) SubmitScore(ctx *gin.Context) {
	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid score data", err)
		return
	}

	if req.CorrectAnswers+req.WrongAnswers > req.TotalQuestions {
		utils.BadRequestError(ctx, "Answer counts exceed question count", nil)
		return
	}

	score, err := c.scoreModel.Create(middleware.UserID(ctx), req.TotalQuestions, req.CorrectAnswers, req.WrongAnswers)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to save score", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Score saved", score)
}

func (c *QuizController) GetScores(ctx *gin.Context) {
	scores, err := c.scoreModel.GetByUser(middleware.UserID(ctx))
	if err != nil {
		utils.InternalServerError(ctx, "Failed to load scores", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Scores loaded", scores)
}

func (c *QuizController) UpdateScore(ctx *gin.Context) {
	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(ctx, "Invalid score data", err)
		return
	}

	err := c.scoreModel.Update(ctx.Param("id"), middleware.UserID(ctx), req.TotalQuestions, req.CorrectAnswers, req.WrongAnswers)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Score not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to update score", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Score updated", nil)
}

func (c *QuizController) DeleteScore(ctx *gin.Context) {
	if err := c.scoreModel.Delete(ctx.Param("id"), middleware.UserID(ctx)); err != nil {
		if err == sql.ErrNoRows {
			utils.NotFoundError(ctx, "Score not found")
			return
		}
		utils.InternalServerError(ctx, "Failed to delete score", nil)
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "Score deleted", nil)
}
