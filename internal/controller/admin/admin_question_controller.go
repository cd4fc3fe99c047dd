package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/controller"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionBankService  service.QuestionBankService
	questionDraftService service.QuestionDraftService
}

func NewAdminQuestionController(qbs service.QuestionBankService, qds service.QuestionDraftService) *AdminQuestionController {
	return &AdminQuestionController{questionBankService: qbs, questionDraftService: qds}
}

func (c *AdminQuestionController) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.POST("", c.CreateQuestion)
	questions.POST("/batch", c.CreateQuestions)
	questions.POST("/drafts", c.DraftQuestions)
	questions.GET("", c.ListQuestions)
	questions.DELETE("/:id", c.DeleteQuestion)
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question with four options and the correct label"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateQuestion", err)
		return
	}
	question, err := c.questionBankService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateQuestion", err)
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// CreateQuestions godoc
// @Summary (Admin) Add many questions at once
// @Description All questions are validated first; nothing is stored if any of them is invalid.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param batch body dto.QuestionBatchCreateDTO true "Up to 500 questions"
// @Success 201 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Router /admin/questions/batch [post]
func (c *AdminQuestionController) CreateQuestions(ctx *gin.Context) {
	var req dto.QuestionBatchCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin CreateQuestions", err)
		return
	}
	questions, err := c.questionBankService.CreateQuestions(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateQuestions", err)
		return
	}
	ctx.JSON(http.StatusCreated, questions)
}

// ListQuestions godoc
// @Summary (Admin) Browse the question bank
// @Tags Admin - Questions
// @Produce json
// @Param trade_id query int false "Trade ID"
// @Param year query int false "Year"
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.PageDTO[dto.QuestionResponseDTO]
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Router /admin/questions [get]
func (c *AdminQuestionController) ListQuestions(ctx *gin.Context) {
	var q dto.QuestionListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.RespondBindError(ctx, "Admin ListQuestions", err)
		return
	}
	page, err := c.questionBankService.ListQuestions(ctx.Request.Context(), q)
	if err != nil {
		controller.RespondError(ctx, "Admin ListQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// DeleteQuestion godoc
// @Summary (Admin) Retire a question
// @Description Soft-deletes the question. Papers already issued keep their copy.
// @Tags Admin - Questions
// @Param id path int true "Question ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseUintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.questionBankService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, "Admin DeleteQuestion", err)
		return
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	ctx.Status(http.StatusNoContent)
}

// DraftQuestions godoc
// @Summary (Admin) Draft questions with Gemini
// @Description Returns draft questions for review. Nothing is stored; post the accepted drafts to /admin/questions/batch.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param request body dto.QuestionDraftRequestDTO true "Trade, year, topic and count"
// @Success 200 {array} dto.QuestionCreateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Failure 503 {object} dto.ErrorResponse "Drafting not configured"
// @Router /admin/questions/drafts [post]
func (c *AdminQuestionController) DraftQuestions(ctx *gin.Context) {
	var req dto.QuestionDraftRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "Admin DraftQuestions", err)
		return
	}
	drafts, err := c.questionDraftService.DraftQuestions(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin DraftQuestions", err)
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}
