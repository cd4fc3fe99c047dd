package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/controller"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
	"github.com/rs/zerolog/log"
)

type PaperController struct {
	paperService      service.PaperService
	submissionService service.SubmissionService
}

func NewPaperController(ps service.PaperService, ss service.SubmissionService) *PaperController {
	return &PaperController{paperService: ps, submissionService: ss}
}

// RegisterRoutes mounts the paper endpoints on an /api/v1 group.
func (c *PaperController) RegisterRoutes(rg *gin.RouterGroup) {
	papers := rg.Group("/papers")
	papers.POST("/generate", c.GeneratePaper)
	papers.POST("/clone", c.ClonePaper)
	papers.GET("/:id", c.GetPaper)
	papers.POST("/:id/submit", c.SubmitPaper)

	rg.GET("/users/:user_id/papers", c.ListUserPapers)
}

// GeneratePaper godoc
// @Summary (User) Generate a new mock-test paper
// @Description Draws quesCount random questions for the trade and year and stores them as a new paper owned by the caller.
// @Description If the pool holds fewer questions than requested, the whole pool is issued.
// @Tags User - Papers
// @Accept json
// @Produce json
// @Param request body dto.GeneratePaperRequest true "Trade, year, question count and the requesting user"
// @Success 201 {object} dto.PaperIssueResponse "paperId is the shareable paper code"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Trade not found"
// @Failure 422 {object} dto.ErrorResponse "No questions for this trade and year"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /papers/generate [post]
func (c *PaperController) GeneratePaper(ctx *gin.Context) {
	var req dto.GeneratePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "GeneratePaper", err)
		return
	}

	resp, err := c.paperService.GeneratePaper(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "GeneratePaper", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ClonePaper godoc
// @Summary (User) Get a personal copy of an existing paper
// @Description Creates a reshuffled copy of the paper identified by its code, with every response cleared.
// @Description A user who already holds a copy gets it back with message "already generated" (or 409 when duplicates are rejected).
// @Tags User - Papers
// @Accept json
// @Produce json
// @Param request body dto.ClonePaperRequest true "Paper code and the requesting user"
// @Success 201 {object} dto.PaperIssueResponse "New copy created"
// @Success 200 {object} dto.PaperIssueResponse "User already has a copy"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or malformed paper code"
// @Failure 404 {object} dto.ErrorResponse "Paper code not found"
// @Failure 409 {object} dto.ErrorResponse "Paper already attempted by this user"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /papers/clone [post]
func (c *PaperController) ClonePaper(ctx *gin.Context) {
	var req dto.ClonePaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "ClonePaper", err)
		return
	}

	resp, err := c.paperService.ClonePaper(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "ClonePaper", err)
		return
	}
	if resp.AlreadyExists {
		log.Info().Str("paperCode", resp.PaperID).Str("userID", req.UserID).Msg("ClonePaper: Returning existing copy")
		ctx.JSON(http.StatusOK, resp)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetPaper godoc
// @Summary (User) Get a paper with its questions
// @Description Correct answers are only included once the paper has been submitted.
// @Tags User - Papers
// @Produce json
// @Param id path string true "Paper document ID"
// @Success 200 {object} dto.PaperDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /papers/{id} [get]
func (c *PaperController) GetPaper(ctx *gin.Context) {
	paper, err := c.paperService.GetPaper(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, "GetPaper", err)
		return
	}
	ctx.JSON(http.StatusOK, paper)
}

// ListUserPapers godoc
// @Summary (User) List a user's papers
// @Description Newest first.
// @Tags User - Papers
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.PaperSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Missing user ID"
// @Failure 503 {object} dto.ErrorResponse "Store unavailable"
// @Router /users/{user_id}/papers [get]
func (c *PaperController) ListUserPapers(ctx *gin.Context) {
	papers, err := c.paperService.ListUserPapers(ctx.Request.Context(), ctx.Param("user_id"))
	if err != nil {
		controller.RespondError(ctx, "ListUserPapers", err)
		return
	}
	ctx.JSON(http.StatusOK, papers)
}

// SubmitPaper godoc
// @Summary (User) Submit responses for a paper
// @Description Grades the responses, stores them on the paper and returns the score. A paper can be submitted once.
// @Tags User - Papers
// @Accept json
// @Produce json
// @Param id path string true "Paper document ID"
// @Param submission body dto.SubmitPaperRequest true "Owner and responses"
// @Success 200 {object} dto.PaperResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Paper belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Paper not found"
// @Failure 409 {object} dto.ErrorResponse "Paper already submitted"
// @Router /papers/{id}/submit [post]
func (c *PaperController) SubmitPaper(ctx *gin.Context) {
	var req dto.SubmitPaperRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, "SubmitPaper", err)
		return
	}

	result, err := c.submissionService.SubmitPaper(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, "SubmitPaper", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
