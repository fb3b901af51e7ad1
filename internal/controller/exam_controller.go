package controller

import (
	"physics_master_backend/internal/service"
	"physics_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Get the sample paper (10 random physics questions)
// @Tags questions
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions/sample [get]
func (c *ExamController) GetSamplePaper(ctx *gin.Context) {
	paper, err := c.Service.SamplePaper()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// @Summary Get the full paper (all Tamil and Physics questions)
// @Tags questions
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions/full [get]
func (c *ExamController) GetFullPaper(ctx *gin.Context) {
	paper, err := c.Service.FullPaper()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, paper)
}

// @Summary Submit a test for scoring
// @Tags test
// @Accept json
// @Produce json
// @Param body body service.TestSubmission true "submitted answers"
// @Success 200 {object} util.Response
// @Router /test/submit [post]
func (c *ExamController) SubmitTest(ctx *gin.Context) {
	var sub service.TestSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !sub.TestType.Valid() {
		util.BadRequest(ctx, "test_type must be 'sample' or 'full'")
		return
	}

	result, err := c.Service.Submit(&sub)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
