package controller

import (
	"physics_master_backend/internal/service"
	"physics_master_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	Service *service.FeedbackService
}

func NewFeedbackController(svc *service.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: svc}
}

// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param body body service.FeedbackCreateRequest true "feedback"
// @Success 201 {object} util.Response
// @Router /feedback [post]
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req service.FeedbackCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	f, err := c.Service.Create(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"message": "Feedback submitted successfully", "id": f.ID})
}

// @Summary List feedback
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/feedback [get]
func (c *FeedbackController) List(ctx *gin.Context) {
	fs, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"feedback": fs})
}
