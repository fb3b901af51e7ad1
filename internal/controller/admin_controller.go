package controller

import (
	"errors"
	"fmt"
	"physics_master_backend/internal/service"
	"physics_master_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	Service *service.AdminService
}

func NewAdminController(svc *service.AdminService) *AdminController {
	return &AdminController{Service: svc}
}

// @Summary Bulk insert questions
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body []service.QuestionCreateRequest true "questions"
// @Success 201 {object} util.Response
// @Router /admin/questions [post]
func (c *AdminController) BulkInsertQuestions(ctx *gin.Context) {
	var reqs []service.QuestionCreateRequest
	if err := ctx.ShouldBindJSON(&reqs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	inserted, err := c.Service.BulkInsertQuestions(ctx.Request.Context(), reqs)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"inserted": inserted})
}

// @Summary List questions of a set (with answers)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param set_number query int true "set number"
// @Success 200 {object} util.Response
// @Router /admin/questions [get]
func (c *AdminController) ListQuestions(ctx *gin.Context) {
	setNumber, err := strconv.Atoi(ctx.Query("set_number"))
	if err != nil || setNumber <= 0 {
		util.BadRequest(ctx, "invalid set_number")
		return
	}

	qs, err := c.Service.ListQuestions(setNumber)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"questions": qs})
}

// @Summary Update a question
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Param body body service.QuestionUpdateRequest true "updated fields"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	err := c.Service.DeleteQuestion(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary List question sets with per-subject counts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/question-sets [get]
func (c *AdminController) ListSets(ctx *gin.Context) {
	sets, err := c.Service.SetSummaries(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sets": sets})
}

// @Summary Delete all questions of a set
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param setNumber path int true "set number"
// @Success 200 {object} util.Response
// @Router /admin/question-sets/{setNumber} [delete]
func (c *AdminController) DeleteSet(ctx *gin.Context) {
	setNumber, err := strconv.Atoi(ctx.Param("setNumber"))
	if err != nil || setNumber <= 0 {
		util.BadRequest(ctx, "invalid set number")
		return
	}

	deleted, err := c.Service.DeleteSet(ctx.Request.Context(), setNumber)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": fmt.Sprintf("Set %d deleted", setNumber), "deleted_questions": deleted})
}

// @Summary List registered users
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.Service.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"users": users})
}

// @Summary List test attempts
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/test-attempts [get]
func (c *AdminController) ListAttempts(ctx *gin.Context) {
	attempts, err := c.Service.ListAttempts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"attempts": attempts})
}
