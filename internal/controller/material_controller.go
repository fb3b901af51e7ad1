package controller

import (
	"errors"
	"physics_master_backend/internal/service"
	"physics_master_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaterialController struct {
	Service *service.MaterialService
}

func NewMaterialController(svc *service.MaterialService) *MaterialController {
	return &MaterialController{Service: svc}
}

// @Summary List study materials
// @Tags materials
// @Produce json
// @Param subject query string false "filter by subject"
// @Success 200 {object} util.Response
// @Router /study-materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	materials, err := c.Service.List(ctx.Request.Context(), ctx.Query("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"materials": materials})
}

// @Summary Upload a study material
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "title"
// @Param file formData file false "material file"
// @Success 201 {object} util.Response
// @Router /admin/study-materials [post]
func (c *MaterialController) Create(ctx *gin.Context) {
	var req service.MaterialCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// optional file attachment
	file, _ := ctx.FormFile("file")

	m, err := c.Service.Create(ctx.Request.Context(), &req, file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, m)
}

// @Summary Delete a study material
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "material id"
// @Success 200 {object} util.Response
// @Router /admin/study-materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id"))
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
