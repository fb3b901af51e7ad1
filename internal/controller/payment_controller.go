package controller

import (
	"errors"
	"net/http"
	"physics_master_backend/internal/service"
	"physics_master_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	Service *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// @Summary Verify a gateway payment and grant set access
// @Tags payment
// @Accept json
// @Produce json
// @Param body body service.PaymentVerification true "gateway callback data"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /payment/verify [post]
func (c *PaymentController) VerifyPayment(ctx *gin.Context) {
	var req service.PaymentVerification
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.Verify(&req)
	if err != nil {
		if errors.Is(err, util.ErrInvalidSignature) {
			util.Error(ctx, http.StatusBadRequest, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary Check whether a user has purchased a set
// @Tags payment
// @Produce json
// @Param userId path string true "user id"
// @Param setNumber path int true "set number"
// @Success 200 {object} util.Response
// @Router /payment/check-access/{userId}/{setNumber} [get]
func (c *PaymentController) CheckAccess(ctx *gin.Context) {
	userID := ctx.Param("userId")
	setNumber, err := strconv.Atoi(ctx.Param("setNumber"))
	if err != nil || setNumber <= 0 {
		util.BadRequest(ctx, "invalid set number")
		return
	}

	hasAccess, err := c.Service.CheckAccess(userID, setNumber)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"has_access": hasAccess, "set_number": setNumber})
}
