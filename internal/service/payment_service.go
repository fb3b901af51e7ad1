package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"physics_master_backend/internal/config"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/internal/util"
	"physics_master_backend/pkg/logger"
	"physics_master_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService verifies gateway payment signatures and records purchased
// set access. Order creation happens against the gateway directly and is not
// handled here.
type PaymentService struct {
	AccessRepo *repository.AccessRepository
	Cfg        *config.Config
}

func NewPaymentService(accessRepo *repository.AccessRepository, cfg *config.Config) *PaymentService {
	return &PaymentService{
		AccessRepo: accessRepo,
		Cfg:        cfg,
	}
}

type PaymentVerification struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	SetNumber int    `json:"set_number" binding:"required,gt=0"`
}

type VerifyResult struct {
	Success   bool `json:"success"`
	SetNumber int  `json:"set_number"`
}

// Verify recomputes HMAC-SHA256 over "order_id|payment_id" with the gateway
// secret and grants access only on a constant-time match. A duplicate
// payment id means the grant already happened; that retry is answered with
// success instead of a second row.
func (s *PaymentService) Verify(req *PaymentVerification) (*VerifyResult, error) {
	expected := signPayment(s.Cfg.Razorpay.KeySecret, req.OrderID, req.PaymentID)

	if !hmac.Equal([]byte(expected), []byte(req.Signature)) {
		monitoring.PaymentVerifyCounter.WithLabelValues("invalid_signature").Inc()
		logger.Log.Warn("payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
			zap.String("user_id", req.UserID),
		)
		return nil, util.ErrInvalidSignature
	}

	access := &model.PurchasedAccess{
		UserID:      req.UserID,
		SetNumber:   req.SetNumber,
		OrderID:     req.OrderID,
		PaymentID:   req.PaymentID,
		Active:      true,
		PurchasedAt: time.Now().UTC(),
	}

	if err := s.AccessRepo.Create(access); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// retry of an already recorded payment; answer with the
			// original grant
			monitoring.PaymentVerifyCounter.WithLabelValues("duplicate").Inc()
			existing, ferr := s.AccessRepo.FindByPaymentID(req.PaymentID)
			if ferr != nil {
				return nil, ferr
			}
			return &VerifyResult{Success: true, SetNumber: existing.SetNumber}, nil
		}
		return nil, err
	}

	monitoring.PaymentVerifyCounter.WithLabelValues("success").Inc()
	logger.Log.Info("purchased access granted",
		zap.String("user_id", req.UserID),
		zap.Int("set_number", req.SetNumber),
		zap.String("payment_id", req.PaymentID),
	)

	return &VerifyResult{Success: true, SetNumber: req.SetNumber}, nil
}

// CheckAccess reads the store directly; no caching.
func (s *PaymentService) CheckAccess(userID string, setNumber int) (bool, error) {
	return s.AccessRepo.HasActive(userID, setNumber)
}

func signPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
