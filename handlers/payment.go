package handlers

import (
	"net/http"
	"time"

	"demopay-svc/middleware"
	"demopay-svc/models"
	"demopay-svc/store"
	"demopay-svc/util"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	payments *store.PaymentStore
	logger   *zap.Logger
}

func NewPaymentHandler(payments *store.PaymentStore, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "CreatePayment")
	defer span.End()

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	// Amount binds as a pointer so an explicit zero is accepted; only
	// a missing amount or method is rejected.
	if req.Method == "" || req.Amount == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	payment := models.Payment{
		OrderID:   util.GenerateID("ORDER"),
		TxnID:     util.GenerateID("TXN"),
		Method:    req.Method,
		Amount:    *req.Amount,
		Status:    models.PaymentStatusPending,
		CreatedAt: time.Now(),
	}

	h.payments.Create(payment)

	span.SetAttributes(
		attribute.String("payment.order_id", payment.OrderID),
		attribute.String("payment.method", payment.Method),
		attribute.Float64("payment.amount", payment.Amount),
	)

	h.logger.Info("New payment",
		zap.String("order_id", payment.OrderID),
		zap.String("txn_id", payment.TxnID),
		zap.String("method", payment.Method),
		zap.Float64("amount", payment.Amount),
	)
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "ConfirmPayment")
	defer span.End()

	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	// succeed defaults to true when the field is omitted
	succeed := true
	if req.Succeed != nil {
		succeed = *req.Succeed
	}

	span.SetAttributes(
		attribute.String("payment.order_id", req.OrderID),
		attribute.Bool("payment.succeed", succeed),
	)

	payment, err := h.payments.Confirm(req.OrderID, succeed)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	middleware.RecordPaymentProcessed(string(payment.Status))

	h.logger.Info("Payment confirmed",
		zap.String("order_id", payment.OrderID),
		zap.String("status", string(payment.Status)),
	)
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ListPayments(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "ListPayments")
	defer span.End()

	payments := h.payments.List()

	span.SetAttributes(attribute.Int("payments.count", len(payments)))
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPayment(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "GetPayment")
	defer span.End()

	orderID := c.Param("orderId")
	span.SetAttributes(attribute.String("payment.order_id", orderID))

	payment, ok := h.payments.Get(orderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, payment)
}
