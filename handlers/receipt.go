package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const receiptTemplate = `
==== Demo Payment Receipt ====

Order ID  : %s
Txn ID    : %s
Method    : %s
Amount    : %.2f
Status    : %s
Created   : %s

Note: This is a simulated payment (not real).
`

// DownloadReceipt renders the payment as a plain-text attachment named
// after the transaction id.
func (h *PaymentHandler) DownloadReceipt(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "DownloadReceipt")
	defer span.End()

	orderID := c.Param("orderId")
	span.SetAttributes(attribute.String("payment.order_id", orderID))

	payment, ok := h.payments.Get(orderID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}

	receipt := fmt.Sprintf(receiptTemplate,
		payment.OrderID,
		payment.TxnID,
		payment.Method,
		payment.Amount,
		payment.Status,
		payment.CreatedAt.Format(time.RFC3339),
	)

	h.logger.Info("Receipt downloaded", zap.String("order_id", payment.OrderID))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%s.txt", payment.TxnID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(receipt))
}
