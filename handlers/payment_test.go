package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"demopay-svc/models"
	"demopay-svc/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func setupPaymentTest(t *testing.T) (*store.PaymentStore, *gin.Engine) {
	payments := store.NewPaymentStore()
	logger := zaptest.NewLogger(t, zaptest.Level(zap.InfoLevel))
	handler := NewPaymentHandler(payments, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/create-payment", handler.CreatePayment)
	router.POST("/api/confirm-payment", handler.ConfirmPayment)
	router.GET("/api/payments", handler.ListPayments)
	router.GET("/api/payment/:orderId", handler.GetPayment)
	router.GET("/api/receipt/:orderId", handler.DownloadReceipt)

	return payments, router
}

func createPayment(t *testing.T, router *gin.Engine, method string, amount float64) models.Payment {
	t.Helper()

	w := postJSON(t, router, "/api/create-payment", models.CreatePaymentRequest{
		Method: method,
		Amount: &amount,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected create-payment to succeed, got %d: %s", w.Code, w.Body.String())
	}

	var payment models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &payment); err != nil {
		t.Fatalf("Failed to parse payment: %v", err)
	}
	return payment
}

func TestPaymentHandler_CreatePayment_Success(t *testing.T) {
	payments, router := setupPaymentTest(t)

	payment := createPayment(t, router, "card", 500)

	if !strings.HasPrefix(payment.OrderID, "ORDER_") {
		t.Errorf("Expected orderId prefix ORDER_, got %s", payment.OrderID)
	}
	if !strings.HasPrefix(payment.TxnID, "TXN_") {
		t.Errorf("Expected txnId prefix TXN_, got %s", payment.TxnID)
	}
	if payment.Status != models.PaymentStatusPending {
		t.Errorf("Expected status PENDING, got %s", payment.Status)
	}
	if payment.Amount != 500 {
		t.Errorf("Expected amount 500, got %f", payment.Amount)
	}
	if payment.CreatedAt.IsZero() {
		t.Error("Expected createdAt to be set")
	}
	if payment.UpdatedAt != nil {
		t.Errorf("Expected updatedAt to be absent, got %v", payment.UpdatedAt)
	}
	if payments.Len() != 1 {
		t.Errorf("Expected 1 payment in store, got %d", payments.Len())
	}
}

func TestPaymentHandler_CreatePayment_MissingFields(t *testing.T) {
	payments, router := setupPaymentTest(t)

	amount := 500.0
	cases := []models.CreatePaymentRequest{
		{Method: "", Amount: &amount},
		{Method: "card", Amount: nil},
		{},
	}

	for _, req := range cases {
		w := postJSON(t, router, "/api/create-payment", req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status %d for %+v, got %d", http.StatusBadRequest, req, w.Code)
		}
	}

	if payments.Len() != 0 {
		t.Errorf("Expected no payments in store, got %d", payments.Len())
	}
}

func TestPaymentHandler_CreatePayment_ZeroAmount(t *testing.T) {
	// A zero amount is present, just zero; it must not be rejected as
	// missing.
	_, router := setupPaymentTest(t)

	payment := createPayment(t, router, "card", 0)
	if payment.Amount != 0 {
		t.Errorf("Expected amount 0, got %f", payment.Amount)
	}
}

func TestPaymentHandler_ConfirmPayment_Failed(t *testing.T) {
	_, router := setupPaymentTest(t)

	created := createPayment(t, router, "card", 500)

	succeed := false
	w := postJSON(t, router, "/api/confirm-payment", models.ConfirmPaymentRequest{
		OrderID: created.OrderID,
		Succeed: &succeed,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var confirmed models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("Failed to parse payment: %v", err)
	}

	if confirmed.Status != models.PaymentStatusFailed {
		t.Errorf("Expected status FAILED, got %s", confirmed.Status)
	}
	if confirmed.UpdatedAt == nil {
		t.Fatal("Expected updatedAt to be set")
	}
	if !confirmed.UpdatedAt.After(confirmed.CreatedAt) {
		t.Errorf("Expected updatedAt %v after createdAt %v", confirmed.UpdatedAt, confirmed.CreatedAt)
	}
}

func TestPaymentHandler_ConfirmPayment_DefaultsToSuccess(t *testing.T) {
	_, router := setupPaymentTest(t)

	created := createPayment(t, router, "upi", 250)

	// succeed omitted entirely
	w := postJSON(t, router, "/api/confirm-payment", map[string]string{"orderId": created.OrderID})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var confirmed models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &confirmed); err != nil {
		t.Fatalf("Failed to parse payment: %v", err)
	}
	if confirmed.Status != models.PaymentStatusSuccess {
		t.Errorf("Expected status SUCCESS, got %s", confirmed.Status)
	}
}

func TestPaymentHandler_ConfirmPayment_NotFound(t *testing.T) {
	_, router := setupPaymentTest(t)

	w := postJSON(t, router, "/api/confirm-payment", models.ConfirmPaymentRequest{OrderID: "ORDER_MISSING"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestPaymentHandler_ListPayments_SortedDescending(t *testing.T) {
	payments, router := setupPaymentTest(t)

	base := time.Now()
	payments.Create(models.Payment{OrderID: "ORDER_P1", Status: models.PaymentStatusPending, CreatedAt: base})
	payments.Create(models.Payment{OrderID: "ORDER_P2", Status: models.PaymentStatusPending, CreatedAt: base.Add(time.Second)})

	req := httptest.NewRequest("GET", "/api/payments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var listed []models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 payments, got %d", len(listed))
	}
	if listed[0].OrderID != "ORDER_P2" || listed[1].OrderID != "ORDER_P1" {
		t.Errorf("Expected [P2, P1] ordering, got [%s, %s]", listed[0].OrderID, listed[1].OrderID)
	}
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	_, router := setupPaymentTest(t)

	created := createPayment(t, router, "card", 500)

	req := httptest.NewRequest("GET", "/api/payment/"+created.OrderID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var fetched models.Payment
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("Failed to parse payment: %v", err)
	}
	if fetched.OrderID != created.OrderID || fetched.TxnID != created.TxnID {
		t.Errorf("Fetched payment does not match created one: %+v vs %+v", fetched, created)
	}
}

func TestPaymentHandler_GetPayment_NotFound(t *testing.T) {
	_, router := setupPaymentTest(t)

	req := httptest.NewRequest("GET", "/api/payment/ORDER_MISSING", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
