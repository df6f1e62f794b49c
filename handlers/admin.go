package handlers

import (
	"net/http"

	"demopay-svc/store"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AdminHandler exposes the user administration routes. There is no
// access control on them; this mirrors the demo's documented behavior
// and must not be reused as-is outside a demo.
type AdminHandler struct {
	users  *store.UserStore
	logger *zap.Logger
}

func NewAdminHandler(users *store.UserStore, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		users:  users,
		logger: logger,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "ListUsers")
	defer span.End()

	users := h.users.List()

	span.SetAttributes(attribute.Int("users.count", len(users)))
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "DeleteUser")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("user.id", id))

	if err := h.users.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	h.logger.Info("User deleted", zap.String("user_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
