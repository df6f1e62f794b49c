package handlers

import (
	"net/http"

	"demopay-svc/middleware"
	"demopay-svc/models"
	"demopay-svc/store"
	"demopay-svc/util"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users  *store.UserStore
	logger *zap.Logger
}

func NewAuthHandler(users *store.UserStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		logger: logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "Register")
	defer span.End()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	span.SetAttributes(attribute.String("user.name", req.Username))

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		h.logger.Error("Failed to hash password", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		ID:           util.GenerateID("USR"),
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}

	// The store rejects duplicates inside its own lock, so two
	// concurrent registrations cannot both slip past the check.
	if err := h.users.Create(user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	middleware.RecordUserRegistered()

	h.logger.Info("User registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully!"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	_, span := otel.Tracer("demopay-service").Start(c.Request.Context(), "Login")
	defer span.End()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.LoginResponse{Success: false, Message: "Missing fields"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.LoginResponse{Success: false, Message: "Missing fields"})
		return
	}

	span.SetAttributes(attribute.String("user.name", req.Username))

	// Unknown user and wrong password produce the same message so the
	// response does not reveal which usernames exist.
	user, ok := h.users.FindByUsername(req.Username)
	if !ok {
		c.JSON(http.StatusOK, models.LoginResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusOK, models.LoginResponse{Success: false, Message: "Invalid username or password"})
		return
	}

	// No session or token is issued; this is a demo service.
	h.logger.Info("User logged in", zap.String("username", req.Username))
	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Message: "Login successful"})
}
