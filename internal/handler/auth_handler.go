package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/jwtutil"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// Signup registers a new account. When companyName is supplied the
// company is found or created by its trimmed name; the user who creates
// a new company becomes its company_admin, a user joining an existing
// one starts as a plain user.
func Signup(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.SignupCounter.Inc()

	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		CompanyName string `json:"companyName,omitempty"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse signup request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.CompanyName = strings.TrimSpace(req.CompanyName)

	if !model.ValidUserName(req.Name) {
		prometheus.RecordAuthError("invalid_name")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Name must be between 2 and 50 characters"})
	}
	if !model.ValidEmail(req.Email) {
		prometheus.RecordAuthError("invalid_email")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Please provide a valid email"})
	}
	if !model.ValidPassword(req.Password) {
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Password must be at least 6 characters"})
	}
	if req.CompanyName != "" && !model.ValidCompanyName(req.CompanyName) {
		prometheus.RecordAuthError("invalid_company_name")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Company name must be between 2 and 100 characters"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var existing model.User
	if err := database.GetDB().Where("email = ?", req.Email).First(&existing).Error; err == nil {
		log.Warn("Email already registered", zap.String("email", req.Email))
		prometheus.RecordAuthError("email_already_exists")
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "User with that email already exists"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Registration failed"})
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.RoleUser,
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if req.CompanyName != "" {
			var company model.Company
			result := tx.Where("name = ?", req.CompanyName).First(&company)
			if result.Error != nil {
				company = model.Company{Name: req.CompanyName}
				if err := tx.Create(&company).Error; err != nil {
					return err
				}
				// First user of the company administers it.
				user.Role = model.RoleCompanyAdmin
			}
			user.CompanyID = &company.ID
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent signup for the same email.
			prometheus.RecordAuthError("email_already_exists")
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "User with that email already exists"})
		}
		log.Error("Failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Registration failed"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.CompanyID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User registered",
		zap.String("email", user.Email),
		zap.String("role", user.Role))

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Login verifies credentials and issues a token
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := database.GetDB().Where("email = ?", req.Email).First(&user).Error; err != nil {
		log.Warn("Login for unknown email", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Invalid credentials"})
	}

	now := time.Now()
	user.LastLogin = &now
	if err := database.GetDB().Model(&user).Update("last_login", now).Error; err != nil {
		// Login still succeeds; the timestamp is best effort.
		log.Warn("Failed to update last login", zap.Error(err))
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.CompanyID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Token error"})
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("email", user.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Logout is stateless; tokens simply expire. Kept for API symmetry.
func Logout(c echo.Context) error {
	prometheus.DecreaseActiveTokens()
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out successfully"})
}

// Me returns the authenticated user
func Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// ChangePassword re-hashes the password after verifying the current one
func ChangePassword(c echo.Context) error {
	log := logger.FromContext(c)

	user := middleware.CurrentUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Not authorized"})
	}

	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse change-password request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if !model.ValidPassword(req.NewPassword) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Password must be at least 6 characters"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "Current password is incorrect"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Password change failed"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Model(user).Update("password", string(hashed)).Error; err != nil {
		log.Error("Failed to update password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Password change failed"})
	}

	log.Info("Password changed", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Password changed successfully"})
}
