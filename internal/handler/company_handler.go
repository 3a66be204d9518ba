package handler

import (
	"crypto/rand"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// requireCompanyAdmin gates the company-management operations: the
// requester needs a company and a company_admin or admin role. On
// failure the 403 response is already written and ok is false.
func requireCompanyAdmin(c echo.Context) (*model.User, uint, bool) {
	user := middleware.CurrentUser(c)
	if user == nil || user.CompanyID == nil {
		prometheus.RecordAuthError("no_company_context")
		_ = c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "Unauthorized"})
		return nil, 0, false
	}
	if !user.CanManageCompany() {
		prometheus.RecordAuthError("insufficient_role")
		_ = c.JSON(http.StatusForbidden, echo.Map{"success": false, "message": "Insufficient role"})
		return nil, 0, false
	}
	return user, *user.CompanyID, true
}

// GetMyCompany returns the requester's company summary
func GetMyCompany(c echo.Context) error {
	log := logger.FromContext(c)

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User has no company"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var company model.Company
	if err := database.GetDB().First(&company, *companyID).Error; err != nil {
		log.Error("Company not found", zap.Uint("company_id", *companyID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Company not found"})
	}

	var userCount int64
	if err := database.GetDB().Model(&model.User{}).Where("company_id = ?", company.ID).Count(&userCount).Error; err != nil {
		log.Error("Failed to count company users", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error fetching company"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"company": echo.Map{
			"id":        company.ID,
			"name":      company.Name,
			"userCount": userCount,
		},
	})
}

// ListCompanyUsers returns all accounts in the requester's company
func ListCompanyUsers(c echo.Context) error {
	log := logger.FromContext(c)

	_, companyID, ok := requireCompanyAdmin(c)
	if !ok {
		return nil
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var users []model.User
	if err := database.GetDB().Where("company_id = ?", companyID).Find(&users).Error; err != nil {
		log.Error("Failed to list company users", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error listing users"})
	}

	list := make([]echo.Map, 0, len(users))
	for _, u := range users {
		list = append(list, echo.Map{
			"id":        u.ID,
			"name":      u.Name,
			"email":     u.Email,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
			"lastLogin": u.LastLogin,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": list})
}

// InviteUser creates an account in the inviter's company with a random
// temporary password. The password is returned in the response body; a
// production deployment would deliver it out-of-band instead.
func InviteUser(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.InviteCounter.Inc()

	inviter, companyID, ok := requireCompanyAdmin(c)
	if !ok {
		return nil
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse invite request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Name == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Name and email are required"})
	}
	if !model.ValidUserName(req.Name) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Name must be between 2 and 50 characters"})
	}
	if !model.ValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Please provide a valid email"})
	}

	// Email uniqueness is global: an address used anywhere, in any
	// company, blocks the invite.
	defer prometheus.TrackDBOperation("query")(time.Now())
	var existing model.User
	if err := database.GetDB().Where("email = ?", req.Email).First(&existing).Error; err == nil {
		log.Warn("Invite for existing email", zap.String("email", req.Email))
		return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "User with that email already exists"})
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		log.Error("Failed to generate temporary password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error inviting user"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash temporary password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error inviting user"})
	}

	newUser := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Role:      model.RoleUser,
		CompanyID: &companyID,
	}

	if err := database.GetDB().Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent invite or signup won on the unique email index.
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "User with that email already exists"})
		}
		log.Error("Failed to create invited user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error inviting user"})
	}

	log.Info("User invited",
		zap.String("email", newUser.Email),
		zap.Uint("company_id", companyID),
		zap.Uint("invited_by", inviter.ID))

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User invited successfully",
		"user": echo.Map{
			"id":    newUser.ID,
			"name":  newUser.Name,
			"email": newUser.Email,
		},
		"tempPassword": tempPassword,
	})
}

// PromoteUser raises a same-company user to company_admin. A target in
// another company is reported exactly like a missing one. Promoting an
// existing admin succeeds without effect.
func PromoteUser(c echo.Context) error {
	log := logger.FromContext(c)

	_, companyID, ok := requireCompanyAdmin(c)
	if !ok {
		return nil
	}

	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found in your company"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	target, found := model.FindOwned[model.User](database.GetDB(), uint(userID), companyID)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "User not found in your company"})
	}

	target.Role = model.RoleCompanyAdmin
	if err := database.GetDB().Model(&target).Update("role", model.RoleCompanyAdmin).Error; err != nil {
		log.Error("Failed to promote user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error promoting user"})
	}

	log.Info("User promoted",
		zap.Uint("user_id", target.ID),
		zap.Uint("company_id", companyID))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "User promoted",
		"user": echo.Map{
			"id":   target.ID,
			"role": target.Role,
		},
	})
}

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// generateTempPassword produces a random password that satisfies the
// stored password policy.
func generateTempPassword() (string, error) {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = tempPasswordCharset[int(buf[i])%len(tempPasswordCharset)]
	}
	return string(buf) + "!A1", nil
}
