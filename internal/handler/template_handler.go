package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// GetTemplates lists active templates from the global catalog,
// optionally filtered by category. Templates are tenant-independent,
// so the route is public.
func GetTemplates(c echo.Context) error {
	log := logger.FromContext(c)

	category := c.QueryParam("category")
	if category != "" && !model.ValidTemplateCategory(category) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Category must be one of: social, email, display, video, print"})
	}

	query := database.GetDB().Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var templates []model.Template
	if err := query.Order("created_at DESC").Find(&templates).Error; err != nil {
		log.Error("Failed to list templates", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error fetching templates"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "templates": templates})
}

// GetTemplate returns one active template. Deactivated templates are
// reported as missing.
func GetTemplate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Template not found"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var template model.Template
	if err := database.GetDB().First(&template, uint(id)).Error; err != nil || !template.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Template not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "template": template})
}
