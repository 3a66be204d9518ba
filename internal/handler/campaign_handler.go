package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// campaignNotFound is the single shape for missing, malformed-id and
// cross-tenant lookups, so none of them leaks existence.
func campaignNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Campaign not found"})
}

// findCampaign resolves the :id parameter against the requester's
// company. Malformed ids count as not found for the same reason a
// foreign id does.
func findCampaign(c echo.Context, companyID uint) (model.Campaign, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return model.Campaign{}, false
	}
	return model.FindOwned[model.Campaign](database.GetDB(), uint(id), companyID)
}

// CreateCampaign creates a campaign owned by the requester's company
func CreateCampaign(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCampaignOperation("create")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	var req struct {
		Name      string   `json:"name"`
		Objective *string  `json:"objective"`
		Budget    *float64 `json:"budget"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse campaign request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Campaign name is required"})
	}
	if !model.ValidCampaignName(req.Name) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Campaign name must be 2-150 chars"})
	}
	if req.Budget != nil && *req.Budget < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Budget must be a non-negative number"})
	}

	campaign := model.Campaign{
		Name:      req.Name,
		Objective: req.Objective,
		Budget:    req.Budget,
		CompanyID: *companyID,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := database.GetDB().Create(&campaign).Error; err != nil {
		log.Error("Failed to create campaign", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error creating campaign"})
	}

	log.Info("Campaign created",
		zap.Uint("campaign_id", campaign.ID),
		zap.Uint("company_id", campaign.CompanyID))

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "campaign": campaign})
}

// GetCampaigns lists the requester's company's campaigns, newest first
func GetCampaigns(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCampaignOperation("list")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var campaigns []model.Campaign
	if err := database.GetDB().Where("company_id = ?", *companyID).Order("created_at DESC").Find(&campaigns).Error; err != nil {
		log.Error("Failed to list campaigns", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error fetching campaigns"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "campaigns": campaigns})
}

// GetCampaign returns one campaign owned by the requester's company
func GetCampaign(c echo.Context) error {
	prometheus.RecordCampaignOperation("get")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	campaign, found := findCampaign(c, *companyID)
	if !found {
		return campaignNotFound(c)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "campaign": campaign})
}

// UpdateCampaign applies the fields present in the payload
func UpdateCampaign(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCampaignOperation("update")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	campaign, found := findCampaign(c, *companyID)
	if !found {
		return campaignNotFound(c)
	}

	var req struct {
		Name      *string  `json:"name"`
		Objective *string  `json:"objective"`
		Budget    *float64 `json:"budget"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse campaign update", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if req.Name != nil {
		if !model.ValidCampaignName(*req.Name) {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Campaign name must be 2-150 chars"})
		}
		campaign.Name = *req.Name
	}
	if req.Objective != nil {
		campaign.Objective = req.Objective
	}
	if req.Budget != nil {
		if *req.Budget < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Budget must be a non-negative number"})
		}
		campaign.Budget = req.Budget
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := database.GetDB().Save(&campaign).Error; err != nil {
		log.Error("Failed to update campaign", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error updating campaign"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "campaign": campaign})
}

// DeleteCampaign removes one campaign owned by the requester's company
func DeleteCampaign(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordCampaignOperation("delete")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	campaign, found := findCampaign(c, *companyID)
	if !found {
		return campaignNotFound(c)
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := database.GetDB().Delete(&campaign).Error; err != nil {
		log.Error("Failed to delete campaign", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error deleting campaign"})
	}

	log.Info("Campaign deleted",
		zap.Uint("campaign_id", campaign.ID),
		zap.Uint("company_id", campaign.CompanyID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Campaign deleted"})
}
