package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// brandProfileRequest uses pointers throughout: only fields present in
// the payload overwrite stored values on upsert.
type brandProfileRequest struct {
	BrandName       *string         `json:"brandName"`
	LogoURL         *string         `json:"logoUrl"`
	PrimaryColor    *string         `json:"primaryColor"`
	SecondaryColor  *string         `json:"secondaryColor"`
	AccentColor     *string         `json:"accentColor"`
	FontFamily      *string         `json:"fontFamily"`
	BrandVoice      *string         `json:"brandVoice"`
	Tagline         *string         `json:"tagline"`
	BrandGuidelines *string         `json:"brandGuidelines"`
	CustomData      json.RawMessage `json:"customData"`
}

func (r *brandProfileRequest) validate() string {
	for _, color := range []*string{r.PrimaryColor, r.SecondaryColor, r.AccentColor} {
		if color != nil && !model.ValidHexColor(*color) {
			return "Colors must be in #RRGGBB format"
		}
	}
	if r.BrandVoice != nil && !model.ValidBrandVoice(*r.BrandVoice) {
		return "Brand voice must be one of: professional, casual, friendly, authoritative, playful, luxury"
	}
	return ""
}

// apply merges the present fields into the profile
func (r *brandProfileRequest) apply(profile *model.BrandProfile) {
	if r.BrandName != nil {
		profile.BrandName = *r.BrandName
	}
	if r.LogoURL != nil {
		profile.LogoURL = *r.LogoURL
	}
	if r.PrimaryColor != nil {
		profile.PrimaryColor = *r.PrimaryColor
	}
	if r.SecondaryColor != nil {
		profile.SecondaryColor = *r.SecondaryColor
	}
	if r.AccentColor != nil {
		profile.AccentColor = *r.AccentColor
	}
	if r.FontFamily != nil {
		profile.FontFamily = *r.FontFamily
	}
	if r.BrandVoice != nil {
		profile.BrandVoice = *r.BrandVoice
	}
	if r.Tagline != nil {
		profile.Tagline = *r.Tagline
	}
	if r.BrandGuidelines != nil {
		profile.BrandGuidelines = *r.BrandGuidelines
	}
	if r.CustomData != nil {
		profile.CustomData = datatypes.JSON(r.CustomData)
	}
}

// GetBrandProfile returns the company's brand profile
func GetBrandProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordBrandOperation("get")

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var profile model.BrandProfile
	if err := database.GetDB().Where("company_id = ?", *companyID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("Failed to load brand profile", zap.Error(err))
		}
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "message": "Brand profile not found"})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "brandProfile": profile})
}

// UpsertBrandProfile creates the profile on first write and partially
// merges on every later one. The response status discriminates the two:
// 201 created, 200 updated.
func UpsertBrandProfile(c echo.Context) error {
	log := logger.FromContext(c)

	companyID := middleware.CompanyID(c)
	if companyID == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "User is not associated with a company"})
	}

	var req brandProfileRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse brand profile request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": msg})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())

	var profile model.BrandProfile
	err := database.GetDB().Where("company_id = ?", *companyID).First(&profile).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		log.Error("Failed to load brand profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error saving brand profile"})
	}

	if created {
		profile = model.BrandProfile{CompanyID: *companyID}
		prometheus.RecordBrandOperation("create")
	} else {
		prometheus.RecordBrandOperation("update")
	}

	req.apply(&profile)

	if err := database.GetDB().Save(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Two first-writes raced; the unique companyId index kept
			// the singleton invariant.
			return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": "Brand profile already exists"})
		}
		log.Error("Failed to save brand profile", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "message": "Error saving brand profile"})
	}

	status := http.StatusOK
	message := "Brand profile updated"
	if created {
		status = http.StatusCreated
		message = "Brand profile created"
	}

	log.Info("Brand profile saved",
		zap.Uint("company_id", *companyID),
		zap.Bool("created", created))

	return c.JSON(status, echo.Map{
		"success":      true,
		"message":      message,
		"brandProfile": profile,
	})
}
