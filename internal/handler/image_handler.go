package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/internal/generation"
	"github.com/snehashetty510/adcraft-api/pkg/logger"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// GenerateCampaignImage runs the generation gateway: one image synthesis
// call, one marketing-copy call (masked by fallback content on failure),
// and an optional relay to persistent asset hosting. The route carries
// no tenant context.
func GenerateCampaignImage(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.GenerationCounter.Inc()

	var req struct {
		TemplateData generation.TemplateData `json:"templateData"`
		UserData     generation.UserData     `json:"userData"`
	}

	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse generation request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Invalid request body"})
	}

	if req.UserData.ProductName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "Product name is required"})
	}

	log.Info("Generating campaign image",
		zap.String("product", req.UserData.ProductName),
		zap.String("template", req.TemplateData.Name),
		zap.String("platform", req.UserData.Platform))

	// Deliberately detached from the request context: a client
	// disconnect must not cancel a provider call that is already being
	// billed. Timeouts are enforced inside the service.
	result, err := generation.Generate(context.Background(), req.TemplateData, req.UserData)
	if err != nil {
		log.Error("Campaign image generation failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"success": false, "message": "Failed to generate campaign image"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"imageUrl":     result.ImageURL,
		"cloudinaryId": result.CloudinaryID,
		"dallePrompt":  result.Prompt,
		"generatedContent": echo.Map{
			"slogan":       result.Content.Slogan,
			"captions":     result.Content.Captions,
			"hashtags":     result.Content.Hashtags,
			"callToAction": result.Content.CallToAction,
			"summary":      fmt.Sprintf("Campaign generated for %s using DALL-E 3 and GPT-3.5", req.UserData.ProductName),
		},
	})
}
