package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/pkg/breaker"
	"github.com/snehashetty510/adcraft-api/pkg/cloudinary"
	"github.com/snehashetty510/adcraft-api/pkg/config"
	"github.com/snehashetty510/adcraft-api/pkg/openai"
	"github.com/snehashetty510/adcraft-api/prometheus"
)

// Service orchestrates one generation round trip: image synthesis,
// marketing copy, optional relay to persistent asset hosting.
type Service struct {
	provider *openai.Client
	uploader *cloudinary.Client
	cb       *breaker.CircuitBreaker
	timeout  time.Duration
	log      *zap.Logger
}

// NewService builds a Service. uploader may be nil, in which case the
// provider's own URL is returned unmodified.
func NewService(provider *openai.Client, uploader *cloudinary.Client, timeout time.Duration, log *zap.Logger) *Service {
	return &Service{
		provider: provider,
		uploader: uploader,
		cb:       breaker.New(5, 30*time.Second),
		timeout:  timeout,
		log:      log,
	}
}

var defaultService *Service

// Initialize builds the package-level service from configuration
func Initialize(cfg *config.Config, log *zap.Logger) {
	var uploader *cloudinary.Client
	if cfg.Cloudinary.Configured() {
		uploader = cloudinary.NewClient(&cfg.Cloudinary, log)
	}
	defaultService = NewService(openai.NewClient(&cfg.OpenAI, log), uploader, cfg.OpenAI.Timeout, log)
}

// Generate runs the default service
func Generate(ctx context.Context, tmpl TemplateData, user UserData) (*Result, error) {
	if defaultService == nil {
		return nil, fmt.Errorf("generation service not initialized")
	}
	return defaultService.Generate(ctx, tmpl, user)
}

// Generate produces the campaign asset. Image synthesis failure is fatal
// to the request; copy-generation failure degrades to fallback content;
// upload failure degrades to the provider's own URL.
func (s *Service) Generate(ctx context.Context, tmpl TemplateData, user UserData) (*Result, error) {
	size := ImageSizeFor(tmpl.Layout.AspectRatio)
	prompt := BuildImagePrompt(tmpl, user)

	imageCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var imageURL string
	defer prometheus.TrackGeneration("image")(time.Now())
	err := s.cb.Call(func() error {
		var callErr error
		imageURL, callErr = s.provider.GenerateImage(imageCtx, prompt, size)
		return callErr
	})
	if err != nil {
		s.log.Error("Image generation failed", zap.Error(err))
		prometheus.RecordGenerationError("image")
		return nil, fmt.Errorf("image generation: %w", err)
	}

	content := s.generateContent(ctx, user)

	result := &Result{
		ImageURL: imageURL,
		Prompt:   prompt,
		Content:  content,
	}

	if s.uploader != nil {
		publicID := fmt.Sprintf("campaign_%s_%d", strings.ReplaceAll(user.ProductName, " ", "_"), time.Now().UnixMilli())
		uploadCtx, cancelUpload := context.WithTimeout(ctx, s.timeout)
		defer cancelUpload()

		uploaded, uploadErr := s.uploader.Upload(uploadCtx, imageURL, publicID)
		if uploadErr != nil {
			// Keep the provider URL; it is time-limited but usable.
			s.log.Warn("Asset upload failed, returning provider URL", zap.Error(uploadErr))
			prometheus.RecordGenerationError("upload")
		} else {
			result.ImageURL = uploaded.SecureURL
			result.CloudinaryID = &uploaded.PublicID
		}
	}

	return result, nil
}

// generateContent asks the text model for marketing copy and masks every
// failure mode behind the deterministic fallback.
func (s *Service) generateContent(ctx context.Context, user UserData) Content {
	contentCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	defer prometheus.TrackGeneration("content")(time.Now())
	raw, err := s.provider.GenerateCompletion(contentCtx, copywriterSystemPrompt, BuildContentPrompt(user))
	if err != nil {
		s.log.Warn("Content generation failed, using fallback content", zap.Error(err))
		prometheus.RecordGenerationError("content")
		return FallbackContent(user)
	}

	var content Content
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &content); err != nil {
		s.log.Warn("Content response was not valid JSON, using fallback content", zap.Error(err))
		prometheus.RecordGenerationError("content")
		return FallbackContent(user)
	}

	if content.Slogan == "" && len(content.Captions) == 0 {
		s.log.Warn("Content response was empty, using fallback content")
		prometheus.RecordGenerationError("content")
		return FallbackContent(user)
	}

	return content
}
