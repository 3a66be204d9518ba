package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/pkg/cloudinary"
	"github.com/snehashetty510/adcraft-api/pkg/config"
	"github.com/snehashetty510/adcraft-api/pkg/openai"
)

func fakeProviderServer(t *testing.T, contentBody string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/images/generations"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data": []map[string]string{{"url": "https://provider.example.com/img.png"}},
			})
		case strings.HasSuffix(r.URL.Path, "/chat/completions"):
			json.NewEncoder(w).Encode(map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": contentBody}},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func providerClient(t *testing.T, srv *httptest.Server) *openai.Client {
	t.Helper()
	return openai.NewClient(&config.OpenAIConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		ImageModel: "dall-e-3",
		ChatModel:  "gpt-3.5-turbo",
		Timeout:    5 * time.Second,
	}, zap.NewNop())
}

func uploaderClient(t *testing.T, handler http.HandlerFunc) *cloudinary.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := cloudinary.NewClient(&config.CloudinaryConfig{
		CloudName: "testcloud",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "campaign_images",
		Timeout:   5 * time.Second,
	}, zap.NewNop())
	client.SetBaseURL(srv.URL)
	return client
}

var testBrief = UserData{
	ProductName: "SolarFlare Lamp",
	Category:    "home decor",
	Audience:    "young professionals",
	Tone:        "playful",
	Platform:    "instagram",
}

func TestGenerateUploadsToAssetHost(t *testing.T) {
	provider := providerClient(t, fakeProviderServer(t, `{"slogan":"Shine on","captions":["a","b","c"],"hashtags":["#x"],"callToAction":"Buy"}`))
	uploader := uploaderClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(cloudinary.UploadResult{
			PublicID:  "campaign_images/campaign_SolarFlare_Lamp_1",
			SecureURL: "https://res.cloudinary.com/testcloud/campaign.png",
		})
	})

	svc := NewService(provider, uploader, 5*time.Second, zap.NewNop())
	result, err := svc.Generate(context.Background(), TemplateData{Layout: TemplateLayout{AspectRatio: "1:1"}}, testBrief)
	require.NoError(t, err)

	assert.Equal(t, "https://res.cloudinary.com/testcloud/campaign.png", result.ImageURL)
	require.NotNil(t, result.CloudinaryID)
	assert.Equal(t, "campaign_images/campaign_SolarFlare_Lamp_1", *result.CloudinaryID)
	assert.Equal(t, "Shine on", result.Content.Slogan)
}

func TestGenerateUploadFailureKeepsProviderURL(t *testing.T) {
	provider := providerClient(t, fakeProviderServer(t, `{"slogan":"Shine on","captions":["a"],"hashtags":["#x"],"callToAction":"Buy"}`))
	uploader := uploaderClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	svc := NewService(provider, uploader, 5*time.Second, zap.NewNop())
	result, err := svc.Generate(context.Background(), TemplateData{Layout: TemplateLayout{AspectRatio: "1:1"}}, testBrief)
	require.NoError(t, err)

	assert.Equal(t, "https://provider.example.com/img.png", result.ImageURL)
	assert.Nil(t, result.CloudinaryID)
}

func TestGenerateWithoutUploader(t *testing.T) {
	provider := providerClient(t, fakeProviderServer(t, `{"slogan":"Shine on","captions":["a"],"hashtags":["#x"],"callToAction":"Buy"}`))

	svc := NewService(provider, nil, 5*time.Second, zap.NewNop())
	result, err := svc.Generate(context.Background(), TemplateData{Layout: TemplateLayout{AspectRatio: "1:1"}}, testBrief)
	require.NoError(t, err)

	assert.Equal(t, "https://provider.example.com/img.png", result.ImageURL)
	assert.Nil(t, result.CloudinaryID)
}

func TestGenerateEmptyCopyFallsBack(t *testing.T) {
	provider := providerClient(t, fakeProviderServer(t, `{"slogan":"","captions":[]}`))

	svc := NewService(provider, nil, 5*time.Second, zap.NewNop())
	result, err := svc.Generate(context.Background(), TemplateData{}, testBrief)
	require.NoError(t, err)

	assert.Equal(t, FallbackContent(testBrief), result.Content)
}

func TestGenerateImageFailureIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	svc := NewService(providerClient(t, srv), nil, 5*time.Second, zap.NewNop())
	_, err := svc.Generate(context.Background(), TemplateData{}, testBrief)
	assert.Error(t, err)
}
