package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/snehashetty510/adcraft-api/pkg/config"
)

// Client uploads remote images into Cloudinary via its signed upload API.
// The provider fetches the source URL itself, so only the URL travels.
type Client struct {
	CloudName  string
	APIKey     string
	APISecret  string
	Folder     string
	HTTPClient *http.Client
	Logger     *zap.Logger

	// now is swappable for deterministic signatures in tests
	now func() time.Time
	// baseURL overrides the Cloudinary endpoint in tests
	baseURL string
}

// UploadResult is the subset of the upload response the API uses
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// NewClient creates a new Cloudinary client from configuration
func NewClient(cfg *config.CloudinaryConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		CloudName:  cfg.CloudName,
		APIKey:     cfg.APIKey,
		APISecret:  cfg.APISecret,
		Folder:     cfg.Folder,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
		now:        time.Now,
	}
}

// SetBaseURL points the client at an alternate endpoint (tests)
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// Upload asks Cloudinary to fetch fileURL and store it under publicID in
// the configured folder.
func (c *Client) Upload(ctx context.Context, fileURL, publicID string) (*UploadResult, error) {
	endpoint := c.baseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://api.cloudinary.com/v1_1/%s", c.CloudName)
	}

	params := map[string]string{
		"folder":    c.Folder,
		"public_id": publicID,
		"timestamp": fmt.Sprintf("%d", c.now().Unix()),
	}
	params["signature"] = c.sign(params)

	form := url.Values{}
	form.Set("file", fileURL)
	form.Set("api_key", c.APIKey)
	for k, v := range params {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/image/upload", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Cloudinary upload request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read Cloudinary response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("Cloudinary upload failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(body)))
		return nil, fmt.Errorf("cloudinary upload failed: %d %s", resp.StatusCode, string(body))
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		c.Logger.Error("Failed to parse Cloudinary response", zap.Error(err))
		return nil, err
	}

	c.Logger.Info("Image uploaded to Cloudinary",
		zap.String("public_id", result.PublicID),
		zap.String("url", result.SecureURL))

	return &result, nil
}

// sign computes the SHA-1 request signature over the sorted parameters,
// excluding file and api_key, per the Cloudinary upload API contract.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.APISecret))
	return hex.EncodeToString(sum[:])
}
