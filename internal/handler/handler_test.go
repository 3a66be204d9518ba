package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/snehashetty510/adcraft-api/internal/middleware"
	"github.com/snehashetty510/adcraft-api/internal/model"
	"github.com/snehashetty510/adcraft-api/pkg/config"
	"github.com/snehashetty510/adcraft-api/pkg/database"
	"github.com/snehashetty510/adcraft-api/pkg/jwtutil"
)

// setupTest wires an in-memory store and a router with the same route
// table as main. Each test gets a fresh database.
func setupTest(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Campaign{},
		&model.BrandProfile{},
		&model.Template{},
	))

	database.SetDB(db)
	jwtutil.Initialize(&config.JWTConfig{SigningKey: "test-signing-key", ExpirationHours: 1})

	return newTestRouter()
}

func newTestRouter() *echo.Echo {
	e := echo.New()
	e.Use(echomiddleware.Recover())

	auth := e.Group("/api/auth")
	auth.POST("/signup", Signup)
	auth.POST("/login", Login)
	auth.POST("/logout", Logout)
	auth.GET("/me", Me, middleware.RequireAuth)
	auth.POST("/change-password", ChangePassword, middleware.RequireAuth)

	companies := e.Group("/api/companies")
	companies.Use(middleware.RequireAuth)
	companies.GET("/me", GetMyCompany)
	companies.GET("/users", ListCompanyUsers)
	companies.POST("/invite", InviteUser)
	companies.PUT("/promote/:userId", PromoteUser)

	campaigns := e.Group("/api/campaigns")
	campaigns.Use(middleware.RequireAuth)
	campaigns.POST("", CreateCampaign)
	campaigns.GET("", GetCampaigns)
	campaigns.GET("/:id", GetCampaign)
	campaigns.PUT("/:id", UpdateCampaign)
	campaigns.DELETE("/:id", DeleteCampaign)

	brand := e.Group("/api/brand")
	brand.Use(middleware.RequireAuth)
	brand.GET("", GetBrandProfile)
	brand.POST("", UpsertBrandProfile)
	brand.PUT("", UpsertBrandProfile)

	templates := e.Group("/api/templates")
	templates.GET("", GetTemplates)
	templates.GET("/:id", GetTemplate)

	images := e.Group("/api/images")
	images.POST("/generate", GenerateCampaignImage)

	return e
}

// doRequest performs a JSON request against the test router and decodes
// the response body into a generic map.
func doRequest(t *testing.T, e *echo.Echo, method, path, token string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec.Code, decoded
}

// signup registers an account and returns its token and user payload
func signup(t *testing.T, e *echo.Echo, name, email, password, companyName string) (string, map[string]interface{}) {
	t.Helper()

	payload := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	}
	if companyName != "" {
		payload["companyName"] = companyName
	}

	status, body := doRequest(t, e, http.MethodPost, "/api/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, status, "signup failed: %v", body)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	return token, user
}
