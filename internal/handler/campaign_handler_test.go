package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCampaign(t *testing.T, e *echo.Echo, token, name string) map[string]interface{} {
	t.Helper()
	status, body := doRequest(t, e, http.MethodPost, "/api/campaigns", token, map[string]interface{}{
		"name":      name,
		"objective": "awareness",
		"budget":    1500.0,
	})
	require.Equal(t, http.StatusCreated, status)
	return body["campaign"].(map[string]interface{})
}

func TestCreateCampaign(t *testing.T) {
	e := setupTest(t)

	token, user := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	campaign := createCampaign(t, e, token, "Summer Launch")

	assert.Equal(t, "Summer Launch", campaign["name"])
	assert.Equal(t, user["companyId"], campaign["companyId"])
	assert.Equal(t, 1500.0, campaign["budget"])
}

func TestCreateCampaignValidation(t *testing.T) {
	e := setupTest(t)

	token, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")

	status, _ := doRequest(t, e, http.MethodPost, "/api/campaigns", token, map[string]interface{}{"objective": "awareness"})
	assert.Equal(t, http.StatusBadRequest, status, "missing name")

	status, _ = doRequest(t, e, http.MethodPost, "/api/campaigns", token, map[string]interface{}{"name": "ok", "budget": -5.0})
	assert.Equal(t, http.StatusBadRequest, status, "negative budget")
}

func TestCampaignRequiresCompany(t *testing.T) {
	e := setupTest(t)

	// Signed up without a company name, so no tenant to scope to.
	token, _ := signup(t, e, "Solo", "solo@example.com", "password123", "")

	status, body := doRequest(t, e, http.MethodPost, "/api/campaigns", token, map[string]interface{}{"name": "Nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User is not associated with a company", body["message"])

	status, _ = doRequest(t, e, http.MethodGet, "/api/campaigns", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCampaignRequiresAuth(t *testing.T) {
	e := setupTest(t)

	status, _ := doRequest(t, e, http.MethodGet, "/api/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGetCampaignsScopedToCompany(t *testing.T) {
	e := setupTest(t)

	aliceToken, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	bobToken, _ := signup(t, e, "Bob", "bob@globex.com", "password123", "Globex")

	createCampaign(t, e, aliceToken, "Acme One")
	createCampaign(t, e, aliceToken, "Acme Two")
	createCampaign(t, e, bobToken, "Globex Only")

	status, body := doRequest(t, e, http.MethodGet, "/api/campaigns", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	campaigns := body["campaigns"].([]interface{})
	require.Len(t, campaigns, 2)
	for _, raw := range campaigns {
		name := raw.(map[string]interface{})["name"].(string)
		assert.NotEqual(t, "Globex Only", name)
	}
}

func TestGetCampaignCrossTenantLooksMissing(t *testing.T) {
	e := setupTest(t)

	aliceToken, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	bobToken, _ := signup(t, e, "Bob", "bob@globex.com", "password123", "Globex")

	campaign := createCampaign(t, e, aliceToken, "Acme Secret")
	id := uint(campaign["id"].(float64))

	// A foreign id, a nonexistent id and a malformed id all answer alike.
	foreignStatus, foreignBody := doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/campaigns/%d", id), bobToken, nil)
	missingStatus, missingBody := doRequest(t, e, http.MethodGet, "/api/campaigns/999999", bobToken, nil)
	garbageStatus, garbageBody := doRequest(t, e, http.MethodGet, "/api/campaigns/not-a-number", bobToken, nil)

	assert.Equal(t, http.StatusNotFound, foreignStatus)
	assert.Equal(t, http.StatusNotFound, missingStatus)
	assert.Equal(t, http.StatusNotFound, garbageStatus)
	assert.Equal(t, missingBody, foreignBody)
	assert.Equal(t, missingBody, garbageBody)
}

func TestUpdateCampaign(t *testing.T) {
	e := setupTest(t)

	token, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	campaign := createCampaign(t, e, token, "Before")
	id := uint(campaign["id"].(float64))

	status, body := doRequest(t, e, http.MethodPut, fmt.Sprintf("/api/campaigns/%d", id), token, map[string]interface{}{
		"name": "After",
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["campaign"].(map[string]interface{})
	assert.Equal(t, "After", updated["name"])
	// Fields absent from the payload are untouched.
	assert.Equal(t, "awareness", updated["objective"])
	assert.Equal(t, 1500.0, updated["budget"])
}

func TestUpdateCampaignCrossTenant(t *testing.T) {
	e := setupTest(t)

	aliceToken, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	bobToken, _ := signup(t, e, "Bob", "bob@globex.com", "password123", "Globex")

	campaign := createCampaign(t, e, aliceToken, "Acme Secret")
	id := uint(campaign["id"].(float64))

	status, _ := doRequest(t, e, http.MethodPut, fmt.Sprintf("/api/campaigns/%d", id), bobToken, map[string]interface{}{
		"name": "Hijacked",
	})
	assert.Equal(t, http.StatusNotFound, status)

	// Unchanged for the owner.
	status, body := doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/campaigns/%d", id), aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme Secret", body["campaign"].(map[string]interface{})["name"])
}

func TestDeleteCampaign(t *testing.T) {
	e := setupTest(t)

	token, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	campaign := createCampaign(t, e, token, "Doomed")
	id := uint(campaign["id"].(float64))

	status, _ := doRequest(t, e, http.MethodDelete, fmt.Sprintf("/api/campaigns/%d", id), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/campaigns/%d", id), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteCampaignCrossTenant(t *testing.T) {
	e := setupTest(t)

	aliceToken, _ := signup(t, e, "Alice", "alice@acme.com", "password123", "Acme")
	bobToken, _ := signup(t, e, "Bob", "bob@globex.com", "password123", "Globex")

	campaign := createCampaign(t, e, aliceToken, "Protected")
	id := uint(campaign["id"].(float64))

	status, _ := doRequest(t, e, http.MethodDelete, fmt.Sprintf("/api/campaigns/%d", id), bobToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, e, http.MethodGet, fmt.Sprintf("/api/campaigns/%d", id), aliceToken, nil)
	assert.Equal(t, http.StatusOK, status)
}
