package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@acme.com"))
	assert.True(t, ValidEmail("a.b+tag@sub.example.co"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail("spaces in@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestValidPassword(t *testing.T) {
	assert.False(t, ValidPassword("12345"))
	assert.True(t, ValidPassword("123456"))
	assert.True(t, ValidPassword(strings.Repeat("x", 100)))
	assert.False(t, ValidPassword(strings.Repeat("x", 101)))
}

func TestValidNames(t *testing.T) {
	assert.False(t, ValidUserName("A"))
	assert.True(t, ValidUserName("Al"))
	assert.False(t, ValidUserName(strings.Repeat("x", 51)))

	assert.False(t, ValidCompanyName("X"))
	assert.True(t, ValidCompanyName("Acme"))
	assert.False(t, ValidCompanyName(strings.Repeat("x", 101)))

	assert.False(t, ValidCampaignName("X"))
	assert.True(t, ValidCampaignName("Summer Launch"))
	assert.False(t, ValidCampaignName(strings.Repeat("x", 151)))
}

func TestValidHexColor(t *testing.T) {
	assert.True(t, ValidHexColor("#FF0000"))
	assert.True(t, ValidHexColor("#a1b2c3"))
	assert.False(t, ValidHexColor("FF0000"))
	assert.False(t, ValidHexColor("#FFF"))
	assert.False(t, ValidHexColor("#GGGGGG"))
}

func TestValidBrandVoice(t *testing.T) {
	for _, v := range BrandVoices {
		assert.True(t, ValidBrandVoice(v))
	}
	assert.False(t, ValidBrandVoice("shouty"))
	assert.False(t, ValidBrandVoice(""))
}

func TestValidTemplateCategory(t *testing.T) {
	for _, c := range TemplateCategories {
		assert.True(t, ValidTemplateCategory(c))
	}
	assert.False(t, ValidTemplateCategory("billboard"))
}
