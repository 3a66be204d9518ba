package seed

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/snehashetty510/adcraft-api/internal/model"
)

var defaultTemplates = []model.Template{
	{
		Name:        "Instagram Story",
		Category:    "social",
		Description: "Vertical 9:16 format perfect for Instagram Stories with bold text and eye-catching visuals",
		Layout:      datatypes.JSON(`{"aspectRatio":"9:16","orientation":"vertical","sections":["header","visual","cta"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"large","emphasis":"visual-first","ctaPosition":"bottom"}`),
	},
	{
		Name:        "Facebook Feed Post",
		Category:    "social",
		Description: "Square 1:1 format optimized for Facebook feed with balanced text and image",
		Layout:      datatypes.JSON(`{"aspectRatio":"1:1","orientation":"square","sections":["image","headline","description"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"medium","emphasis":"balanced","ctaPosition":"inline"}`),
	},
	{
		Name:        "LinkedIn Sponsored Content",
		Category:    "social",
		Description: "Professional template for LinkedIn with focus on credibility and clear messaging",
		Layout:      datatypes.JSON(`{"aspectRatio":"4:3","orientation":"landscape","sections":["logo","headline","body","cta"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"medium","emphasis":"text-first","tone":"professional"}`),
	},
	{
		Name:        "Email Newsletter",
		Category:    "email",
		Description: "Clean email template with header, body sections, and clear call-to-action",
		Layout:      datatypes.JSON(`{"width":"600px","sections":["header","hero","content-blocks","footer"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"readable","spacing":"comfortable","ctaStyle":"button"}`),
	},
	{
		Name:        "Display Banner 728x90",
		Category:    "display",
		Description: "Leaderboard banner ad with concise messaging",
		Layout:      datatypes.JSON(`{"width":"728px","height":"90px","sections":["logo","message","cta"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"small","emphasis":"cta","animation":"subtle"}`),
	},
	{
		Name:        "Google Display 300x250",
		Category:    "display",
		Description: "Medium rectangle display ad for Google network",
		Layout:      datatypes.JSON(`{"width":"300px","height":"250px","sections":["visual","headline","cta"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"medium","emphasis":"visual","ctaPosition":"bottom-right"}`),
	},
	{
		Name:        "Premium Video Ad",
		Category:    "video",
		Description: "Video ad template with storyboard sections for 15-30 second spots",
		IsPremium:   true,
		Layout:      datatypes.JSON(`{"duration":"15-30s","aspectRatio":"16:9","sections":["hook","problem","solution","cta"]}`),
		StyleGuide:  datatypes.JSON(`{"pacing":"fast","emphasis":"visual-storytelling","music":"upbeat"}`),
	},
	{
		Name:        "Minimalist Modern",
		Category:    "social",
		Description: "Clean, minimalist design with lots of white space and modern typography",
		IsPremium:   true,
		Layout:      datatypes.JSON(`{"aspectRatio":"1:1","orientation":"square","sections":["centered-text","minimal-visual"]}`),
		StyleGuide:  datatypes.JSON(`{"fontSize":"large","emphasis":"typography","palette":"monochrome"}`),
	},
}

// Templates seeds the global template catalog when it is empty. The
// catalog is read-only seeded data; existing rows are never touched.
func Templates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Template{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := make([]model.Template, len(defaultTemplates))
	copy(templates, defaultTemplates)
	for i := range templates {
		templates[i].IsActive = true
	}

	return db.Create(&templates).Error
}
