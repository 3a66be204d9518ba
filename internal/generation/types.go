package generation

// TemplateLayout is the slice of template layout the gateway cares about
type TemplateLayout struct {
	AspectRatio string `json:"aspectRatio"`
}

// TemplateData describes the selected ad template
type TemplateData struct {
	Name   string         `json:"name"`
	Layout TemplateLayout `json:"layout"`
}

// UserData is the creative brief supplied by the user
type UserData struct {
	ProductName        string `json:"productName"`
	Category           string `json:"category"`
	Audience           string `json:"audience"`
	Tone               string `json:"tone"`
	Platform           string `json:"platform"`
	ProductDescription string `json:"productDescription"`
	KeyFeatures        string `json:"keyFeatures"`
	SpecialOffer       string `json:"specialOffer"`
	Hashtags           string `json:"hashtags"`
	TargetGoal         string `json:"targetGoal"`
}

// Content is the marketing copy payload, either provider-generated or
// the deterministic fallback.
type Content struct {
	Slogan       string   `json:"slogan"`
	Captions     []string `json:"captions"`
	Hashtags     []string `json:"hashtags"`
	CallToAction string   `json:"callToAction"`
	Summary      string   `json:"summary,omitempty"`
}

// Result is the composed generation outcome
type Result struct {
	ImageURL     string
	CloudinaryID *string
	Prompt       string
	Content      Content
}
