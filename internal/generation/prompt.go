package generation

import (
	"fmt"
	"strings"
)

// copywriterSystemPrompt instructs the text model to emit JSON only
const copywriterSystemPrompt = "You are a professional marketing copywriter. Generate engaging, platform-optimized marketing content. Always respond with valid JSON only."

// ImageSizeFor maps a template aspect ratio to a provider image size.
// Unknown ratios fall back to square.
func ImageSizeFor(aspectRatio string) string {
	switch aspectRatio {
	case "16:9":
		return "1792x1024"
	case "9:16":
		return "1024x1792"
	default:
		return "1024x1024"
	}
}

// BuildImagePrompt composes the image synthesis prompt. The spelling
// constraints are load-bearing: without them the image model invents
// misspelled headline text.
func BuildImagePrompt(tmpl TemplateData, user UserData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Professional marketing campaign poster for %q.\n\n", user.ProductName)
	b.WriteString("CRITICAL SPELLING REQUIREMENT:\n")
	b.WriteString("ALL TEXT MUST USE CORRECT ENGLISH SPELLING ONLY.\n")
	b.WriteString("Verify every word is spelled correctly in standard English.\n")
	b.WriteString("DO NOT use made-up words or misspellings.\n\n")

	fmt.Fprintf(&b, "Product: %q\n", user.ProductName)
	fmt.Fprintf(&b, "Platform: %s\n", user.Platform)
	fmt.Fprintf(&b, "Style: %s - %s\n", tmpl.Name, user.Tone)
	fmt.Fprintf(&b, "Target: %s\n\n", user.Audience)

	b.WriteString("Design Requirements:\n")
	b.WriteString("- Clean, minimal design with limited text\n")
	fmt.Fprintf(&b, "- Product name %q as main headline (VERIFY CORRECT SPELLING)\n", user.ProductName)
	fmt.Fprintf(&b, "- Modern gradient backgrounds (%s optimized)\n", user.Platform)
	b.WriteString("- Professional photography style\n")
	b.WriteString("- High contrast, bold typography\n")
	b.WriteString("- Abstract shapes and modern graphics\n")
	b.WriteString("- Premium aesthetic\n")
	if user.SpecialOffer != "" {
		fmt.Fprintf(&b, "- Feature: %q\n", user.SpecialOffer)
	}
	b.WriteString("- No people or faces\n")
	b.WriteString("- Focus on visual impact over text\n\n")

	b.WriteString("If including any text beyond the product name, use ONLY these correctly spelled words:\n")
	b.WriteString("- Smart, Premium, Professional, Quality, Innovation\n")
	b.WriteString("- Technology, Modern, Advanced, Reliable, Trusted\n")
	if user.KeyFeatures != "" {
		features := strings.Split(user.KeyFeatures, ",")
		for i := range features {
			features[i] = strings.TrimSpace(features[i])
		}
		fmt.Fprintf(&b, "- %s\n", strings.Join(features, ", "))
	}
	b.WriteString("\nIMPORTANT: Minimize text in the image. Focus on stunning visuals and design.\n")
	b.WriteString("Any text that IS included must be spelled 100% correctly in English.")

	return b.String()
}

// BuildContentPrompt composes the marketing-copy prompt
func BuildContentPrompt(user UserData) string {
	var b strings.Builder

	b.WriteString("Generate engaging marketing content for this campaign:\n\n")
	fmt.Fprintf(&b, "Product: %s\n", user.ProductName)
	fmt.Fprintf(&b, "Category: %s\n", user.Category)
	fmt.Fprintf(&b, "Target Audience: %s\n", user.Audience)
	fmt.Fprintf(&b, "Tone: %s\n", user.Tone)
	fmt.Fprintf(&b, "Platform: %s\n", user.Platform)
	fmt.Fprintf(&b, "Description: %s\n", orDefault(user.ProductDescription, "Premium quality product"))
	fmt.Fprintf(&b, "Key Features: %s\n", orDefault(user.KeyFeatures, "Innovative and reliable"))
	if user.SpecialOffer != "" {
		fmt.Fprintf(&b, "Special Offer: %s\n", user.SpecialOffer)
	}
	fmt.Fprintf(&b, "Goal: %s\n\n", orDefault(user.TargetGoal, "engagement"))

	b.WriteString("Provide:\n")
	b.WriteString("1. A catchy slogan (one line)\n")
	fmt.Fprintf(&b, "2. Three engaging captions for %s (varying lengths: short, medium, long)\n", user.Platform)
	b.WriteString("3. 10-15 relevant hashtags (mix of popular and niche)\n")
	b.WriteString("4. A clear call-to-action\n\n")
	b.WriteString("Format the response as JSON with keys: slogan, captions (array), hashtags (array), callToAction")

	return b.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
