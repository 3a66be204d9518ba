package generation

import (
	"fmt"
	"regexp"
	"strings"
)

var hashtagSeparators = regexp.MustCompile(`[\s,]+`)

// FallbackContent computes the deterministic substitute copy used when
// the text-generation call fails or returns unparseable output. It is
// built entirely from the creative brief, so two identical briefs always
// degrade to identical content.
func FallbackContent(user UserData) Content {
	captions := []string{
		fmt.Sprintf("%s is here! %s", user.ProductName, orDefault(user.SpecialOffer, "Get yours today!")),
		fmt.Sprintf("Discover %s - %s. Perfect for %s.", user.ProductName, orDefault(user.KeyFeatures, "premium quality"), user.Audience),
		fmt.Sprintf("Looking for %s that delivers? %s brings you %s. %s",
			user.Category, user.ProductName,
			orDefault(user.KeyFeatures, "innovation and quality"),
			orDefault(user.SpecialOffer, "Experience the difference today!")),
	}

	var hashtags []string
	if user.Hashtags != "" {
		for _, h := range hashtagSeparators.Split(user.Hashtags, -1) {
			if h != "" {
				hashtags = append(hashtags, h)
			}
		}
	}
	if len(hashtags) == 0 {
		hashtags = []string{
			"#" + strings.ReplaceAll(user.ProductName, " ", ""),
			"#" + user.Category,
			"#" + user.Platform,
		}
	}

	return Content{
		Slogan:       fmt.Sprintf("%s - %s excellence", user.ProductName, user.Tone),
		Captions:     captions,
		Hashtags:     hashtags,
		CallToAction: fmt.Sprintf("Shop %s Now!", user.ProductName),
	}
}
