package quiz

import (
	"fmt"
	"html"
	"strings"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/recommend"
)

type Rendering struct {
	Text string
	// HTML is Text with the recommended drink in bold.
	HTML     string
	ImageRef string
}

// RenderResult builds the message shown after a completed quiz. The image folder follows the raw
// temperature answer, alternatives are labelled with their own temperature.
func RenderResult(
	res recommend.Result,
	answers recommend.Answers,
	q recommend.Questionnaire,
	resolver present.Resolver,
) Rendering {
	main := resolver.Resolve(res.Prediction, answers.Get(q.Key(catalog.FeatureTemperature)))

	lines := []string{
		main.Description,
		"",
		fmt.Sprintf("نسبة التطابق: %.0f%%", res.Confidence*100),
	}

	alternatives := []string{}
	for _, c := range res.Shortlist {
		if c.Item.Name == res.Item.Name && c.Item.Temperature == res.Item.Temperature {
			continue
		}

		tempToken := q.NoToken
		if c.Item.IsCold() {
			tempToken = q.YesToken
		}
		alt := resolver.Resolve(c.Item.Name, tempToken)
		alternatives = append(alternatives, fmt.Sprintf("%d. %s", len(alternatives)+1, alt.Label))
	}

	if len(alternatives) > 0 {
		lines = append(lines, "", "خيارات قريبة أخرى:")
		lines = append(lines, alternatives...)
	}

	escaped := make([]string, 0, len(lines))
	for _, l := range lines {
		escaped = append(escaped, html.EscapeString(l))
	}

	const title = "☕ ننصحك بـ: "

	return Rendering{
		Text:     title + main.Label + "\n" + strings.Join(lines, "\n"),
		HTML:     title + "<b>" + html.EscapeString(main.Label) + "</b>\n" + strings.Join(escaped, "\n"),
		ImageRef: main.ImageRef,
	}
}
