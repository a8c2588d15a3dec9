// internal/service/template.go
package service

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{\{(.*?)\}\}`)

// RenderTemplate substitutes {{identifier}} tokens with values from data.
// Identifiers are free text and not validated at authoring time; unknown
// tokens pass through verbatim, so rendering is total.
func RenderTemplate(template string, data map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := strings.TrimSpace(placeholderRe.FindStringSubmatch(match)[1])
		if value, ok := data[name]; ok {
			return value
		}
		return match
	})
}

// InsertVariable appends a placeholder token to a message.
func InsertVariable(message, name string) string {
	return message + " {{" + name + "}} "
}

// PreviewSamples are the values used to render the phone-mock preview.
func PreviewSamples() map[string]string {
	return map[string]string{
		"nombre":        "Carlos",
		"banco":         "Banesco",
		"dias_inactivo": "45",
	}
}

// Preview renders a campaign's template (or an override) with the sample
// values.
func (s *CampaignService) Preview(campaignID string, overrideTemplate *string) (string, error) {
	c, err := s.Campaigns.Get(campaignID)
	if err != nil {
		return "", err
	}

	template := c.Message
	if overrideTemplate != nil && strings.TrimSpace(*overrideTemplate) != "" {
		template = *overrideTemplate
	}
	return RenderTemplate(template, PreviewSamples()), nil
}
