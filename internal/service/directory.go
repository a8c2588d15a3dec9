// internal/service/directory.go
package service

import (
	"strings"

	"github.com/credicardpos/console-backend/internal/model"
)

// FilterClients applies the directory's faceted filter: a free-text search
// over name, initials, RIF and affiliate code plus multi-select bank, region
// and gestión facets. An empty facet list means no constraint. Directory
// order is preserved.
func FilterClients(clients []model.Client, filter model.ClientFilter) []model.Client {
	q := strings.ToLower(filter.Query)

	out := []model.Client{}
	for _, c := range clients {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Initials), q) &&
			!strings.Contains(strings.ToLower(c.RIF), q) &&
			!strings.Contains(c.CodigoAfiliado, filter.Query) {
			continue
		}
		if !facetMatch(filter.Banks, c.Banco) {
			continue
		}
		if !facetMatch(filter.Regions, c.Region) {
			continue
		}
		if !facetMatch(filter.Gestions, c.Gestion) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func facetMatch(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// FilteredClients runs the faceted filter against the directory snapshot.
func (s *CampaignService) FilteredClients(filter model.ClientFilter) []model.Client {
	return FilterClients(s.Directory.ListAll(), filter)
}
