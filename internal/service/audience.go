// internal/service/audience.go
package service

import (
	"strings"

	"github.com/credicardpos/console-backend/internal/model"
)

// ResolveCandidates computes the clients eligible to be added to a campaign.
// A client already represented among the members is never a candidate;
// matching is by stable client id, not display name. The search query is a
// case-insensitive substring match on name or RIF, empty matches all.
// Directory order is preserved. Pure: safe to call on every keystroke.
func ResolveCandidates(all []model.Client, members []model.CampaignMember, query string) []model.Client {
	memberIDs := make(map[string]struct{}, len(members))
	for _, m := range members {
		memberIDs[m.ClientID] = struct{}{}
	}

	q := strings.ToLower(strings.TrimSpace(query))

	candidates := []model.Client{}
	for _, c := range all {
		if _, isMember := memberIDs[c.ID]; isMember {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.RIF), q) {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// Candidates resolves the eligible clients for a campaign against the
// current directory snapshot.
func (s *CampaignService) Candidates(campaignID, query string) ([]model.Client, error) {
	c, err := s.Campaigns.Get(campaignID)
	if err != nil {
		return nil, err
	}
	return ResolveCandidates(s.Directory.ListAll(), c.Members, query), nil
}
