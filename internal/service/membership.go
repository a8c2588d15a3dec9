// internal/service/membership.go
package service

import (
	"time"

	"github.com/google/uuid"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/metrics"
	"github.com/credicardpos/console-backend/internal/model"
)

// AddMembers enrolls the selected clients into the campaign. Selected ids
// are matched against the currently eligible candidates, so a client that is
// already a member is rejected rather than duplicated. New members are
// prepended most-recent-first with an initial status of sent: the outbound
// job is assumed queued immediately, there is no intermediate state.
func (s *CampaignService) AddMembers(campaignID string, clientIDs []string) (*model.Campaign, error) {
	if len(clientIDs) == 0 {
		return nil, appErrors.ErrEmptySelection
	}

	directory := s.Directory.ListAll()
	now := time.Now()

	var added []model.CampaignMember
	updated, err := s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		if c.Status == model.StatusCompleted {
			return appErrors.NewValidation("status", "completed campaigns no longer accept members")
		}

		candidates := ResolveCandidates(directory, c.Members, "")
		byID := make(map[string]model.Client, len(candidates))
		for _, cand := range candidates {
			byID[cand.ID] = cand
		}
		existing := make(map[string]struct{}, len(c.Members))
		for _, m := range c.Members {
			existing[m.ClientID] = struct{}{}
		}

		added = added[:0]
		// Dedupe the selection itself so one batch can never enroll the
		// same client twice.
		batch := make(map[string]struct{}, len(clientIDs))
		for _, id := range clientIDs {
			if _, dup := batch[id]; dup {
				continue
			}
			batch[id] = struct{}{}

			cand, ok := byID[id]
			if !ok {
				if _, isMember := existing[id]; isMember {
					return appErrors.NewDuplicateMember(campaignID, id)
				}
				return appErrors.NewValidation("client_ids", "unknown client "+id)
			}

			added = append(added, model.CampaignMember{
				ID:         uuid.NewString(),
				ClientID:   cand.ID,
				Name:       cand.Name,
				Phone:      cand.Telefono,
				Status:     model.DeliverySent,
				LastUpdate: now,
			})
		}

		c.Members = append(added, c.Members...)
		c.Audience = len(c.Members)
		touch(c)
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]model.MemberEvent, 0, len(added))
	for _, m := range added {
		events = append(events, model.MemberEvent{
			CampaignID: campaignID,
			MemberID:   m.ID,
			Type:       model.EventSent,
			At:         now,
		})
	}
	s.Events.Append(events...)
	metrics.MembersAdded.Add(float64(len(added)))

	s.Logger.Info().
		Str("campaign_id", campaignID).
		Int("added", len(added)).
		Int("audience", updated.Audience).
		Msg("members added")

	return updated, nil
}

// RemoveMember drops a member from the campaign. Removing an id that is not
// present is a no-op, not an error.
func (s *CampaignService) RemoveMember(campaignID, memberID string) (*model.Campaign, error) {
	return s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		for i, m := range c.Members {
			if m.ID == memberID {
				c.Members = append(c.Members[:i], c.Members[i+1:]...)
				c.Audience = len(c.Members)
				touch(c)
				break
			}
		}
		return nil
	})
}
