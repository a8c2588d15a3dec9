// internal/service/delivery.go
package service

import (
	"time"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/metrics"
	"github.com/credicardpos/console-backend/internal/model"
)

// deliveryTransitions defines the forward edges of the per-member delivery
// state machine. Movement is monotonic: the only way backward is the
// explicit retry path out of failed, which is not listed here.
var deliveryTransitions = map[model.DeliveryStatus][]model.DeliveryStatus{
	model.DeliverySent:      {model.DeliveryDelivered, model.DeliveryFailed},
	model.DeliveryDelivered: {model.DeliveryRead, model.DeliveryFailed},
	model.DeliveryRead:      {model.DeliveryReplied},
	model.DeliveryReplied:   {},
	model.DeliveryFailed:    {},
}

// CanTransition reports whether a member may move from one delivery status
// to another.
func CanTransition(from, to model.DeliveryStatus) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AdvanceMember applies a forward delivery transition to one member. A
// transition to replied also records a reply event for the analytics
// roll-up.
func (s *CampaignService) AdvanceMember(campaignID, memberID string, to model.DeliveryStatus) (*model.Campaign, error) {
	if !to.Valid() {
		return nil, appErrors.NewValidation("status", "unknown delivery status "+string(to))
	}

	now := time.Now()
	replied := false
	updated, err := s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		for i := range c.Members {
			if c.Members[i].ID != memberID {
				continue
			}
			from := c.Members[i].Status
			if !CanTransition(from, to) {
				return appErrors.NewValidation("status", "cannot move "+string(from)+" to "+string(to))
			}
			c.Members[i].Status = to
			c.Members[i].LastUpdate = now
			replied = to == model.DeliveryReplied
			touch(c)
			return nil
		}
		return appErrors.NewValidation("member_id", "unknown member "+memberID)
	})
	if err != nil {
		return nil, err
	}

	if replied {
		s.Events.Append(model.MemberEvent{
			CampaignID: campaignID,
			MemberID:   memberID,
			Type:       model.EventReply,
			At:         now,
		})
	}
	return updated, nil
}

// RetryFailed resets every currently failed member back to sent and bumps
// its retry counter. The member set is walked once, so a member reset
// earlier in the batch cannot be retried twice. Returns the number of
// members retried; zero is not an error.
func (s *CampaignService) RetryFailed(campaignID string) (int, error) {
	now := time.Now()
	retried := 0
	var retriedIDs []string

	_, err := s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		retried = 0
		retriedIDs = retriedIDs[:0]
		for i := range c.Members {
			if c.Members[i].Status != model.DeliveryFailed {
				continue
			}
			c.Members[i].Status = model.DeliverySent
			c.Members[i].RetryCount++
			c.Members[i].LastUpdate = now
			retried++
			retriedIDs = append(retriedIDs, c.Members[i].ID)
		}
		if retried > 0 {
			touch(c)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	events := make([]model.MemberEvent, 0, len(retriedIDs))
	for _, id := range retriedIDs {
		events = append(events, model.MemberEvent{
			CampaignID: campaignID,
			MemberID:   id,
			Type:       model.EventSent,
			At:         now,
		})
	}
	s.Events.Append(events...)
	metrics.Retries.Add(float64(retried))

	if retried > 0 {
		s.Logger.Info().Str("campaign_id", campaignID).Int("retried", retried).Msg("failed members reset to sent")
	}
	return retried, nil
}
