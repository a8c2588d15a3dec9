// internal/service/campaign_service.go
package service

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/store"
)

// CampaignService owns every campaign-level operation: lifecycle, audience
// resolution, membership, delivery transitions and analytics. It operates on
// the in-memory snapshot held by the stores.
type CampaignService struct {
	Directory *store.DirectoryStore
	Campaigns *store.CampaignStore
	Events    *store.EventStore
	Logger    zerolog.Logger
}

func NewCampaignService(directory *store.DirectoryStore, campaigns *store.CampaignStore, events *store.EventStore, logger zerolog.Logger) *CampaignService {
	return &CampaignService{
		Directory: directory,
		Campaigns: campaigns,
		Events:    events,
		Logger:    logger,
	}
}

// Board groups campaigns by lifecycle status for the kanban view, one bucket
// per column in pipeline order. Within a column campaigns keep insertion
// order.
func (s *CampaignService) Board() map[model.CampaignStatus][]model.Campaign {
	board := make(map[model.CampaignStatus][]model.Campaign, 5)
	for _, status := range model.CampaignStatuses() {
		board[status] = []model.Campaign{}
	}
	for _, c := range s.Campaigns.List() {
		board[c.Status] = append(board[c.Status], c)
	}
	return board
}

// GetCampaign returns a campaign with its stats recomputed from the member
// list.
func (s *CampaignService) GetCampaign(id string) (*model.Campaign, error) {
	c, err := s.Campaigns.Get(id)
	if err != nil {
		return nil, err
	}
	stats := RecomputeStats(c.Members)
	c.Stats = &stats
	return c, nil
}

// RecomputeStats derives the aggregate counters from member delivery states.
// Each state implies the earlier ones (a read message was delivered and
// sent), which keeps replied <= read <= delivered <= sent by construction.
func RecomputeStats(members []model.CampaignMember) model.CampaignStats {
	var stats model.CampaignStats
	for _, m := range members {
		stats.Sent++
		switch m.Status {
		case model.DeliveryDelivered:
			stats.Delivered++
		case model.DeliveryRead:
			stats.Delivered++
			stats.Read++
		case model.DeliveryReplied:
			stats.Delivered++
			stats.Read++
			stats.Replied++
		}
	}
	return stats
}

// touch stamps a campaign as modified.
func touch(c *model.Campaign) {
	now := time.Now()
	c.UpdatedAt = &now
}

// Banks returns the distinct banks present in the directory, sorted. Used by
// the wizard's audience filter step.
func (s *CampaignService) Banks() []string {
	return distinct(s.Directory.ListAll(), func(c model.Client) string { return c.Banco })
}

// Regions returns the distinct regions present in the directory, sorted.
func (s *CampaignService) Regions() []string {
	return distinct(s.Directory.ListAll(), func(c model.Client) string { return c.Region })
}

func distinct(clients []model.Client, key func(model.Client) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range clients {
		k := key(c)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
