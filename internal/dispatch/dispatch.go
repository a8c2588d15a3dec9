// internal/dispatch/dispatch.go
package dispatch

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/metrics"
	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
	"github.com/credicardpos/console-backend/internal/store"
)

// SendFunc delivers one rendered message over the (simulated) channel.
type SendFunc func(ctx context.Context, member model.CampaignMember, rendered string) error

// Result reports the outcome for one member of a dispatch batch. Err is a
// *appErrors.TransportError when the channel failed.
type Result struct {
	MemberID string
	Err      error
}

var errSimulated = errors.New("simulated channel failure")

// SimulatedSender fails a configurable fraction of sends. A rate of 0 never
// fails, 1 always fails.
func SimulatedSender(failureRate float64, rng *rand.Rand) SendFunc {
	return func(ctx context.Context, member model.CampaignMember, rendered string) error {
		if rng.Float64() < failureRate {
			return errSimulated
		}
		return nil
	}
}

// Dispatcher runs the simulated outbound send for a campaign. At most one
// batch per campaign may be in flight: a second Send is rejected with
// ErrSendInFlight rather than interleaving writes against the same member
// list. Batches are cancellable through the context passed to Send, so a
// torn-down view never updates state after disposal.
type Dispatcher struct {
	campaigns *store.CampaignStore
	svc       *service.CampaignService
	send      SendFunc
	delay     time.Duration
	logger    zerolog.Logger

	mu       sync.Mutex
	inFlight map[string]context.CancelFunc
}

func New(campaigns *store.CampaignStore, svc *service.CampaignService, send SendFunc, delay time.Duration, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		campaigns: campaigns,
		svc:       svc,
		send:      send,
		delay:     delay,
		logger:    logger,
		inFlight:  make(map[string]context.CancelFunc),
	}
}

// Send starts the dispatch batch for every member currently in sent state.
// The campaign is moved to sending with zeroed progress; when the batch
// drains it advances to sent. Per-member outcomes stream on the returned
// channel, which is closed when the batch finishes or is cancelled.
func (d *Dispatcher) Send(ctx context.Context, campaignID string) (<-chan Result, error) {
	c, err := d.campaigns.Get(campaignID)
	if err != nil {
		return nil, err
	}
	switch c.Status {
	case model.StatusDraft, model.StatusScheduled, model.StatusSending:
	default:
		return nil, appErrors.NewValidation("status", "campaign cannot be sent in status "+string(c.Status))
	}

	d.mu.Lock()
	if _, busy := d.inFlight[campaignID]; busy {
		d.mu.Unlock()
		return nil, appErrors.ErrSendInFlight
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.inFlight[campaignID] = cancel
	d.mu.Unlock()

	if _, err := d.campaigns.Update(campaignID, func(c *model.Campaign) error {
		c.Status = model.StatusSending
		c.Progress = 0
		return nil
	}); err != nil {
		d.release(campaignID)
		return nil, err
	}

	// Snapshot the pending members before the goroutine starts so the batch
	// is fixed even if members are added mid-send.
	var pending []model.CampaignMember
	for _, m := range c.Members {
		if m.Status == model.DeliverySent {
			pending = append(pending, m)
		}
	}

	results := make(chan Result, len(pending))
	go d.run(runCtx, campaignID, pending, results)
	return results, nil
}

// Cancel aborts the in-flight batch for a campaign, if any.
func (d *Dispatcher) Cancel(campaignID string) {
	d.mu.Lock()
	cancel, ok := d.inFlight[campaignID]
	d.mu.Unlock()
	if ok {
		cancel()
	}
}

func (d *Dispatcher) release(campaignID string) {
	d.mu.Lock()
	if cancel, ok := d.inFlight[campaignID]; ok {
		cancel()
		delete(d.inFlight, campaignID)
	}
	d.mu.Unlock()
}

func (d *Dispatcher) run(ctx context.Context, campaignID string, pending []model.CampaignMember, results chan<- Result) {
	defer close(results)
	defer d.release(campaignID)

	samples := service.PreviewSamples()
	total := len(pending)

	for i, member := range pending {
		if d.delay > 0 {
			select {
			case <-ctx.Done():
				d.logger.Warn().Str("campaign_id", campaignID).Msg("dispatch cancelled")
				return
			case <-time.After(d.delay):
			}
		} else if ctx.Err() != nil {
			d.logger.Warn().Str("campaign_id", campaignID).Msg("dispatch cancelled")
			return
		}

		c, err := d.campaigns.Get(campaignID)
		if err != nil {
			return
		}
		rendered := service.RenderTemplate(c.Message, samples)

		sendErr := d.send(ctx, member, rendered)
		if ctx.Err() != nil {
			// Cancelled while sending: do not touch state after disposal.
			return
		}

		status := model.DeliveryDelivered
		if sendErr != nil {
			status = model.DeliveryFailed
		}
		if _, err := d.campaigns.Update(campaignID, func(c *model.Campaign) error {
			for j := range c.Members {
				if c.Members[j].ID == member.ID {
					c.Members[j].Status = status
					c.Members[j].LastUpdate = time.Now()
					break
				}
			}
			c.Progress = (i + 1) * 100 / total
			return nil
		}); err != nil {
			return
		}

		if sendErr != nil {
			metrics.MessagesFailed.Inc()
			results <- Result{MemberID: member.ID, Err: appErrors.NewTransport(member.ID, sendErr)}
		} else {
			metrics.MessagesSent.Inc()
			results <- Result{MemberID: member.ID}
		}
	}

	// Batch drained: the campaign has been sent.
	if _, err := d.svc.Advance(campaignID); err != nil {
		d.logger.Error().Err(err).Str("campaign_id", campaignID).Msg("failed to advance campaign after send")
		return
	}
	d.logger.Info().Str("campaign_id", campaignID).Int("messages", total).Msg("dispatch finished")
}
