// internal/service/analytics.go
package service

import (
	"sort"
	"time"

	"github.com/credicardpos/console-backend/internal/model"
)

// Bucket is one time slot of the campaign interaction series.
type Bucket struct {
	Time    string `json:"time"`
	Sent    int    `json:"sent"`
	Replies int    `json:"replies"`
}

// Aggregate reduces member events into an ordered sequence of time buckets.
// It is a pure reduction: recomputing over the same input yields the same
// series, there are no hidden counters. Bucket labels use the wall-clock
// hour of the bucket start.
func Aggregate(events []model.MemberEvent, interval time.Duration) []Bucket {
	if interval <= 0 {
		interval = time.Hour
	}

	counts := make(map[time.Time]*Bucket)
	for _, e := range events {
		slot := e.At.Truncate(interval)
		b, ok := counts[slot]
		if !ok {
			b = &Bucket{Time: slot.Format("15:04")}
			counts[slot] = b
		}
		switch e.Type {
		case model.EventSent:
			b.Sent++
		case model.EventReply:
			b.Replies++
		}
	}

	slots := make([]time.Time, 0, len(counts))
	for slot := range counts {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })

	series := make([]Bucket, 0, len(slots))
	for _, slot := range slots {
		series = append(series, *counts[slot])
	}
	return series
}

// BestHours re-sorts a series by replies descending for the "best hours"
// ranking. Ties keep timeline order. The input slice is not modified.
func BestHours(series []Bucket) []Bucket {
	ranked := append([]Bucket(nil), series...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Replies > ranked[j].Replies })
	return ranked
}

// Analytics builds the hourly interaction series for a campaign.
func (s *CampaignService) Analytics(campaignID string) ([]Bucket, error) {
	if _, err := s.Campaigns.Get(campaignID); err != nil {
		return nil, err
	}
	return Aggregate(s.Events.ListByCampaign(campaignID), time.Hour), nil
}
