package service_test

import (
	"testing"

	"github.com/credicardpos/console-backend/internal/model"
	"github.com/credicardpos/console-backend/internal/service"
)

func TestDeliveryTransitionsAreMonotonic(t *testing.T) {
	allowed := map[[2]model.DeliveryStatus]bool{
		{model.DeliverySent, model.DeliveryDelivered}:      true,
		{model.DeliverySent, model.DeliveryFailed}:         true,
		{model.DeliveryDelivered, model.DeliveryRead}:      true,
		{model.DeliveryDelivered, model.DeliveryFailed}:    true,
		{model.DeliveryRead, model.DeliveryReplied}:        true,
	}

	for _, from := range model.DeliveryStatuses() {
		for _, to := range model.DeliveryStatuses() {
			want := allowed[[2]model.DeliveryStatus{from, to}]
			if got := service.CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestAdvanceMemberForward(t *testing.T) {
	svc, campID := newTestService(model.StatusSending, memberFor("a", "m1", model.DeliverySent))

	updated, err := svc.AdvanceMember(campID, "m1", model.DeliveryDelivered)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Members[0].Status != model.DeliveryDelivered {
		t.Fatalf("expected delivered, got %s", updated.Members[0].Status)
	}

	// Backward move is rejected.
	if _, err := svc.AdvanceMember(campID, "m1", model.DeliverySent); err == nil {
		t.Fatal("expected backward transition to be rejected")
	}
}

func TestRetryFailedResetsToSent(t *testing.T) {
	svc, campID := newTestService(model.StatusSending,
		memberFor("a", "m1", model.DeliveryFailed),
		memberFor("b", "m2", model.DeliveryRead),
	)

	retried, err := svc.RetryFailed(campID)
	if err != nil {
		t.Fatal(err)
	}
	if retried != 1 {
		t.Fatalf("expected 1 member retried, got %d", retried)
	}

	c, err := svc.GetCampaign(campID)
	if err != nil {
		t.Fatal(err)
	}
	if c.Members[0].Status != model.DeliverySent {
		t.Fatalf("expected failed member reset to sent, got %s", c.Members[0].Status)
	}
	if c.Members[0].RetryCount != 1 {
		t.Fatalf("expected retry count 1, got %d", c.Members[0].RetryCount)
	}
	if c.Members[1].Status != model.DeliveryRead {
		t.Fatalf("non-failed member must be untouched, got %s", c.Members[1].Status)
	}
}

func TestRetryFailedSecondPassIsNoOp(t *testing.T) {
	svc, campID := newTestService(model.StatusSending, memberFor("a", "m1", model.DeliveryFailed))

	if retried, _ := svc.RetryFailed(campID); retried != 1 {
		t.Fatalf("first retry should reset 1 member, got %d", retried)
	}

	// The member is now sent; a second batch must not retry it again.
	retried, err := svc.RetryFailed(campID)
	if err != nil {
		t.Fatal(err)
	}
	if retried != 0 {
		t.Fatalf("second retry must be a no-op, got %d", retried)
	}

	c, _ := svc.GetCampaign(campID)
	if c.Members[0].RetryCount != 1 {
		t.Fatalf("retry count must stay 1, got %d", c.Members[0].RetryCount)
	}
}

func TestDeliveryLabelMappingIsTotal(t *testing.T) {
	labels := map[string]bool{}
	for _, s := range model.DeliveryStatuses() {
		label := s.Label() // panics on a gap
		if label == "" {
			t.Fatalf("empty label for %s", s)
		}
		if labels[label] {
			t.Fatalf("duplicate label %q", label)
		}
		labels[label] = true
	}
	if len(labels) != 5 {
		t.Fatalf("expected 5 distinct labels, got %d", len(labels))
	}
}

func TestCampaignLabelMappingIsTotal(t *testing.T) {
	labels := map[string]bool{}
	for _, s := range model.CampaignStatuses() {
		label := s.Label()
		if label == "" || labels[label] {
			t.Fatalf("label mapping not total/unique at %s", s)
		}
		labels[label] = true
	}
	if len(labels) != 5 {
		t.Fatalf("expected 5 distinct labels, got %d", len(labels))
	}
}

func TestStatsInvariantHolds(t *testing.T) {
	stats := service.RecomputeStats([]model.CampaignMember{
		memberFor("a", "m1", model.DeliveryReplied),
		memberFor("b", "m2", model.DeliveryRead),
		memberFor("c", "m3", model.DeliveryDelivered),
		memberFor("d", "m4", model.DeliverySent),
		memberFor("e", "m5", model.DeliveryFailed),
	})

	if stats.Sent != 5 || stats.Delivered != 3 || stats.Read != 2 || stats.Replied != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !(stats.Replied <= stats.Read && stats.Read <= stats.Delivered && stats.Delivered <= stats.Sent) {
		t.Fatalf("stats invariant violated: %+v", stats)
	}
}
