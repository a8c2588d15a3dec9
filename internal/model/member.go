// internal/model/member.go
package model

import "time"

// DeliveryStatus tracks a member's outbound message through its lifecycle.
type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryReplied   DeliveryStatus = "replied"
	DeliveryFailed    DeliveryStatus = "failed"
)

// deliveryStatusLabels maps every delivery status to its display label.
// Must stay total over the enum.
var deliveryStatusLabels = map[DeliveryStatus]string{
	DeliverySent:      "Enviado",
	DeliveryDelivered: "Entregado",
	DeliveryRead:      "Leído",
	DeliveryReplied:   "Respondido",
	DeliveryFailed:    "Fallido",
}

// DeliveryStatuses lists every delivery status, forward states first.
func DeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{DeliverySent, DeliveryDelivered, DeliveryRead, DeliveryReplied, DeliveryFailed}
}

func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryStatusLabels[s]
	return ok
}

func (s DeliveryStatus) Label() string {
	label, ok := deliveryStatusLabels[s]
	if !ok {
		panic("model: no label for delivery status " + string(s))
	}
	return label
}

// Terminal reports whether the initial send can progress no further.
// The retry path out of failed is explicit, not a forward transition.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryReplied || s == DeliveryFailed
}

// CampaignMember is a client enrolled in a campaign. Name and phone are
// denormalized from the client at add-time; ClientID is the stable identity
// used for membership exclusion.
type CampaignMember struct {
	ID         string         `json:"id"`
	ClientID   string         `json:"client_id"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	Status     DeliveryStatus `json:"status"`
	RetryCount int            `json:"retry_count"`
	LastUpdate time.Time      `json:"last_update"`
}

// MemberEventType classifies an analytics event.
type MemberEventType string

const (
	EventSent  MemberEventType = "sent"
	EventReply MemberEventType = "reply"
)

// MemberEvent is a single delivery event used by the analytics roll-up.
type MemberEvent struct {
	CampaignID string          `json:"campaign_id"`
	MemberID   string          `json:"member_id"`
	Type       MemberEventType `json:"type"`
	At         time.Time       `json:"at"`
}
