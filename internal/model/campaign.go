// internal/model/campaign.go
package model

import "time"

// CampaignStatus is the kanban-level lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusScheduled CampaignStatus = "scheduled"
	StatusSending   CampaignStatus = "sending"
	StatusSent      CampaignStatus = "sent"
	StatusCompleted CampaignStatus = "completed"
)

// campaignStatusLabels is the display vocabulary for the board columns.
// It must stay total over the enum; Label panics on an unknown status
// because that is a programming error, not a runtime condition.
var campaignStatusLabels = map[CampaignStatus]string{
	StatusDraft:     "Borrador",
	StatusScheduled: "Programada",
	StatusSending:   "Enviando",
	StatusSent:      "Enviada",
	StatusCompleted: "Completada",
}

// CampaignStatuses lists every lifecycle status in pipeline order.
func CampaignStatuses() []CampaignStatus {
	return []CampaignStatus{StatusDraft, StatusScheduled, StatusSending, StatusSent, StatusCompleted}
}

func (s CampaignStatus) Valid() bool {
	_, ok := campaignStatusLabels[s]
	return ok
}

func (s CampaignStatus) Label() string {
	label, ok := campaignStatusLabels[s]
	if !ok {
		panic("model: no label for campaign status " + string(s))
	}
	return label
}

// CampaignStats are the aggregate delivery counters shown on the detail
// header. Invariant: Replied <= Read <= Delivered <= Sent.
type CampaignStats struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Replied   int `json:"replied"`
}

// Channel is the outbound channel a campaign is configured for.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp_business"
	ChannelSMS      Channel = "sms"
	ChannelEmail    Channel = "email"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelWhatsApp, ChannelSMS, ChannelEmail:
		return true
	}
	return false
}

// Campaign is a re-engagement messaging campaign on the kanban board.
type Campaign struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Status   CampaignStatus `json:"status"`
	Channel  Channel        `json:"channel"`
	Audience int            `json:"audience"`
	Tags     []string       `json:"tags"`

	// Progress is the send progress (0-100), meaningful only while the
	// campaign is in StatusSending.
	Progress int            `json:"progress,omitempty"`
	Stats    *CampaignStats `json:"stats,omitempty"`

	// Message is the outbound template with {{variable}} placeholders.
	Message string `json:"message"`

	// Audience filter criteria captured by the wizard.
	BankFilter     string `json:"bank_filter"`
	InactivityDays string `json:"inactivity_days"`
	RegionFilter   string `json:"region_filter"`

	Members []CampaignMember `json:"members"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Editable reports whether configuration (title, template, filters) may
// still change. Only drafts are editable; later states are read-only.
func (c *Campaign) Editable() bool {
	return c.Status == StatusDraft
}
