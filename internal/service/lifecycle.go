// internal/service/lifecycle.go
package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/metrics"
	"github.com/credicardpos/console-backend/internal/model"
)

// pipelineNext maps each lifecycle status to its successor. Completed is
// terminal and has no entry.
var pipelineNext = map[model.CampaignStatus]model.CampaignStatus{
	model.StatusDraft:     model.StatusScheduled,
	model.StatusScheduled: model.StatusSending,
	model.StatusSending:   model.StatusSent,
	model.StatusSent:      model.StatusCompleted,
}

var validate = validator.New()

// WizardData is the form accumulated across the four wizard steps. The
// validate tags are enforced on finalize, not during step navigation.
type WizardData struct {
	Name           string        `json:"name" validate:"required"`
	Channel        model.Channel `json:"channel" validate:"required,oneof=whatsapp_business sms email"`
	BankFilter     string        `json:"bank_filter"`
	InactivityDays string        `json:"inactivity_days"`
	RegionFilter   string        `json:"region_filter"`
	Message        string        `json:"message" validate:"required"`
}

// Wizard is the 4-step campaign creation flow:
// 1 Configuración, 2 Audiencia, 3 Mensaje, 4 Revisar.
type Wizard struct {
	Step int
	Data WizardData
}

// NewWizard opens the wizard at step 1 with the operation's defaults.
func NewWizard() *Wizard {
	return &Wizard{
		Step: 1,
		Data: WizardData{
			Channel:        model.ChannelWhatsApp,
			BankFilter:     "Todos",
			InactivityDays: "30 DIAS SIN TX",
			RegionFilter:   "Todas",
		},
	}
}

// Next advances one step, capped at the review step.
func (w *Wizard) Next() {
	if w.Step < 4 {
		w.Step++
	}
}

// Back goes one step back; from step 1 it is a no-op.
func (w *Wizard) Back() {
	if w.Step > 1 {
		w.Step--
	}
}

// InsertVariable appends a {{name}} placeholder token to the message.
func (w *Wizard) InsertVariable(name string) {
	w.Data.Message = InsertVariable(w.Data.Message, name)
}

// Finalize validates the accumulated form and creates the campaign in draft.
// Step navigation alone never blocks; this is the enforcement point.
func (w *Wizard) Finalize(s *CampaignService) (*model.Campaign, error) {
	return s.CreateCampaign(w.Data)
}

// channelTags maps a channel to the tag shown on the board card.
var channelTags = map[model.Channel][]string{
	model.ChannelWhatsApp: {"WhatsApp"},
	model.ChannelSMS:      {"SMS"},
	model.ChannelEmail:    {"Email"},
}

// CreateCampaign creates a new draft from wizard data. Name, channel and
// message are mandatory.
func (s *CampaignService) CreateCampaign(data WizardData) (*model.Campaign, error) {
	if err := validate.Struct(data); err != nil {
		if fields, ok := err.(validator.ValidationErrors); ok && len(fields) > 0 {
			return nil, appErrors.NewValidation(fields[0].Field(), "failed "+fields[0].Tag())
		}
		return nil, appErrors.NewValidation("", err.Error())
	}

	c := &model.Campaign{
		ID:             uuid.NewString(),
		Title:          data.Name,
		Status:         model.StatusDraft,
		Channel:        data.Channel,
		Tags:           channelTags[data.Channel],
		Message:        data.Message,
		BankFilter:     data.BankFilter,
		InactivityDays: data.InactivityDays,
		RegionFilter:   data.RegionFilter,
		Members:        []model.CampaignMember{},
		Stats:          &model.CampaignStats{},
		CreatedAt:      time.Now(),
	}
	s.Campaigns.Insert(c)
	metrics.CampaignsCreated.Inc()

	s.Logger.Info().Str("campaign_id", c.ID).Str("title", c.Title).Msg("campaign created")
	return c, nil
}

// Advance moves a campaign to the next lifecycle state. Entering sending
// resets progress; leaving it forces progress to 100. Completed is terminal.
func (s *CampaignService) Advance(campaignID string) (*model.Campaign, error) {
	return s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		next, ok := pipelineNext[c.Status]
		if !ok {
			return appErrors.NewValidation("status", "campaign is completed and cannot advance")
		}
		c.Status = next
		switch next {
		case model.StatusSending:
			c.Progress = 0
		case model.StatusSent:
			c.Progress = 100
		}
		touch(c)
		return nil
	})
}

// UpdateDraft edits title, template and audience filters. Permitted only
// while the campaign is a draft; later states are read-only for
// configuration.
func (s *CampaignService) UpdateDraft(campaignID string, data WizardData) (*model.Campaign, error) {
	return s.Campaigns.Update(campaignID, func(c *model.Campaign) error {
		if !c.Editable() {
			return appErrors.NewValidation("status", "only draft campaigns can be edited")
		}
		if data.Name == "" {
			return appErrors.NewValidation("name", "failed required")
		}
		if data.Message == "" {
			return appErrors.NewValidation("message", "failed required")
		}
		c.Title = data.Name
		c.Message = data.Message
		c.BankFilter = data.BankFilter
		c.InactivityDays = data.InactivityDays
		c.RegionFilter = data.RegionFilter
		touch(c)
		return nil
	})
}
