// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// ErrCampaignNotFound is a sentinel error
type ErrCampaignNotFound struct {
	CampaignID string
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %s not found", e.CampaignID)
}

// Helper constructor
func NewCampaignNotFound(id string) error {
	return &ErrCampaignNotFound{CampaignID: id}
}

// ValidationError blocks the triggering action locally; it is never fatal.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError anywhere in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DuplicateMemberError signals an attempt to enroll a client already present
// in the campaign. The resolver excludes members proactively, so hitting this
// means the caller bypassed the candidate list.
type DuplicateMemberError struct {
	CampaignID string
	ClientID   string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("client %s is already a member of campaign %s", e.ClientID, e.CampaignID)
}

func NewDuplicateMember(campaignID, clientID string) error {
	return &DuplicateMemberError{CampaignID: campaignID, ClientID: clientID}
}

// TransportError is a distinguishable failure from the (simulated) outbound
// channel. Surfaced to the caller as a typed result, never used for control
// flow.
type TransportError struct {
	MemberID string
	Cause    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure for member %s: %v", e.MemberID, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

func NewTransport(memberID string, cause error) error {
	return &TransportError{MemberID: memberID, Cause: cause}
}

// ErrSendInFlight rejects a second send while one is outstanding for the
// same campaign.
var ErrSendInFlight = errors.New("a send is already in flight for this campaign")

// ErrEmptySelection rejects member additions with no clients selected.
var ErrEmptySelection = NewValidation("client_ids", "at least one client must be selected")
