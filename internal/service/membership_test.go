package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/credicardpos/console-backend/internal/errors"
	"github.com/credicardpos/console-backend/internal/model"
)

func TestAddMembersEmptySelectionRejected(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft)

	_, err := svc.AddMembers(campID, nil)
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err), "empty selection must be a validation error")

	c, err := svc.GetCampaign(campID)
	require.NoError(t, err)
	assert.Empty(t, c.Members, "rejected add must be a no-op")
}

func TestAddMembersDedupesWithinBatch(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft)

	updated, err := svc.AddMembers(campID, []string{"b", "b", "b"})
	require.NoError(t, err)
	require.Len(t, updated.Members, 1)
	assert.Equal(t, "b", updated.Members[0].ClientID)
}

func TestAddMembersAssignsUniqueIDsAndInitialStatus(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft)

	updated, err := svc.AddMembers(campID, []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, updated.Members, 3)

	seen := map[string]bool{}
	for _, m := range updated.Members {
		assert.False(t, seen[m.ID], "member ids must be unique within a batch")
		seen[m.ID] = true
		assert.Equal(t, model.DeliverySent, m.Status, "initial delivery status is sent")
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Phone)
	}
}

func TestAddMembersRecomputesAudience(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft, memberFor("a", "m1", model.DeliverySent))

	updated, err := svc.AddMembers(campID, []string{"b"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Audience, "audience must equal member count after add")
}

func TestAddMembersRejectsExistingMember(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft, memberFor("a", "m1", model.DeliverySent))

	_, err := svc.AddMembers(campID, []string{"a"})
	require.Error(t, err)

	var dup *appErrors.DuplicateMemberError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a", dup.ClientID)
}

func TestAddMembersCompletedCampaignRejected(t *testing.T) {
	svc, campID := newTestService(model.StatusCompleted)

	_, err := svc.AddMembers(campID, []string{"a"})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestAddMembersAllowedWhileSending(t *testing.T) {
	svc, campID := newTestService(model.StatusSending)

	updated, err := svc.AddMembers(campID, []string{"a"})
	require.NoError(t, err)
	assert.Len(t, updated.Members, 1)
}

func TestRemoveMemberIsNoOpSafe(t *testing.T) {
	svc, campID := newTestService(model.StatusDraft, memberFor("a", "m1", model.DeliverySent))

	updated, err := svc.RemoveMember(campID, "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, updated.Members, 1)

	updated, err = svc.RemoveMember(campID, "m1")
	require.NoError(t, err)
	assert.Empty(t, updated.Members)
	assert.Equal(t, 0, updated.Audience)
}
