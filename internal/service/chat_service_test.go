package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

func TestSendRefusedWhileBlocked(t *testing.T) {
	store := newStore(t)
	svc := NewChatService(store, nil, nil)
	ctx := context.Background()

	// The student blocks the teacher; neither direction may send.
	_, err := store.ToggleBlock(ctx, "1", "2")
	require.NoError(t, err)

	_, err = svc.Send(ctx, "2", SendMessageRequest{ReceiverID: "1", Content: "Hola"})
	assert.ErrorIs(t, err, appErrors.ErrBlocked)

	_, err = svc.Send(ctx, "1", SendMessageRequest{ReceiverID: "2", Content: "Hola"})
	assert.ErrorIs(t, err, appErrors.ErrBlocked)

	// Unblocking restores delivery.
	_, err = store.ToggleBlock(ctx, "1", "2")
	require.NoError(t, err)

	msg, err := svc.Send(ctx, "2", SendMessageRequest{ReceiverID: "1", Content: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, "Hola", msg.Content)
}

func TestSendToUnknownReceiver(t *testing.T) {
	svc := NewChatService(newStore(t), nil, nil)

	_, err := svc.Send(context.Background(), "1", SendMessageRequest{ReceiverID: "ghost", Content: "Hola"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestGroupSendSkipsBlockCheck(t *testing.T) {
	store := newStore(t)
	svc := NewChatService(store, nil, nil)
	ctx := context.Background()

	// Blocks are a direct-conversation concern only.
	_, err := store.ToggleBlock(ctx, "3", "2")
	require.NoError(t, err)

	msg, err := svc.Send(ctx, "2", SendMessageRequest{ReceiverID: "g1", Content: "Reunión", Group: true})
	require.NoError(t, err)
	assert.Equal(t, "g1", msg.GroupID)
}

func TestCreateGroupVerifiesMembers(t *testing.T) {
	svc := NewChatService(newStore(t), nil, nil)
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, "4", CreateGroupRequest{Name: "Tutores", Members: []string{"2", "ghost"}})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)

	group, err := svc.CreateGroup(ctx, "4", CreateGroupRequest{Name: "Tutores", Members: []string{"2", "3"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2", "3", "4"}, group.Members)
	assert.Equal(t, []string{"4"}, group.Admins)
}

func TestUpdateGroupAvatarRejectsEmpty(t *testing.T) {
	svc := NewChatService(newStore(t), nil, nil)

	err := svc.UpdateGroupAvatar(context.Background(), "g1", "")
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
