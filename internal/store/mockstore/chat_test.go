package mockstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactsAnnotation(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	contacts, err := m.Contacts(ctx, "1")
	require.NoError(t, err)
	require.Len(t, contacts, 4)

	teacher := -1
	for i := range contacts {
		if contacts[i].ID == "2" {
			teacher = i
			break
		}
	}
	require.NotEqual(t, -1, teacher)
	// The seeded conversation has one unread message from the teacher and the
	// student's own reply as the latest content.
	assert.Equal(t, 1, contacts[teacher].Unread)
	assert.Equal(t, "Si profesor, ya lo estoy terminando.", contacts[teacher].LastMessage)
	assert.False(t, contacts[teacher].IsBlocked)
}

func TestToggleBlockFlipsAndAnnotates(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	blocked, err := m.ToggleBlock(ctx, "1", "2")
	require.NoError(t, err)
	assert.True(t, blocked)

	isBlocked, err := m.IsBlocked(ctx, "1", "2")
	require.NoError(t, err)
	assert.True(t, isBlocked)

	// Blocks are one-directional.
	reverse, err := m.IsBlocked(ctx, "2", "1")
	require.NoError(t, err)
	assert.False(t, reverse)

	contacts, err := m.Contacts(ctx, "1")
	require.NoError(t, err)
	for _, c := range contacts {
		if c.ID == "2" {
			assert.True(t, c.IsBlocked)
		}
	}

	blocked, err = m.ToggleBlock(ctx, "1", "2")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestDirectMessagesChronological(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, err := m.SendMessage(ctx, "1", "2", "Tercero")
	require.NoError(t, err)

	conv, err := m.Messages(ctx, "1", "2", false)
	require.NoError(t, err)
	require.Len(t, conv, 3)
	assert.Equal(t, "Tercero", conv[2].Content)
	assert.True(t, conv[0].Timestamp.Before(conv[1].Timestamp))
}

func TestGroupLifecycle(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	group, err := m.CreateGroup(ctx, "Tutores", []string{"2", "3"}, "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(group.ID, "g"))
	assert.ElementsMatch(t, []string{"2", "3", "4"}, group.Members)
	assert.Equal(t, []string{"4"}, group.Admins)

	// The sole admin leaving promotes the first remaining member.
	require.NoError(t, m.LeaveGroup(ctx, "4", group.ID))
	groups, err := m.GroupsFor(ctx, "2")
	require.NoError(t, err)

	var updated bool
	for _, g := range groups {
		if g.ID == group.ID {
			updated = true
			assert.Equal(t, []string{"2"}, g.Admins)
		}
	}
	assert.True(t, updated)

	// Emptying the group deletes it.
	require.NoError(t, m.LeaveGroup(ctx, "2", group.ID))
	require.NoError(t, m.LeaveGroup(ctx, "3", group.ID))
	groups, err = m.GroupsFor(ctx, "3")
	require.NoError(t, err)
	for _, g := range groups {
		assert.NotEqual(t, group.ID, g.ID)
	}
}

func TestGroupMessagesStaySeparate(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, err := m.SendGroupMessage(ctx, "2", "g1", "Reunión el lunes")
	require.NoError(t, err)

	groupConv, err := m.Messages(ctx, "2", "g1", true)
	require.NoError(t, err)
	require.Len(t, groupConv, 1)
	assert.Equal(t, "g1", groupConv[0].GroupID)

	// The direct conversation between 1 and 2 is untouched.
	direct, err := m.Messages(ctx, "1", "2", false)
	require.NoError(t, err)
	assert.Len(t, direct, 2)
}

func TestMarkMessagesReadAndUnreadCount(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	count, err := m.UnreadMessageCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, m.MarkMessagesRead(ctx, "1", "2"))

	count, err = m.UnreadMessageCount(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestClearChatByPrefix(t *testing.T) {
	m := newMock(t)
	ctx := context.Background()

	_, err := m.SendGroupMessage(ctx, "2", "g1", "Se borra")
	require.NoError(t, err)

	require.NoError(t, m.ClearChat(ctx, "2", "g1"))
	groupConv, err := m.Messages(ctx, "2", "g1", true)
	require.NoError(t, err)
	assert.Empty(t, groupConv)

	require.NoError(t, m.ClearChat(ctx, "1", "2"))
	direct, err := m.Messages(ctx, "1", "2", false)
	require.NoError(t, err)
	assert.Empty(t, direct)
}
