package mockstore

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/models"
)

func (m *Mock) GroupsFor(_ context.Context, userID string) ([]models.ChatGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.groups()
	if err != nil {
		return nil, err
	}

	var mine []models.ChatGroup
	for _, g := range all {
		if contains(g.Members, userID) {
			mine = append(mine, g)
		}
	}
	return mine, nil
}

// CreateGroup makes the creator the sole admin and a member alongside the
// invitees.
func (m *Mock) CreateGroup(_ context.Context, name string, memberIDs []string, adminID string) (*models.ChatGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.groups()
	if err != nil {
		return nil, err
	}

	group := models.ChatGroup{
		ID:      "g" + uuid.NewString(),
		Name:    name,
		Members: append(append([]string{}, memberIDs...), adminID),
		Admins:  []string{adminID},
		Avatar:  models.AvatarForName(name),
	}

	all = append(all, group)
	if err := m.write(keyGroups, all); err != nil {
		return nil, err
	}
	return &group, nil
}

// LeaveGroup removes the member. An emptied group is deleted; a group left
// without admins promotes its first remaining member.
func (m *Mock) LeaveGroup(_ context.Context, userID, groupID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.groups()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID != groupID {
			continue
		}

		all[i].Members = remove(all[i].Members, userID)
		if len(all[i].Members) == 0 {
			all = append(all[:i], all[i+1:]...)
			return m.write(keyGroups, all)
		}

		if contains(all[i].Admins, userID) {
			all[i].Admins = remove(all[i].Admins, userID)
			if len(all[i].Admins) == 0 {
				all[i].Admins = append(all[i].Admins, all[i].Members[0])
			}
		}
		return m.write(keyGroups, all)
	}
	return nil
}

func (m *Mock) UpdateGroupAvatar(_ context.Context, groupID, avatar string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.groups()
	if err != nil {
		return err
	}

	for i := range all {
		if all[i].ID == groupID {
			all[i].Avatar = avatar
			return m.write(keyGroups, all)
		}
	}
	return nil
}

// Messages returns the conversation in chronological order. For direct
// conversations otherID is the partner, for groups it is the group ID.
func (m *Mock) Messages(_ context.Context, userID, otherID string, isGroup bool) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.messages()
	if err != nil {
		return nil, err
	}

	var conv []models.ChatMessage
	for _, msg := range all {
		if isGroup {
			if msg.GroupID == otherID {
				conv = append(conv, msg)
			}
		} else if !msg.IsGroup() && betweenUsers(msg, userID, otherID) {
			conv = append(conv, msg)
		}
	}
	sort.SliceStable(conv, func(i, j int) bool {
		return conv[i].Timestamp.Before(conv[j].Timestamp)
	})
	return conv, nil
}

func (m *Mock) SendMessage(_ context.Context, senderID, receiverID, content string) (*models.ChatMessage, error) {
	return m.appendMessage(models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
}

// SendGroupMessage duplicates the group ID into the receiver field so group
// traffic never collides with a direct conversation.
func (m *Mock) SendGroupMessage(_ context.Context, senderID, groupID, content string) (*models.ChatMessage, error) {
	return m.appendMessage(models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: groupID,
		GroupID:    groupID,
		Content:    content,
	})
}

func (m *Mock) appendMessage(msg models.ChatMessage) (*models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.messages()
	if err != nil {
		return nil, err
	}

	msg.ID = uuid.NewString()
	msg.Timestamp = time.Now().UTC()
	msg.Read = false

	all = append(all, msg)
	if err := m.write(keyMessages, all); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkMessagesRead marks direct messages from senderID to userID as read.
// Group messages carry per-sender read state only, so they are left alone.
func (m *Mock) MarkMessagesRead(_ context.Context, userID, senderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.messages()
	if err != nil {
		return err
	}

	for i := range all {
		if !all[i].IsGroup() && all[i].ReceiverID == userID && all[i].SenderID == senderID {
			all[i].Read = true
		}
	}
	return m.write(keyMessages, all)
}

// ClearChat deletes a whole conversation. The "g" prefix convention decides
// whether otherID names a group.
func (m *Mock) ClearChat(_ context.Context, userID, otherID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.messages()
	if err != nil {
		return err
	}

	isGroup := strings.HasPrefix(otherID, "g")
	kept := all[:0]
	for _, msg := range all {
		if isGroup {
			if msg.GroupID != otherID {
				kept = append(kept, msg)
			}
		} else if !betweenUsers(msg, userID, otherID) {
			kept = append(kept, msg)
		}
	}
	return m.write(keyMessages, kept)
}

func (m *Mock) UnreadMessageCount(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all, err := m.messages()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, msg := range all {
		if !msg.IsGroup() && msg.ReceiverID == userID && !msg.Read {
			count++
		}
	}
	return count, nil
}

// ToggleBlock flips the one-directional block from userID to targetID and
// returns the new state.
func (m *Mock) ToggleBlock(_ context.Context, userID, targetID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blocked, err := m.blocked()
	if err != nil {
		return false, err
	}

	if contains(blocked[userID], targetID) {
		blocked[userID] = remove(blocked[userID], targetID)
		return false, m.write(keyBlocked, blocked)
	}
	blocked[userID] = append(blocked[userID], targetID)
	return true, m.write(keyBlocked, blocked)
}

func (m *Mock) IsBlocked(_ context.Context, userID, targetID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	blocked, err := m.blocked()
	if err != nil {
		return false, err
	}
	return contains(blocked[userID], targetID), nil
}

// Contacts lists every other user annotated with the direct conversation
// state seen from userID.
func (m *Mock) Contacts(_ context.Context, userID string) ([]models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	if err := m.read(keyUsers, &users); err != nil {
		return nil, err
	}
	all, err := m.messages()
	if err != nil {
		return nil, err
	}
	blocked, err := m.blocked()
	if err != nil {
		return nil, err
	}

	var contacts []models.Contact
	for _, u := range users {
		if u.ID == userID {
			continue
		}

		var last *models.ChatMessage
		unread := 0
		for i := range all {
			msg := all[i]
			if msg.IsGroup() || !betweenUsers(msg, userID, u.ID) {
				continue
			}
			if last == nil || msg.Timestamp.After(last.Timestamp) {
				last = &all[i]
			}
			if msg.SenderID == u.ID && msg.ReceiverID == userID && !msg.Read {
				unread++
			}
		}

		contact := models.Contact{
			User:      u,
			Unread:    unread,
			IsBlocked: contains(blocked[userID], u.ID),
		}
		if last != nil {
			contact.LastMessage = last.Content
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func (m *Mock) groups() ([]models.ChatGroup, error) {
	var all []models.ChatGroup
	if err := m.read(keyGroups, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (m *Mock) messages() ([]models.ChatMessage, error) {
	var all []models.ChatMessage
	if err := m.read(keyMessages, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (m *Mock) blocked() (map[string][]string, error) {
	all := make(map[string][]string)
	if err := m.read(keyBlocked, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func betweenUsers(msg models.ChatMessage, a, b string) bool {
	return (msg.SenderID == a && msg.ReceiverID == b) || (msg.SenderID == b && msg.ReceiverID == a)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func remove(list []string, id string) []string {
	kept := list[:0]
	for _, v := range list {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
