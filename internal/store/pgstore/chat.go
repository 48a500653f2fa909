package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/isfdyt26/portal-api/internal/models"
)

type groupRow struct {
	ID      string         `db:"id"`
	Name    string         `db:"name"`
	Members pq.StringArray `db:"members"`
	Admins  pq.StringArray `db:"admins"`
	Avatar  sql.NullString `db:"avatar"`
}

func (r groupRow) toModel() models.ChatGroup {
	return models.ChatGroup{
		ID:      r.ID,
		Name:    r.Name,
		Members: []string(r.Members),
		Admins:  []string(r.Admins),
		Avatar:  r.Avatar.String,
	}
}

type messageRow struct {
	ID         string         `db:"id"`
	SenderID   string         `db:"sender_id"`
	ReceiverID string         `db:"receiver_id"`
	GroupID    sql.NullString `db:"group_id"`
	Content    string         `db:"content"`
	Timestamp  time.Time      `db:"timestamp"`
	Read       bool           `db:"read"`
}

func (r messageRow) toModel() models.ChatMessage {
	return models.ChatMessage{
		ID:         r.ID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		GroupID:    r.GroupID.String,
		Content:    r.Content,
		Timestamp:  r.Timestamp,
		Read:       r.Read,
	}
}

func (p *PG) GroupsFor(ctx context.Context, userID string) ([]models.ChatGroup, error) {
	const query = `SELECT id, name, members, admins, avatar FROM chat_groups WHERE $1 = ANY(members)`

	var rows []groupRow
	if err := p.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}

	groups := make([]models.ChatGroup, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, r.toModel())
	}
	return groups, nil
}

func (p *PG) CreateGroup(ctx context.Context, name string, memberIDs []string, adminID string) (*models.ChatGroup, error) {
	group := models.ChatGroup{
		ID:      "g" + uuid.NewString(),
		Name:    name,
		Members: append(append([]string{}, memberIDs...), adminID),
		Admins:  []string{adminID},
		Avatar:  models.AvatarForName(name),
	}

	const query = `INSERT INTO chat_groups (id, name, members, admins, avatar) VALUES ($1, $2, $3, $4, $5)`
	if _, err := p.db.ExecContext(ctx, query, group.ID, group.Name, pq.Array(group.Members), pq.Array(group.Admins), group.Avatar); err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return &group, nil
}

// LeaveGroup rewrites the membership arrays. The emptied group is deleted,
// and a group left without admins promotes its first remaining member.
func (p *PG) LeaveGroup(ctx context.Context, userID, groupID string) error {
	const fetch = `SELECT id, name, members, admins, avatar FROM chat_groups WHERE id = $1`

	var row groupRow
	if err := p.db.GetContext(ctx, &row, fetch, groupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("fetch group: %w", err)
	}

	group := row.toModel()
	group.Members = removeID(group.Members, userID)
	if len(group.Members) == 0 {
		if _, err := p.db.ExecContext(ctx, `DELETE FROM chat_groups WHERE id = $1`, groupID); err != nil {
			return fmt.Errorf("delete empty group: %w", err)
		}
		return nil
	}

	if containsID(group.Admins, userID) {
		group.Admins = removeID(group.Admins, userID)
		if len(group.Admins) == 0 {
			group.Admins = append(group.Admins, group.Members[0])
		}
	}

	const update = `UPDATE chat_groups SET members = $1, admins = $2 WHERE id = $3`
	if _, err := p.db.ExecContext(ctx, update, pq.Array(group.Members), pq.Array(group.Admins), groupID); err != nil {
		return fmt.Errorf("update group membership: %w", err)
	}
	return nil
}

func (p *PG) UpdateGroupAvatar(ctx context.Context, groupID, avatar string) error {
	if _, err := p.db.ExecContext(ctx, `UPDATE chat_groups SET avatar = $1 WHERE id = $2`, avatar, groupID); err != nil {
		return fmt.Errorf("update group avatar: %w", err)
	}
	return nil
}

func (p *PG) Messages(ctx context.Context, userID, otherID string, isGroup bool) ([]models.ChatMessage, error) {
	var (
		query string
		args  []interface{}
	)
	if isGroup {
		query = `SELECT id, sender_id, receiver_id, group_id, content, timestamp, read
			FROM chat_messages WHERE group_id = $1 ORDER BY timestamp`
		args = []interface{}{otherID}
	} else {
		query = `SELECT id, sender_id, receiver_id, group_id, content, timestamp, read
			FROM chat_messages
			WHERE group_id IS NULL
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
			ORDER BY timestamp`
		args = []interface{}{userID, otherID}
	}

	var rows []messageRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, r.toModel())
	}
	return messages, nil
}

func (p *PG) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}

	const query = `INSERT INTO chat_messages (id, sender_id, receiver_id, content, timestamp, read) VALUES ($1, $2, $3, $4, $5, FALSE)`
	if _, err := p.db.ExecContext(ctx, query, msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, msg.Timestamp); err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return &msg, nil
}

func (p *PG) SendGroupMessage(ctx context.Context, senderID, groupID, content string) (*models.ChatMessage, error) {
	msg := models.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: groupID,
		GroupID:    groupID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}

	const query = `INSERT INTO chat_messages (id, sender_id, receiver_id, group_id, content, timestamp, read) VALUES ($1, $2, $3, $4, $5, $6, FALSE)`
	if _, err := p.db.ExecContext(ctx, query, msg.ID, msg.SenderID, msg.ReceiverID, msg.GroupID, msg.Content, msg.Timestamp); err != nil {
		return nil, fmt.Errorf("insert group message: %w", err)
	}
	return &msg, nil
}

func (p *PG) MarkMessagesRead(ctx context.Context, userID, senderID string) error {
	const query = `UPDATE chat_messages SET read = TRUE WHERE receiver_id = $1 AND sender_id = $2 AND group_id IS NULL`
	if _, err := p.db.ExecContext(ctx, query, userID, senderID); err != nil {
		return fmt.Errorf("mark messages read: %w", err)
	}
	return nil
}

func (p *PG) ClearChat(ctx context.Context, userID, otherID string) error {
	if strings.HasPrefix(otherID, "g") {
		if _, err := p.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE group_id = $1`, otherID); err != nil {
			return fmt.Errorf("clear group chat: %w", err)
		}
		return nil
	}

	const query = `DELETE FROM chat_messages
		WHERE group_id IS NULL
		  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))`
	if _, err := p.db.ExecContext(ctx, query, userID, otherID); err != nil {
		return fmt.Errorf("clear chat: %w", err)
	}
	return nil
}

func (p *PG) UnreadMessageCount(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM chat_messages WHERE receiver_id = $1 AND read = FALSE AND group_id IS NULL`

	var count int
	if err := p.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}

// ToggleBlock flips the directed block edge in the junction table.
func (p *PG) ToggleBlock(ctx context.Context, userID, targetID string) (bool, error) {
	blocked, err := p.IsBlocked(ctx, userID, targetID)
	if err != nil {
		return false, err
	}

	if blocked {
		const query = `DELETE FROM blocked_users WHERE user_id = $1 AND blocked_user_id = $2`
		if _, err := p.db.ExecContext(ctx, query, userID, targetID); err != nil {
			return false, fmt.Errorf("unblock user: %w", err)
		}
		return false, nil
	}

	const query = `INSERT INTO blocked_users (user_id, blocked_user_id) VALUES ($1, $2)`
	if _, err := p.db.ExecContext(ctx, query, userID, targetID); err != nil {
		return false, fmt.Errorf("block user: %w", err)
	}
	return true, nil
}

func (p *PG) IsBlocked(ctx context.Context, userID, targetID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM blocked_users WHERE user_id = $1 AND blocked_user_id = $2`

	var count int
	if err := p.db.GetContext(ctx, &count, query, userID, targetID); err != nil {
		return false, fmt.Errorf("check block: %w", err)
	}
	return count > 0, nil
}

// Contacts annotates every other user with direct-conversation state in one
// aggregated query instead of per-contact round trips.
func (p *PG) Contacts(ctx context.Context, userID string) ([]models.Contact, error) {
	users, err := p.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	type convRow struct {
		OtherID     string         `db:"other_id"`
		Unread      int            `db:"unread"`
		LastMessage sql.NullString `db:"last_message"`
	}
	const convQuery = `
		SELECT other_id,
		       COUNT(*) FILTER (WHERE sender_id = other_id AND read = FALSE) AS unread,
		       (ARRAY_AGG(content ORDER BY timestamp DESC))[1] AS last_message
		FROM (
			SELECT CASE WHEN sender_id = $1 THEN receiver_id ELSE sender_id END AS other_id,
			       sender_id, content, timestamp, read
			FROM chat_messages
			WHERE group_id IS NULL AND (sender_id = $1 OR receiver_id = $1)
		) conv
		GROUP BY other_id`

	var convRows []convRow
	if err := p.db.SelectContext(ctx, &convRows, convQuery, userID); err != nil {
		return nil, fmt.Errorf("aggregate conversations: %w", err)
	}
	conversations := make(map[string]convRow, len(convRows))
	for _, r := range convRows {
		conversations[r.OtherID] = r
	}

	var blockedIDs []string
	if err := p.db.SelectContext(ctx, &blockedIDs, `SELECT blocked_user_id FROM blocked_users WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}
	blocked := make(map[string]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	var contacts []models.Contact
	for _, u := range users {
		if u.ID == userID {
			continue
		}
		contact := models.Contact{User: u}
		if conv, ok := conversations[u.ID]; ok {
			contact.Unread = conv.Unread
			contact.LastMessage = conv.LastMessage.String
		}
		if _, ok := blocked[u.ID]; ok {
			contact.IsBlocked = true
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func containsID(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(list []string, id string) []string {
	kept := list[:0]
	for _, v := range list {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
