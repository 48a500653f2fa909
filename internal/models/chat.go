package models

import "time"

// ChatMessage belongs either to a direct conversation (GroupID empty, receiver
// is a user) or to a group conversation (GroupID set, receiver duplicates it).
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	GroupID    string    `json:"groupId,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// IsGroup reports whether the message belongs to a group conversation.
func (m ChatMessage) IsGroup() bool { return m.GroupID != "" }

// ChatGroup is a named conversation. Admins is always a subset of Members.
type ChatGroup struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Admins  []string `json:"admins"`
	Avatar  string   `json:"avatar,omitempty"`
}

// Contact is a chat directory entry: another user annotated with the state of
// the direct conversation as seen by the requesting user.
type Contact struct {
	User
	Unread      int    `json:"unread"`
	LastMessage string `json:"lastMessage,omitempty"`
	IsBlocked   bool   `json:"isBlocked"`
}
