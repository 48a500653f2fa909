package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type chatStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GroupsFor(ctx context.Context, userID string) ([]models.ChatGroup, error)
	CreateGroup(ctx context.Context, name string, memberIDs []string, adminID string) (*models.ChatGroup, error)
	LeaveGroup(ctx context.Context, userID, groupID string) error
	UpdateGroupAvatar(ctx context.Context, groupID, avatar string) error
	Messages(ctx context.Context, userID, otherID string, isGroup bool) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.ChatMessage, error)
	SendGroupMessage(ctx context.Context, senderID, groupID, content string) (*models.ChatMessage, error)
	MarkMessagesRead(ctx context.Context, userID, senderID string) error
	ClearChat(ctx context.Context, userID, otherID string) error
	UnreadMessageCount(ctx context.Context, userID string) (int, error)
	ToggleBlock(ctx context.Context, userID, targetID string) (bool, error)
	IsBlocked(ctx context.Context, userID, targetID string) (bool, error)
	Contacts(ctx context.Context, userID string) ([]models.Contact, error)
}

// CreateGroupRequest is the payload for creating a chat group.
type CreateGroupRequest struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members" validate:"required,min=1,dive,required"`
}

// SendMessageRequest is the payload for sending a direct or group message.
type SendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	Group      bool   `json:"group"`
}

// ChatService manages messaging on top of the store facade.
type ChatService struct {
	store     chatStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewChatService constructs a ChatService.
func NewChatService(store chatStore, validate *validator.Validate, logger *zap.Logger) *ChatService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{store: store, validator: validate, logger: logger}
}

// Contacts returns the chat directory for one user.
func (s *ChatService) Contacts(ctx context.Context, userID string) ([]models.Contact, error) {
	contacts, err := s.store.Contacts(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list contacts")
	}
	return contacts, nil
}

// Groups returns the groups the user belongs to.
func (s *ChatService) Groups(ctx context.Context, userID string) ([]models.ChatGroup, error) {
	groups, err := s.store.GroupsFor(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list groups")
	}
	return groups, nil
}

// CreateGroup validates members and makes the creator the sole admin. Every
// invited participant must be an existing account.
func (s *ChatService) CreateGroup(ctx context.Context, creatorID string, req CreateGroupRequest) (*models.ChatGroup, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid group payload")
	}

	for _, memberID := range req.Members {
		member, err := s.store.GetUser(ctx, memberID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify member")
		}
		if member == nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "group member does not exist")
		}
	}

	group, err := s.store.CreateGroup(ctx, req.Name, req.Members, creatorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create group")
	}
	return group, nil
}

// LeaveGroup removes the caller from a group.
func (s *ChatService) LeaveGroup(ctx context.Context, userID, groupID string) error {
	if err := s.store.LeaveGroup(ctx, userID, groupID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to leave group")
	}
	return nil
}

// UpdateGroupAvatar replaces a group's avatar image.
func (s *ChatService) UpdateGroupAvatar(ctx context.Context, groupID, avatar string) error {
	if avatar == "" {
		return appErrors.Clone(appErrors.ErrValidation, "avatar must not be empty")
	}
	if err := s.store.UpdateGroupAvatar(ctx, groupID, avatar); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update group avatar")
	}
	return nil
}

// Messages returns one conversation in chronological order.
func (s *ChatService) Messages(ctx context.Context, userID, otherID string, isGroup bool) ([]models.ChatMessage, error) {
	messages, err := s.store.Messages(ctx, userID, otherID, isGroup)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list messages")
	}
	return messages, nil
}

// Send delivers a direct or group message. Direct delivery is refused while
// either side of the pair has the other blocked; the receiver must exist.
func (s *ChatService) Send(ctx context.Context, senderID string, req SendMessageRequest) (*models.ChatMessage, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid message payload")
	}

	if req.Group {
		msg, err := s.store.SendGroupMessage(ctx, senderID, req.ReceiverID, req.Content)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send group message")
		}
		return msg, nil
	}

	receiver, err := s.store.GetUser(ctx, req.ReceiverID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify receiver")
	}
	if receiver == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "receiver not found")
	}

	if blocked, err := s.pairBlocked(ctx, senderID, req.ReceiverID); err != nil {
		return nil, err
	} else if blocked {
		return nil, appErrors.ErrBlocked
	}

	msg, err := s.store.SendMessage(ctx, senderID, req.ReceiverID, req.Content)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to send message")
	}
	return msg, nil
}

// MarkRead marks direct messages from a sender as read.
func (s *ChatService) MarkRead(ctx context.Context, userID, senderID string) error {
	if err := s.store.MarkMessagesRead(ctx, userID, senderID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark messages read")
	}
	return nil
}

// Clear permanently removes a conversation.
func (s *ChatService) Clear(ctx context.Context, userID, otherID string) error {
	if err := s.store.ClearChat(ctx, userID, otherID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear chat")
	}
	return nil
}

// UnreadCount returns the total unread direct messages for a user.
func (s *ChatService) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.store.UnreadMessageCount(ctx, userID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count messages")
	}
	return count, nil
}

// ToggleBlock flips the caller's block on a target and reports the new state.
func (s *ChatService) ToggleBlock(ctx context.Context, userID, targetID string) (bool, error) {
	blocked, err := s.store.ToggleBlock(ctx, userID, targetID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to toggle block")
	}
	return blocked, nil
}

func (s *ChatService) pairBlocked(ctx context.Context, a, b string) (bool, error) {
	blocked, err := s.store.IsBlocked(ctx, a, b)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check block")
	}
	if blocked {
		return true, nil
	}
	blocked, err = s.store.IsBlocked(ctx, b, a)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check block")
	}
	return blocked, nil
}
