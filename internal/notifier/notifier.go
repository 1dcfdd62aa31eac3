// Package notifier is the fire-and-forget fan-out port. Mutations publish
// structured events to topics after their storage transaction commits; a
// delivery failure is logged and never propagated back to the mutation.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of change an event describes
type EventType string

const (
	EventListCreated EventType = "LIST_CREATED"
	EventListUpdated EventType = "LIST_UPDATED"
	EventListMoved   EventType = "LIST_MOVED"
	EventListDeleted EventType = "LIST_DELETED"

	EventCardCreated EventType = "CARD_CREATED"
	EventCardUpdated EventType = "CARD_UPDATED"
	EventCardMoved   EventType = "CARD_MOVED"
	EventCardDeleted EventType = "CARD_DELETED"

	EventCommentAdded   EventType = "COMMENT_ADDED"
	EventCommentUpdated EventType = "COMMENT_UPDATED"
	EventCommentDeleted EventType = "COMMENT_DELETED"

	EventMemberJoined  EventType = "MEMBER_JOINED"
	EventMemberLeft    EventType = "MEMBER_LEFT"
	EventMemberRemoved EventType = "MEMBER_REMOVED"
	EventRoleChanged   EventType = "ROLE_CHANGED"

	EventInviteCreated EventType = "INVITE_CREATED"
	EventInviteRevoked EventType = "INVITE_REVOKED"

	EventBoardUpdated EventType = "BOARD_UPDATED"
	EventBoardDeleted EventType = "BOARD_DELETED"

	EventWorkspaceUpdated EventType = "WORKSPACE_UPDATED"
	EventWorkspaceDeleted EventType = "WORKSPACE_DELETED"
)

// Event is the payload published to a topic
type Event struct {
	Type       EventType   `json:"type"`
	ActorID    uuid.UUID   `json:"actor_id"`
	Payload    interface{} `json:"payload,omitempty"`
	OccurredAt string      `json:"occurred_at"`
}

// NewEvent builds an event stamped with the current time
func NewEvent(eventType EventType, actorID uuid.UUID, payload interface{}) Event {
	return Event{
		Type:       eventType,
		ActorID:    actorID,
		Payload:    payload,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Notifier publishes events to subscribers of a topic. Implementations must
// never block the caller on delivery failures.
type Notifier interface {
	Publish(ctx context.Context, topic string, event Event)
}

// BoardTopic is the topic carrying all changes to one board
func BoardTopic(boardID uuid.UUID) string {
	return fmt.Sprintf("board/%s", boardID)
}

// CardTopic is the topic carrying changes to one card
func CardTopic(boardID, cardID uuid.UUID) string {
	return fmt.Sprintf("board/%s/card/%s", boardID, cardID)
}

// WorkspaceTopic is the topic carrying workspace-level changes
func WorkspaceTopic(workspaceID uuid.UUID) string {
	return fmt.Sprintf("workspace/%s", workspaceID)
}

// UserQueueTopic is the per-user topic for direct notifications such as invites
func UserQueueTopic(userID uuid.UUID) string {
	return fmt.Sprintf("user/%s/queue", userID)
}

// NoOpNotifier discards all events, used when redis is unavailable
type NoOpNotifier struct{}

// NewNoOpNotifier creates a notifier that does nothing
func NewNoOpNotifier() Notifier {
	return &NoOpNotifier{}
}

// Publish discards the event
func (n *NoOpNotifier) Publish(ctx context.Context, topic string, event Event) {}
