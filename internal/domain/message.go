package domain

import (
	"context"
	"time"
)

// JobRef is the compact job shape attached to a message for context.
type JobRef struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Message is directed text between a candidate and a recruiter. Same-role
// pairs are rejected at the usecase layer.
type Message struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	JobID      *int64    `json:"job_id,omitempty"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined data for thread responses
	Sender *UserRef `json:"sender,omitempty"`
	Job    *JobRef  `json:"job,omitempty"`
}

// Conversation summarizes the exchange with one partner: the latest message
// and how many of their messages the caller has not read yet.
type Conversation struct {
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`
	UnreadCount     int       `json:"unread_count"`
}

type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// GetThread returns every message between the two users, oldest first,
	// with sender and job context populated.
	GetThread(ctx context.Context, userID, otherUserID int64) ([]Message, error)
	// MarkRead flags all unread messages from senderID to receiverID as read.
	MarkRead(ctx context.Context, receiverID, senderID int64) error
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID, receiverID int64, content string, jobID *int64) (*Message, error)
	// GetThread returns the conversation and, as a side effect, marks the
	// other user's messages to the caller as read.
	GetThread(ctx context.Context, userID, otherUserID int64) ([]Message, error)
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)
	MarkRead(ctx context.Context, userID, otherUserID int64) error
}
