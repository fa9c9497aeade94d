package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type messageUsecase struct {
	msgRepo  domain.MessageRepository
	userRepo domain.UserRepository
	jobRepo  domain.JobRepository
}

func NewMessageUsecase(msgRepo domain.MessageRepository, userRepo domain.UserRepository, jobRepo domain.JobRepository) domain.MessageUsecase {
	return &messageUsecase{
		msgRepo:  msgRepo,
		userRepo: userRepo,
		jobRepo:  jobRepo,
	}
}

func (u *messageUsecase) SendMessage(ctx context.Context, senderID, receiverID int64, content string, jobID *int64) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Message content is required")
	}
	if senderID == receiverID {
		return nil, apperror.BadRequest("You cannot message yourself")
	}

	sender, err := u.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	receiver, err := u.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recipient not found")
		}
		return nil, apperror.Internal(err)
	}

	// Messaging runs across the marketplace divide only.
	if sender.Role == receiver.Role {
		return nil, apperror.BadRequest("Messages can only be sent between candidates and recruiters")
	}

	if jobID != nil {
		if _, err := u.jobRepo.GetByID(ctx, *jobID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Job not found")
			}
			return nil, apperror.Internal(err)
		}
	}

	msg := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		JobID:      jobID,
		Content:    content,
	}
	if err := u.msgRepo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}
	return msg, nil
}

func (u *messageUsecase) GetThread(ctx context.Context, userID, otherUserID int64) ([]domain.Message, error) {
	if _, err := u.userRepo.GetByID(ctx, otherUserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	msgs, err := u.msgRepo.GetThread(ctx, userID, otherUserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Opening the thread counts as reading the other side's messages.
	if err := u.msgRepo.MarkRead(ctx, userID, otherUserID); err != nil {
		return nil, apperror.Internal(err)
	}
	return msgs, nil
}

func (u *messageUsecase) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	convs, err := u.msgRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return convs, nil
}

func (u *messageUsecase) MarkRead(ctx context.Context, userID, otherUserID int64) error {
	if err := u.msgRepo.MarkRead(ctx, userID, otherUserID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
