package postgres

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	msg.CreatedAt = time.Now()
	msg.IsRead = false

	query := `INSERT INTO messages (sender_id, receiver_id, job_id, content, is_read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.JobID, msg.Content, msg.IsRead, msg.CreatedAt,
	).Scan(&msg.ID)
}

func (r *messageRepo) GetThread(ctx context.Context, userID, otherUserID int64) ([]domain.Message, error) {
	query := `SELECT m.id, m.sender_id, m.receiver_id, m.job_id, m.content, m.is_read, m.created_at,
                     u.id, u.name, u.email,
                     j.id, j.title, j.company
              FROM messages m
              JOIN users u ON m.sender_id = u.id
              LEFT JOIN jobs j ON m.job_id = j.id
              WHERE (m.sender_id = $1 AND m.receiver_id = $2)
                 OR (m.sender_id = $2 AND m.receiver_id = $1)
              ORDER BY m.created_at, m.id`
	rows, err := r.db.Query(ctx, query, userID, otherUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		var sender domain.UserRef
		var jobID *int64
		var jobTitle, jobCompany *string
		err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.JobID, &m.Content, &m.IsRead, &m.CreatedAt,
			&sender.ID, &sender.Name, &sender.Email,
			&jobID, &jobTitle, &jobCompany,
		)
		if err != nil {
			return nil, err
		}
		m.Sender = &sender
		if jobID != nil {
			m.Job = &domain.JobRef{ID: *jobID, Title: *jobTitle, Company: *jobCompany}
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *messageRepo) MarkRead(ctx context.Context, receiverID, senderID int64) error {
	query := `UPDATE messages SET is_read = TRUE
              WHERE receiver_id = $1 AND sender_id = $2 AND is_read = FALSE`
	_, err := r.db.Exec(ctx, query, receiverID, senderID)
	return err
}

func (r *messageRepo) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	// One row per partner: the latest message wins, unread counts only the
	// partner's messages to the caller.
	query := `WITH partners AS (
                  SELECT DISTINCT ON (partner_id)
                         CASE WHEN m.sender_id = $1 THEN m.receiver_id ELSE m.sender_id END AS partner_id,
                         m.content, m.created_at
                  FROM messages m
                  WHERE m.sender_id = $1 OR m.receiver_id = $1
                  ORDER BY partner_id, m.created_at DESC, m.id DESC
              )
              SELECT p.partner_id, u.name, u.email, u.role, p.content, p.created_at,
                     (SELECT COUNT(*) FROM messages um
                      WHERE um.sender_id = p.partner_id AND um.receiver_id = $1 AND um.is_read = FALSE)
              FROM partners p
              JOIN users u ON p.partner_id = u.id
              ORDER BY p.created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	convs := []domain.Conversation{}
	for rows.Next() {
		var c domain.Conversation
		err := rows.Scan(&c.UserID, &c.Name, &c.Email, &c.Role, &c.LastMessage, &c.LastMessageTime, &c.UnreadCount)
		if err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}
