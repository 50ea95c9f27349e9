package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/click2025-space/clickers-workspace/internal/config"
	"github.com/click2025-space/clickers-workspace/internal/model"
)

type key string

const keyConn = key("conn")

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Chk returns the transaction bound to the context when the request runs
// inside the tx middleware, the pooled connection otherwise.
func (r *Repository) Chk(ctx context.Context) executor {
	if tx, ok := ctx.Value(keyConn).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, keyConn, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

type messageRow struct {
	ID       string       `db:"id"`
	SenderID string       `db:"sender_id"`
	Channel  string       `db:"channel"`
	Content  string       `db:"content"`
	SentAt   sql.NullTime `db:"sent_at"`
	Seq      int64        `db:"seq"`
}

func (r *Repository) GetAllMessages(ctx context.Context) (*model.MessageList, error) {
	query, args, err := sq.Select(
		"id",
		"sender_id",
		"channel",
		"content",
		"sent_at",
		"seq",
	).
		From("messages").
		OrderBy("sent_at ASC", "seq ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []messageRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %v", err)
	}

	messages := make(model.MessageList, len(rows))
	for i, row := range rows {
		messages[i] = model.Message{
			ID:       row.ID,
			SenderID: row.SenderID,
			Channel:  row.Channel,
			Body:     model.ParseBody(row.Content),
			SentAt:   row.SentAt.Time,
			Seq:      row.Seq,
		}
	}

	return &messages, nil
}

// SaveMessage inserts the message and fills in the store-assigned seq.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "sender_id", "channel", "content", "sent_at").
		Values(message.ID, message.SenderID, message.Channel, model.EncodeBody(message.Body), message.SentAt).
		Suffix("RETURNING seq").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.Seq, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

// DeleteMessage removes a message, provided requesterID is its sender.
func (r *Repository) DeleteMessage(ctx context.Context, messageID, requesterID string) error {
	query, args, err := sq.Select("sender_id").
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var senderID string
	err = r.Chk(ctx).GetContext(ctx, &senderID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrMessageNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find message: %v", err)
	}

	if senderID != requesterID {
		return model.ErrNotMessageSender
	}

	query, args, err = sq.Delete("messages").
		Where(sq.And{
			sq.Eq{"id": messageID},
			sq.Eq{"sender_id": requesterID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete message: %v", err)
	}

	return nil
}

func (r *Repository) GetMembers(ctx context.Context) (*model.ParticipantList, error) {
	query, args, err := sq.Select(
		"id",
		"name",
		"role",
		"avatar_url",
		"status",
	).
		From("members").
		OrderBy("name ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var members model.ParticipantList
	err = r.Chk(ctx).SelectContext(ctx, &members, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %v", err)
	}

	return &members, nil
}

func (r *Repository) UpdateMemberName(ctx context.Context, memberID, name string) error {
	query, args, err := sq.Update("members").
		Set("name", name).
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateMemberAvatar(ctx context.Context, memberID, avatarURL string) error {
	query, args, err := sq.Update("members").
		Set("avatar_url", avatarURL).
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateMemberStatus(ctx context.Context, memberID, status string) error {
	query, args, err := sq.Update("members").
		Set("status", status).
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
