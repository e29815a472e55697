package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/pkg/dbmetrics"
	"github.com/lenslot/LS-BookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает уведомление.
// Вызывающий код трактует ошибку как best-effort: запись уведомления
// никогда не откатывает породившую его операцию.
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "type", "title", "message", "read").
		Values(n.UserID, n.Type, n.Title, n.Message, n.Read).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// GetByID получает уведомление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "type", "title", "message", "read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var n domain.Notification
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Read, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notification: %v", ErrScanRow, err)
	}

	n.CreatedAt = createdAt.Time

	return &n, nil
}

// GetByUserID получает уведомления пользователя, свежие первыми
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "type", "title", "message", "read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"read": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Read, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan notification: %v", ErrScanRow, err)
		}
		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление прочитанным
func (r *Repository) MarkRead(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (r *Repository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("read", true).
		Where(squirrel.Eq{"user_id": userID, "read": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет уведомление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
