package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lenslot/LS-BookingService/internal/domain"
	"github.com/lenslot/LS-BookingService/pkg/dbmetrics"
	"github.com/lenslot/LS-BookingService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с записями availability.
// Одна денормализованная строка на фотографа: расписание (jsonb),
// список дат (text[]) и настройки бронирования — формат совместим
// с уже накопленными данными.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория availability
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает запись availability фотографа
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"user_id",
		"working_hours",
		"available_dates",
		"advance_notice_hours",
		"max_bookings_per_day",
		"buffer_minutes",
		"updated_at",
	).
		From("availability").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var availability domain.Availability
	var workingHoursRaw []byte
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&availability.UserID,
		&workingHoursRaw,
		pq.Array(&availability.AvailableDates),
		&availability.Settings.AdvanceNoticeHours,
		&availability.Settings.MaxBookingsPerDay,
		&availability.Settings.BufferMinutes,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan availability: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(workingHoursRaw, &availability.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - unmarshal working hours: %v", ErrDecodeSchedule, err)
	}

	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}

// Upsert сохраняет запись availability целиком (replace-on-save).
// Фотограф всегда отправляет полный агрегат, частичных обновлений нет.
func (r *Repository) Upsert(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHoursRaw, err := json.Marshal(availability.WorkingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal working hours: %v", ErrEncodeSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("availability").
		Columns(
			"user_id",
			"working_hours",
			"available_dates",
			"advance_notice_hours",
			"max_bookings_per_day",
			"buffer_minutes",
			"updated_at",
		).
		Values(
			availability.UserID,
			workingHoursRaw,
			pq.Array(availability.AvailableDates),
			availability.Settings.AdvanceNoticeHours,
			availability.Settings.MaxBookingsPerDay,
			availability.Settings.BufferMinutes,
			squirrel.Expr("NOW()"),
		).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"working_hours = EXCLUDED.working_hours, " +
			"available_dates = EXCLUDED.available_dates, " +
			"advance_notice_hours = EXCLUDED.advance_notice_hours, " +
			"max_bookings_per_day = EXCLUDED.max_bookings_per_day, " +
			"buffer_minutes = EXCLUDED.buffer_minutes, " +
			"updated_at = NOW()").
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	availability.UpdatedAt = updatedAt.Time

	return availability, nil
}
