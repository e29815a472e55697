package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lenslot/LS-BookingService/internal/domain"
	availabilityStorage "github.com/lenslot/LS-BookingService/internal/infra/storage/availability"
	"github.com/lenslot/LS-BookingService/internal/integrations/profileservice"
)

// UseCase usecase создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	notificationRepo NotificationRepository
	profileClient    ProfileServiceClient
	publisher        Publisher
	txManager        TransactionManager
	timeProvider     TimeProvider
	log              Logger
}

// NewUseCase конструктор usecase создания бронирования
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	notificationRepo NotificationRepository,
	profileClient ProfileServiceClient,
	publisher Publisher,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		notificationRepo: notificationRepo,
		profileClient:    profileClient,
		publisher:        publisher,
		txManager:        txManager,
		timeProvider:     timeProvider,
		log:              log,
	}
}

// Execute создаёт бронирование после проверки всех правил доступности.
// Правила проверяются внутри serializable-транзакции, чтобы два
// конкурентных запроса на одну дату не обошли лимит или буфер.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем, что получатель запроса существует и является фотографом
	profile, err := uc.profileClient.GetProfile(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			return nil, ErrPhotographerNotFound
		}
		uc.log.Error("create_booking: failed to fetch photographer profile: photographerID=%s, error=%v",
			req.PhotographerID, err)
		return nil, fmt.Errorf("%w: profile service: %v", ErrInternal, err)
	}
	if !profile.IsPhotographer() {
		return nil, ErrNotAPhotographer
	}

	var created *domain.Booking

	// 3. Проверяем правила доступности и создаём бронирование атомарно
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		availability, err := uc.availabilityRepo.GetByUserID(ctx, req.PhotographerID)
		if err != nil {
			if !errors.Is(err, availabilityStorage.ErrAvailabilityNotFound) {
				return fmt.Errorf("%w: get availability: %v", ErrInternal, err)
			}
			// Фотограф ещё не настраивал доступность: правила работают
			// с настройками по умолчанию и пустым набором дат
			availability = &domain.Availability{
				UserID:   req.PhotographerID,
				Settings: domain.DefaultBookingSettings(),
			}
		}

		// Правило 1: advance notice
		if err := validateAdvanceNotice(req.Date, req.StartTime, now, availability.Settings.AdvanceNoticeHours); err != nil {
			return err
		}

		// Правило 2: дата должна быть открыта фотографом
		if !availability.IsDateBookable(req.Date) {
			return ErrDateNotAvailable
		}

		// Бронирования этого дня читаются с блокировкой строк (FOR UPDATE),
		// чтобы параллельная транзакция не прочитала то же состояние
		bookings, err := uc.bookingRepo.GetByPhotographerWithFilter(ctx, domain.PhotographerBookingsFilter{
			PhotographerID: req.PhotographerID,
			StartDate:      &req.Date,
			EndDate:        &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: get bookings for date: %v", ErrInternal, err)
		}

		// Правило 3: дневной лимит
		if countActiveForDay(bookings) >= availability.Settings.MaxBookingsPerDay {
			return ErrDailyLimitReached
		}

		// Правило 4: буфер между началами сессий
		if conflict := findBufferConflict(req.StartTime, availability.Settings.BufferMinutes, bookings); conflict != nil {
			return fmt.Errorf("%w: existing booking at %s", ErrBufferConflict, conflict.StartTime)
		}

		created, err = uc.bookingRepo.Create(ctx, &domain.Booking{
			PhotographerID: req.PhotographerID,
			ClientID:       req.ClientID,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			Location:       req.Location,
			ShootType:      req.ShootType,
			Notes:          req.Notes,
			Status:         domain.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info("create_booking: booking created: id=%d, photographerID=%s, clientID=%s, date=%s, startTime=%s",
		created.ID, req.PhotographerID, req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 4. Уведомления обеим сторонам. Ошибки здесь не откатывают бронирование
	uc.notifyParties(ctx, req)

	return &Response{
		ID:             created.ID,
		PhotographerID: created.PhotographerID,
		ClientID:       created.ClientID,
		Date:           created.BookingDate,
		StartTime:      created.StartTime,
		Location:       created.Location,
		ShootType:      created.ShootType,
		Notes:          created.Notes,
		Status:         string(created.Status),
		CreatedAt:      created.CreatedAt,
		UpdatedAt:      created.UpdatedAt,
	}, nil
}

// notifyParties создаёт in-app уведомления фотографу и клиенту.
// Имена берутся с graceful degradation: если профиль недоступен,
// используется нейтральная формулировка.
func (uc *UseCase) notifyParties(ctx context.Context, req *Request) {
	clientName := uc.displayName(ctx, req.ClientID)
	photographerName := uc.displayName(ctx, req.PhotographerID)

	uc.deliver(ctx, buildPhotographerNotification(req, clientName))
	uc.deliver(ctx, buildClientNotification(req, photographerName))
}

func (uc *UseCase) displayName(ctx context.Context, userID uuid.UUID) string {
	profile, err := uc.profileClient.GetProfileWithGracefulDegradation(ctx, userID)
	if err != nil || profile == nil {
		return ""
	}
	return profile.DisplayName
}

func (uc *UseCase) deliver(ctx context.Context, n domain.Notification) {
	saved, err := uc.notificationRepo.Create(ctx, &n)
	if err != nil {
		uc.log.Warn("create_booking: failed to save notification: userID=%s, type=%s, error=%v",
			n.UserID, n.Type, err)
		return
	}

	uc.publisher.Publish(saved.UserID, *saved)
}
