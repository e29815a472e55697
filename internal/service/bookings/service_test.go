package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
	bookingRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/booking"
	"github.com/lenslot/LS-BookingService/internal/service/bookings/models"
	"github.com/lenslot/LS-BookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	statusUpdates map[int64]domain.BookingStatus
	cancelled     map[int64]*string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		byID:          make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
		cancelled:     make(map[int64]*string),
	}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.byID {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByPhotographerWithFilter(_ context.Context, filter domain.PhotographerBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.byID {
		if b.PhotographerID != filter.PhotographerID {
			continue
		}
		if !filter.IncludeInactive && filter.Status == nil && b.Status == domain.StatusCancelled {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason *string) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled[id] = reason
	return nil
}

type fakeNotificationRepo struct {
	created []*domain.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	saved := *n
	saved.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &saved)
	return &saved, nil
}

type fakePublisher struct {
	published []domain.Notification
}

func (f *fakePublisher) Publish(_ uuid.UUID, n domain.Notification) {
	f.published = append(f.published, n)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		PhotographerID: uuid.New(),
		ClientID:       uuid.New(),
		BookingDate:    time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:      "2:00 PM",
		Location:       "Central Park",
		ShootType:      "portrait",
		Status:         domain.StatusPending,
	}
}

func newService(repo *fakeBookingRepo, notifRepo *fakeNotificationRepo, pub *fakePublisher, now time.Time) *Service {
	return NewService(repo, notifRepo, pub, &fixedTime{now: now}, nopLogger{})
}

func TestGetByIDAccess(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	// Клиент и фотограф видят бронирование
	resp, err := svc.GetByID(context.Background(), 1, booking.ClientID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, booking.PhotographerID)
	require.NoError(t, err)

	// Посторонний — нет
	_, err = svc.GetByID(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 99, booking.ClientID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookingsOwnershipCheck(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:      booking.ClientID,
		RequesterID: booking.ClientID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:      booking.ClientID,
		RequesterID: uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Некорректный фильтр статуса
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID:      booking.ClientID,
		RequesterID: booking.ClientID,
		Status:      ptr.Ptr("no-such-status"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPhotographerBookingsOwnershipCheck(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	resp, err := svc.GetPhotographerBookings(context.Background(), &models.GetPhotographerBookingsRequest{
		PhotographerID: booking.PhotographerID,
		RequesterID:    booking.PhotographerID,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetPhotographerBookings(context.Background(), &models.GetPhotographerBookingsRequest{
		PhotographerID: booking.PhotographerID,
		RequesterID:    uuid.New(),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatusConfirm(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	notifRepo := &fakeNotificationRepo{}
	pub := &fakePublisher{}
	svc := newService(repo, notifRepo, pub, time.Now())

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])

	// Клиент уведомлен
	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, domain.NotificationBookingConfirmed, notifRepo.created[0].Type)
	assert.Equal(t, booking.ClientID, notifRepo.created[0].UserID)
	assert.Len(t, pub.published, 1)
}

func TestUpdateStatusOnlyPhotographer(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.ClientID,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatusInvalidTransitions(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	// pending -> completed запрещен
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Отмена через статусную операцию запрещена
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "nonsense",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatusCompleteOnlyAfterSessionStart(t *testing.T) {
	booking := testBooking(1)
	booking.Status = domain.StatusConfirmed
	repo := newFakeBookingRepo(booking)

	// До начала сессии (16 июня 2:00 PM) завершить нельзя
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{},
		time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC))

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "completed",
	})
	assert.ErrorIs(t, err, ErrSessionNotStarted)

	// После начала — можно
	svc = newService(repo, &fakeNotificationRepo{}, &fakePublisher{},
		time.Date(2025, 6, 16, 15, 0, 0, 0, time.UTC))

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		UserID: booking.PhotographerID,
		Status: "completed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[1])
}

func TestCancelByEitherParty(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	notifRepo := &fakeNotificationRepo{}
	svc := newService(repo, notifRepo, &fakePublisher{}, time.Now())

	reason := "change of plans"
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID:             booking.ClientID,
		CancellationReason: &reason,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.cancelled[1])
	assert.Equal(t, reason, *repo.cancelled[1])

	// Уведомлен фотограф (вторая сторона)
	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, domain.NotificationBookingCancelled, notifRepo.created[0].Type)
	assert.Equal(t, booking.PhotographerID, notifRepo.created[0].UserID)
}

func TestCancelNotifiesClientWhenPhotographerCancels(t *testing.T) {
	booking := testBooking(1)
	repo := newFakeBookingRepo(booking)
	notifRepo := &fakeNotificationRepo{}
	svc := newService(repo, notifRepo, &fakePublisher{}, time.Now())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		UserID: booking.PhotographerID,
	})
	require.NoError(t, err)

	require.Len(t, notifRepo.created, 1)
	assert.Equal(t, booking.ClientID, notifRepo.created[0].UserID)
}

func TestCancelRules(t *testing.T) {
	booking := testBooking(1)
	booking.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(booking)
	svc := newService(repo, &fakeNotificationRepo{}, &fakePublisher{}, time.Now())

	// Завершенное бронирование не отменяется
	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: booking.ClientID})
	assert.ErrorIs(t, err, ErrCannotCancel)

	// Посторонний не может отменить
	booking.Status = domain.StatusPending
	err = svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
