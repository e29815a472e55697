package notifications

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/domain"
	notificationRepo "github.com/lenslot/LS-BookingService/internal/infra/storage/notification"
)

type fakeNotificationRepo struct {
	byID       map[int64]*domain.Notification
	markedRead []int64
	markedAll  []uuid.UUID
	deleted    []int64
}

func newFakeRepo(notifications ...*domain.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{byID: make(map[int64]*domain.Notification)}
	for _, n := range notifications {
		repo.byID[n.ID] = n
	}
	return repo
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id int64) (*domain.Notification, error) {
	n, ok := f.byID[id]
	if !ok {
		return nil, notificationRepo.ErrNotificationNotFound
	}
	return n, nil
}

func (f *fakeNotificationRepo) GetByUserID(_ context.Context, userID uuid.UUID, unreadOnly bool) ([]*domain.Notification, error) {
	var result []*domain.Notification
	for _, n := range f.byID {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id int64) error {
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	f.markedAll = append(f.markedAll, userID)
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListCountsUnread(t *testing.T) {
	userID := uuid.New()
	svc := NewService(newFakeRepo(
		&domain.Notification{ID: 1, UserID: userID, Read: true},
		&domain.Notification{ID: 2, UserID: userID},
		&domain.Notification{ID: 3, UserID: uuid.New()},
	), nopLogger{})

	resp, err := svc.List(context.Background(), userID, false)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)
}

func TestMarkReadOwnership(t *testing.T) {
	userID := uuid.New()
	repo := newFakeRepo(&domain.Notification{ID: 1, UserID: userID})
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkRead(context.Background(), 1, userID))
	assert.Equal(t, []int64{1}, repo.markedRead)

	// Чужое уведомление
	err := svc.MarkRead(context.Background(), 1, uuid.New())
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.MarkRead(context.Background(), 99, userID)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestMarkAllRead(t *testing.T) {
	userID := uuid.New()
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.MarkAllRead(context.Background(), userID))
	assert.Equal(t, []uuid.UUID{userID}, repo.markedAll)
}

func TestDeleteOwnership(t *testing.T) {
	userID := uuid.New()
	repo := newFakeRepo(&domain.Notification{ID: 5, UserID: userID})
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 5, uuid.New())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(context.Background(), 5, userID))
	assert.Equal(t, []int64{5}, repo.deleted)
}
