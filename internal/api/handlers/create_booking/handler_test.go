package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslot/LS-BookingService/internal/api/handlers"
	"github.com/lenslot/LS-BookingService/internal/api/middleware"
	createBooking "github.com/lenslot/LS-BookingService/internal/usecase/create_booking"
)

type stubUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *stubUseCase) *mux.Router {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(nopLogger{}))
	protected.HandleFunc("/bookings", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPost)
	return r
}

func postBooking(t *testing.T, router *mux.Router, userID string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBody(photographerID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"photographerId": photographerID.String(),
		"date":           "2025-06-16",
		"startTime":      "2:00 PM",
		"location":       "Central Park",
		"shootType":      "portrait",
	}
}

func TestHandleCreatesBooking(t *testing.T) {
	photographerID := uuid.New()
	clientID := uuid.New()

	uc := &stubUseCase{resp: &createBooking.Response{
		ID:             42,
		PhotographerID: photographerID,
		ClientID:       clientID,
		Date:           time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		StartTime:      "2:00 PM",
		Location:       "Central Park",
		ShootType:      "portrait",
		Status:         "pending",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}}

	rec := postBooking(t, newRouter(uc), clientID.String(), validBody(photographerID))

	require.Equal(t, http.StatusCreated, rec.Code)

	// ClientID берется из заголовка, не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, clientID, uc.gotReq.ClientID)
	assert.Equal(t, photographerID, uc.gotReq.PhotographerID)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-06-16", resp.Date)
}

func TestHandleRequiresIdentity(t *testing.T) {
	uc := &stubUseCase{}

	rec := postBooking(t, newRouter(uc), "", validBody(uuid.New()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postBooking(t, newRouter(uc), "not-a-uuid", validBody(uuid.New()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleRejectsBadDate(t *testing.T) {
	uc := &stubUseCase{}

	body := validBody(uuid.New())
	body["date"] = "16.06.2025"

	rec := postBooking(t, newRouter(uc), uuid.New().String(), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, handlers.KindValidation, errResp.Kind)
}

func TestHandleMapsUseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{name: "photographer missing", err: createBooking.ErrPhotographerNotFound, wantCode: http.StatusNotFound, wantKind: handlers.KindNotFound},
		{name: "date closed", err: createBooking.ErrDateNotAvailable, wantCode: http.StatusConflict, wantKind: handlers.KindValidation},
		{name: "advance notice", err: createBooking.ErrTooLateToBook, wantCode: http.StatusConflict, wantKind: handlers.KindValidation},
		{name: "daily limit", err: createBooking.ErrDailyLimitReached, wantCode: http.StatusConflict, wantKind: handlers.KindValidation},
		{name: "buffer", err: createBooking.ErrBufferConflict, wantCode: http.StatusConflict, wantKind: handlers.KindValidation},
		{name: "internal", err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError, wantKind: handlers.KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			rec := postBooking(t, newRouter(uc), uuid.New().String(), validBody(uuid.New()))

			require.Equal(t, tt.wantCode, rec.Code)

			var errResp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantKind, errResp.Kind)
		})
	}
}
