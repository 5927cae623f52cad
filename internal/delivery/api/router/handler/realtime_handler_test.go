package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	deliverycontext "creaglass/internal/delivery/context"
	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRealtimeHandler(t *testing.T) (*RealtimeHandler, *mockUc.MockRealtimeUsecase) {
	uc := mockUc.NewMockRealtimeUsecase(t)

	return NewRealtimeHandler(RealtimeHandlerParams{RealtimeUC: uc, Logger: newDiscardLogger()}), uc
}

func stubSubscriptions(t *testing.T, session *entity.Session) *mockUc.MockRealtimeSubscriptions {
	subs := mockUc.NewMockRealtimeSubscriptions(t)
	subs.EXPECT().SessionID().Return(session.ID).Maybe()
	subs.EXPECT().UserID().Return(session.UserID).Maybe()
	subs.EXPECT().Collections().Return(entity.WatchedCollections()).Maybe()
	subs.EXPECT().Open().Return(len(entity.WatchedCollections())).Maybe()

	return subs
}

func TestRealtimeHandler_StartRealtime_AttachesDevice(t *testing.T) {
	h, uc := createTestRealtimeHandler(t)
	session := testSession()

	c, rec := newContext(t, http.MethodPost, "/realtime/sessions", `{"device_token":"tok-1","platform":"android"}`, session)

	uc.EXPECT().
		StartRealtime(mock.Anything, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(ctx context.Context, started *entity.Session) (usecase.RealtimeSubscriptions, error) {
			assert.Equal(t, session.ID, started.ID)
			assert.Equal(t, "tok-1", started.DeviceToken)
			assert.Equal(t, entity.PlatformAndroid, started.Platform)
			assert.Same(t, started, deliverycontext.GetSession(ctx))

			return stubSubscriptions(t, session), nil
		}).
		Once()

	require.NoError(t, h.StartRealtime(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, session.DeviceToken, "token session must stay untouched")

	var got RealtimeSessionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, session.ID, got.SessionID)
	assert.Len(t, got.Collections, len(entity.WatchedCollections()))
}

func TestRealtimeHandler_StartRealtime_RejectsUnknownPlatform(t *testing.T) {
	h, _ := createTestRealtimeHandler(t)

	c, rec := newContext(t, http.MethodPost, "/realtime/sessions", `{"platform":"symbian"}`, testSession())

	require.NoError(t, h.StartRealtime(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRealtimeHandler_StartRealtime_NoSession(t *testing.T) {
	h, uc := createTestRealtimeHandler(t)
	session := testSession()

	c, rec := newContext(t, http.MethodPost, "/realtime/sessions", `{}`, session)
	uc.EXPECT().StartRealtime(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoSession).Once()

	require.NoError(t, h.StartRealtime(c))

	assert.Equal(t, domainerrors.ErrNoSession.HTTPCode(), rec.Code)
}

func TestRealtimeHandler_StopRealtime(t *testing.T) {
	session := testSession()

	t.Run("own session", func(t *testing.T) {
		h, uc := createTestRealtimeHandler(t)
		c, rec := newContext(t, http.MethodDelete, "/realtime/sessions/"+session.ID.String(), "", session)
		c.SetParamNames("id")
		c.SetParamValues(session.ID.String())
		uc.EXPECT().StopRealtime(mock.Anything, session.ID).Return(nil).Once()

		require.NoError(t, h.StopRealtime(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("session of another token", func(t *testing.T) {
		h, _ := createTestRealtimeHandler(t)
		other := uuid.New()
		c, rec := newContext(t, http.MethodDelete, "/realtime/sessions/"+other.String(), "", session)
		c.SetParamNames("id")
		c.SetParamValues(other.String())

		require.NoError(t, h.StopRealtime(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRealtimeHandler_RestartRealtime_UnknownSession(t *testing.T) {
	h, uc := createTestRealtimeHandler(t)
	session := testSession()

	c, rec := newContext(t, http.MethodPost, "/realtime/sessions/"+session.ID.String()+"/restart", "", session)
	c.SetParamNames("id")
	c.SetParamValues(session.ID.String())
	uc.EXPECT().RestartRealtime(mock.Anything, session.ID).Return(nil, domainerrors.ErrSessionNotFound).Once()

	require.NoError(t, h.RestartRealtime(c))

	assert.Equal(t, domainerrors.ErrSessionNotFound.HTTPCode(), rec.Code)
}

func TestRealtimeHandler_RouteChange(t *testing.T) {
	h, uc := createTestRealtimeHandler(t)
	body := `{"schema":"public","table":"notifications","type":"INSERT","record":{"id":"n-1","type":"info"}}`

	c, rec := newContext(t, http.MethodPost, "/realtime/route", body, testSession())
	uc.EXPECT().
		RouteChange(mock.MatchedBy(func(event *entity.ChangeEvent) bool {
			return event.Collection == entity.CollectionNotifications && event.Kind == entity.ChangeInsert
		})).
		Return([]entity.CacheKey{entity.NewCacheKey("notifications")}).
		Once()

	require.NoError(t, h.RouteChange(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got RouteChangeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, []string{entity.NewCacheKey("notifications").String()}, got.Keys)
}

func TestRealtimeHandler_RouteChange_Malformed(t *testing.T) {
	h, _ := createTestRealtimeHandler(t)

	c, rec := newContext(t, http.MethodPost, "/realtime/route", `{"table":"notifications","type":"INSERT"}`, testSession())

	require.NoError(t, h.RouteChange(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MALFORMED_EVENT", decodeEnvelope(t, rec).Error.Code)
}
