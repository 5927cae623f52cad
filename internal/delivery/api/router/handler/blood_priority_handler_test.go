package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBloodPriorityHandler(t *testing.T) (*BloodPriorityHandler, *mockUc.MockBloodPriorityUsecase) {
	uc := mockUc.NewMockBloodPriorityUsecase(t)

	return NewBloodPriorityHandler(BloodPriorityHandlerParams{BloodPriorityUC: uc}), uc
}

func openedRead(messageID, userID uuid.UUID, openedAt time.Time) *entity.BloodPriorityRead {
	return &entity.BloodPriorityRead{
		ID:              uuid.New(),
		MessageID:       messageID,
		UserID:          userID,
		OpenedAt:        &openedAt,
		MinTimerSeconds: entity.DefaultMinTimerSeconds,
	}
}

func TestBloodPriorityHandler_ConfirmRead_BeforeDwell(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()
	messageID := uuid.New()
	openedAt := time.Now()
	h.now = func() time.Time { return openedAt.Add(4 * time.Second) }

	c, rec := newContext(t, http.MethodPost, "/blood-priority/messages/"+messageID.String()+"/confirm", "", session)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	uc.EXPECT().GetRead(mock.Anything, messageID, session.UserID).Return(openedRead(messageID, session.UserID, openedAt), nil).Once()

	require.NoError(t, h.ConfirmRead(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DWELL_NOT_ELAPSED", env.Error.Code)

	var details DwellDetails
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Equal(t, int64(6000), details.RemainingMs)
}

func TestBloodPriorityHandler_ConfirmRead_AfterDwell(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()
	messageID := uuid.New()
	openedAt := time.Now().Add(-time.Minute)
	read := openedRead(messageID, session.UserID, openedAt)
	confirmedAt := time.Now()
	confirmed := *read
	confirmed.ConfirmedAt = &confirmedAt

	c, rec := newContext(t, http.MethodPost, "/blood-priority/messages/"+messageID.String()+"/confirm", "", session)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	uc.EXPECT().GetRead(mock.Anything, messageID, session.UserID).Return(read, nil).Once()
	uc.EXPECT().ConfirmRead(mock.Anything, messageID, session.UserID).Return(&confirmed, nil).Once()

	require.NoError(t, h.ConfirmRead(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got entity.BloodPriorityRead
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, entity.ReadStateConfirmed, got.State())
}

func TestBloodPriorityHandler_ConfirmRead_WaitsForDwell(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()
	messageID := uuid.New()
	openedAt := time.Now()
	read := openedRead(messageID, session.UserID, openedAt)
	h.now = func() time.Time { return openedAt.Add(read.MinDwell() - 20*time.Millisecond) }

	c, rec := newContext(t, http.MethodPost, "/blood-priority/messages/"+messageID.String()+"/confirm?wait=true", "", session)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	uc.EXPECT().GetRead(mock.Anything, messageID, session.UserID).Return(read, nil).Once()
	uc.EXPECT().ConfirmRead(mock.Anything, messageID, session.UserID).Return(read, nil).Once()

	start := time.Now()
	require.NoError(t, h.ConfirmRead(c))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBloodPriorityHandler_ConfirmRead_WaitCanceled(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()
	messageID := uuid.New()
	openedAt := time.Now()
	h.now = func() time.Time { return openedAt }

	c, rec := newContext(t, http.MethodPost, "/blood-priority/messages/"+messageID.String()+"/confirm?wait=true", "", session)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())
	ctx, cancel := context.WithCancel(c.Request().Context())
	cancel()
	c.SetRequest(c.Request().WithContext(ctx))

	uc.EXPECT().GetRead(mock.Anything, messageID, session.UserID).Return(openedRead(messageID, session.UserID, openedAt), nil).Once()

	require.NoError(t, h.ConfirmRead(c))

	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
}

func TestBloodPriorityHandler_ConfirmRead_NotOpened(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()
	messageID := uuid.New()

	c, rec := newContext(t, http.MethodPost, "/blood-priority/messages/"+messageID.String()+"/confirm", "", session)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	uc.EXPECT().GetRead(mock.Anything, messageID, session.UserID).Return(nil, nil).Once()

	require.NoError(t, h.ConfirmRead(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BLOOD_PRIORITY_READ_NOT_OPENED", decodeEnvelope(t, rec).Error.Code)
}

func TestBloodPriorityHandler_CreateMessage(t *testing.T) {
	h, uc := createTestBloodPriorityHandler(t)
	session := testSession()

	t.Run("validation", func(t *testing.T) {
		c, rec := newContext(t, http.MethodPost, "/blood-priority/messages", `{"title":""}`, session)

		require.NoError(t, h.CreateMessage(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created", func(t *testing.T) {
		c, rec := newContext(t, http.MethodPost, "/blood-priority/messages", `{"title":"O- needed","body":"Ward 3"}`, session)
		uc.EXPECT().
			CreateMessage(mock.Anything, &usecase.CreateBloodPriorityMessageInput{Title: "O- needed", Body: "Ward 3", CreatedBy: session.UserID}).
			Return(&entity.BloodPriorityMessage{ID: uuid.New(), Title: "O- needed"}, nil).
			Once()

		require.NoError(t, h.CreateMessage(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}
