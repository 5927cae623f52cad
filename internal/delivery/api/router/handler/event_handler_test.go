package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"creaglass/internal/domain/entity"
	domainerrors "creaglass/internal/domain/errors"
	mockUc "creaglass/internal/mocks/usecase"
	"creaglass/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventHandler(t *testing.T) (*EventHandler, *mockUc.MockEventUsecase) {
	uc := mockUc.NewMockEventUsecase(t)

	return NewEventHandler(EventHandlerParams{EventUC: uc}), uc
}

func TestEventHandler_ListEvents(t *testing.T) {
	h, uc := createTestEventHandler(t)
	events := []*entity.Event{{ID: uuid.New(), Title: "Kiln maintenance", CreatedAt: time.Now()}}

	c, rec := newContext(t, http.MethodGet, "/events", "", testSession())
	uc.EXPECT().ListEvents(mock.Anything).Return(events, nil).Once()

	require.NoError(t, h.ListEvents(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*entity.Event
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Kiln maintenance", got[0].Title)
}

func TestEventHandler_GetEvent(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h, _ := createTestEventHandler(t)
		c, rec := newContext(t, http.MethodGet, "/events/nope", "", testSession())
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, h.GetEvent(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, uc := createTestEventHandler(t)
		eventID := uuid.New()
		c, rec := newContext(t, http.MethodGet, "/events/"+eventID.String(), "", testSession())
		c.SetParamNames("id")
		c.SetParamValues(eventID.String())
		uc.EXPECT().GetEvent(mock.Anything, eventID).Return(nil, domainerrors.ErrEventNotFound.WrapMessage("get event")).Once()

		require.NoError(t, h.GetEvent(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "EVENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestEventHandler_CreateEvent(t *testing.T) {
	t.Run("owned by caller", func(t *testing.T) {
		h, uc := createTestEventHandler(t)
		session := testSession()
		c, rec := newContext(t, http.MethodPost, "/events", `{"title":"Stock count","description":"Warehouse B"}`, session)
		uc.EXPECT().CreateEvent(mock.Anything, &usecase.CreateEventInput{
			Title:       "Stock count",
			Description: "Warehouse B",
			CreatedBy:   session.UserID,
		}).Return(&entity.Event{ID: uuid.New(), Title: "Stock count", CreatedBy: session.UserID}, nil).Once()

		require.NoError(t, h.CreateEvent(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		h, _ := createTestEventHandler(t)
		c, rec := newContext(t, http.MethodPost, "/events", `{"description":"no title"}`, testSession())

		require.NoError(t, h.CreateEvent(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := createTestEventHandler(t)
		c, rec := newContext(t, http.MethodPost, "/events", `{"title":"x"}`, nil)

		require.NoError(t, h.CreateEvent(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
