package handler

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/angkutin/tracking/internal/pkg/models"
	wspkg "github.com/angkutin/tracking/internal/pkg/websocket"
	"github.com/angkutin/tracking/services/tracking/mocks"
)

func newNATSFixture(t *testing.T) (*NATSHandler, *mocks.MockTrackingUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockTrackingUC(ctrl)
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test"})
	return NewNATSHandler(uc, nil, manager), uc
}

func natsMsg(t *testing.T, payload interface{}) *nats.Msg {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return &nats.Msg{Data: data}
}

func TestHandleLocationUpdate(t *testing.T) {
	h, uc := newNATSFixture(t)

	update := models.LocationUpdate{
		UserID:    "7",
		Latitude:  -6.21,
		Longitude: 106.83,
		Timestamp: 1700000000000,
	}
	uc.EXPECT().IngestFix(gomock.Any(), "7", update.Fix(), models.FixSourceRemote).Return(nil)

	h.handleLocationUpdate(natsMsg(t, update))
}

func TestHandleLocationUpdate_BadPayload(t *testing.T) {
	h, _ := newNATSFixture(t)

	// No use case call for garbage
	h.handleLocationUpdate(&nats.Msg{Data: []byte("{broken")})
}

func TestHandleTrackingState_EmptyRoomIsNoop(t *testing.T) {
	h, _ := newNATSFixture(t)

	h.handleTrackingState(natsMsg(t, models.TrackingState{
		TripID:         "trip-1",
		TrackedPartyID: "7",
	}))
}

func TestHandleArrival_EmptyRoomIsNoop(t *testing.T) {
	h, _ := newNATSFixture(t)

	h.handleArrival(natsMsg(t, models.ArrivalEvent{
		TripID:         "trip-1",
		TrackedPartyID: "7",
		Kind:           models.ArrivalDropoff,
	}))
}

func TestHandleRoomJoin_RequesterNotConnected(t *testing.T) {
	h, _ := newNATSFixture(t)

	h.handleRoomJoin(natsMsg(t, models.RoomJoinRequest{
		TrackedPartyID: "7",
		RequesterID:    "observer-1",
		TripID:         "trip-1",
	}))
}

func TestHandleRoomLeave_UnknownMemberIsNoop(t *testing.T) {
	h, _ := newNATSFixture(t)

	h.handleRoomLeave(natsMsg(t, models.RoomJoinRequest{
		TrackedPartyID: "7",
		RequesterID:    "observer-1",
		TripID:         "trip-1",
	}))
}

func TestHandleRoomLeave_BadPayload(t *testing.T) {
	h, _ := newNATSFixture(t)

	h.handleRoomLeave(&nats.Msg{Data: []byte("{broken")})
}
