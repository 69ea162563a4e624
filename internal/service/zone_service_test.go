package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stylesam/luxuria/internal/apperr"
	"github.com/stylesam/luxuria/internal/domain"
	"github.com/stylesam/luxuria/internal/service"
)

func newZoneService(t *testing.T) (*service.ZoneService, *memoryUserRepo, *memoryZoneRepo) {
	t.Helper()
	users := newMemoryUserRepo()
	zones := newMemoryZoneRepo()
	return service.NewZoneService(zones, users, zap.NewNop()), users, zones
}

var zonePayload = json.RawMessage(`{"center":[55.75,37.61],"radius":500}`)

func TestCreateZone(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)

	zone, err := svc.Create(context.Background(), u1.ID, service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, zone.ID)
	require.Equal(t, u1.ID, zone.UserID)
	require.Equal(t, "Home", zone.Name)
	require.JSONEq(t, string(zonePayload), string(zone.Payload))
}

func TestCreateZone_OwnerNotFound(t *testing.T) {
	svc, _, _ := newZoneService(t)

	_, err := svc.Create(context.Background(), uuid.New(), service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.True(t, apperr.IsNotFound(err))
}

func TestZoneIDsNeverCollide(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)

	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 20; i++ {
		zone, err := svc.Create(context.Background(), u1.ID, service.ZoneInput{
			Name:    fmt.Sprintf("zone-%d", i),
			Payload: zonePayload,
		})
		require.NoError(t, err)

		_, dup := seen[zone.ID]
		require.False(t, dup, "zone ids must stay unique within an owner")
		seen[zone.ID] = struct{}{}

		// Deleting some zones must not cause id reuse collisions later.
		if i%3 == 0 {
			deleted, err := svc.DeleteByID(context.Background(), u1.ID, zone.ID)
			require.NoError(t, err)
			require.True(t, deleted)
		}
	}
}

func TestGetZone_WrongOwner(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)
	u2 := seedUser(t, users, "user0002", domain.RoleUser)

	zone, err := svc.Create(context.Background(), u1.ID, service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), u2.ID, zone.ID)
	require.True(t, apperr.IsNotFound(err), "a foreign zone id behaves as absent")
}

func TestUpdateZone_Overwrites(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)

	zone, err := svc.Create(context.Background(), u1.ID, service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.NoError(t, err)

	newPayload := json.RawMessage(`{"center":[59.93,30.31],"radius":100}`)
	updated, err := svc.UpdateByID(context.Background(), u1.ID, zone.ID, service.ZoneInput{Name: "Work", Payload: newPayload})
	require.NoError(t, err)
	require.Equal(t, "Work", updated.Name)
	require.JSONEq(t, string(newPayload), string(updated.Payload))
	require.Equal(t, zone.ID, updated.ID)
}

func TestUpdateZone_NotFound(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)

	_, err := svc.UpdateByID(context.Background(), u1.ID, uuid.New(), service.ZoneInput{Name: "Work", Payload: zonePayload})
	require.True(t, apperr.IsNotFound(err))
}

func TestListZones(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)
	u2 := seedUser(t, users, "user0002", domain.RoleUser)

	zones, err := svc.ListAll(context.Background(), u1.ID)
	require.NoError(t, err)
	require.NotNil(t, zones)
	require.Empty(t, zones)

	_, err = svc.Create(context.Background(), u1.ID, service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), u2.ID, service.ZoneInput{Name: "Other", Payload: zonePayload})
	require.NoError(t, err)

	zones, err = svc.ListAll(context.Background(), u1.ID)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	require.Equal(t, "Home", zones[0].Name)
}

func TestDeleteZone(t *testing.T) {
	svc, users, _ := newZoneService(t)
	u1 := seedUser(t, users, "user0001", domain.RoleUser)

	zone, err := svc.Create(context.Background(), u1.ID, service.ZoneInput{Name: "Home", Payload: zonePayload})
	require.NoError(t, err)

	deleted, err := svc.DeleteByID(context.Background(), u1.ID, zone.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = svc.GetByID(context.Background(), u1.ID, zone.ID)
	require.True(t, apperr.IsNotFound(err))
}
