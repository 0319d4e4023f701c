package usecase

import (
	"context"
	"testing"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogs_RecordedForBookingChanges(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)
	admin := adminContext()
	_, err = env.appointments.UpdateStatus(admin, reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusConfirmed)})
	require.NoError(t, err)

	all, err := env.auditLogs.GetAllAuditLogs(admin, &dto.AuditLogListQuery{EntityID: reserved.ID.String()})
	require.NoError(t, err)
	require.EqualValues(t, 2, all.Total)

	reserve, status := all.Logs[0], all.Logs[1]
	assert.Equal(t, entity.AuditActionAppointmentReserve, reserve.Action)
	assert.Nil(t, reserve.ActorID, "guest bookings have no actor")
	assert.Equal(t, entity.AuditActionAppointmentStatus, status.Action)
	require.NotNil(t, status.ActorID)
	assert.Contains(t, status.Metadata, "old_value")
	assert.Contains(t, status.Metadata, "new_value")

	found, err := env.auditLogs.GetAuditLog(admin, status.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Action, found.Action)
}

func TestAuditLogs_PaginationAndMissing(t *testing.T) {
	env := newTestEnv(t)

	list, err := env.auditLogs.GetAllAuditLogs(adminContext(), &dto.AuditLogListQuery{Page: -1, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, maxLimit, list.Limit)
	assert.Zero(t, list.Total)

	_, err = env.auditLogs.GetAuditLog(adminContext(), 42)
	assert.ErrorIs(t, err, ErrAuditLogNotFound)
}
