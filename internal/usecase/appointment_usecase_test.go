package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guestRequest(slotID uuid.UUID, typeID uuid.UUID) *dto.ReserveAppointmentRequest {
	return &dto.ReserveAppointmentRequest{
		TimeSlotID:        &slotID,
		AppointmentTypeID: typeID,
		Name:              "Ana Lopez",
		Email:             "ana@example.com",
		Phone:             "+34 600 000 000",
		Notes:             "first visit",
	}
}

func clientContext(userID uuid.UUID) context.Context {
	return middleware.ContextWithClaims(context.Background(), &jwt.Claims{
		UserID: userID,
		Email:  "client@example.com",
		Role:   entity.RoleClient,
	})
}

func adminContext() context.Context {
	return middleware.ContextWithClaims(context.Background(), &jwt.Claims{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin,
	})
}

func TestReserve_GuestBooksOpenSlot(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 2)

	resp, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, string(entity.PaymentStatusPending), resp.PaymentStatus)
	assert.Equal(t, "2025-08-04", resp.Date)
	assert.Equal(t, "09:00", resp.Time)
	assert.Equal(t, apptType.Duration, resp.Duration)
	assert.True(t, apptType.Price.Equal(resp.PaymentAmount))
	assert.Nil(t, resp.UserID)
	assert.Equal(t, "ana@example.com", resp.GuestEmail)
	require.NotNil(t, resp.TimeSlotID)
	assert.Equal(t, slot.ID, *resp.TimeSlotID)
	assert.EqualValues(t, 1, env.activeCount(slot.ID))

	events := env.notifier.all()
	require.Len(t, events, 1)
	assert.Equal(t, entity.AppointmentEventReserved, events[0].Type)
	assert.Equal(t, resp.ID, events[0].AppointmentID)
	assert.Equal(t, []string{entity.AuditActionAppointmentReserve}, env.store.auditActions())
}

func TestReserve_LoggedInClientUsesTokenIdentity(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)
	userID := uuid.New()

	req := &dto.ReserveAppointmentRequest{TimeSlotID: &slot.ID, AppointmentTypeID: apptType.ID}
	resp, err := env.appointments.Reserve(clientContext(userID), req)
	require.NoError(t, err)

	require.NotNil(t, resp.UserID)
	assert.Equal(t, userID, *resp.UserID)
	assert.Equal(t, "client@example.com", resp.GuestEmail)
}

func TestReserve_ByDateAndTime(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "10:00", 1)

	req := guestRequest(uuid.Nil, apptType.ID)
	req.TimeSlotID = nil
	req.Date = "2025-08-04"
	req.Time = "10:00"

	resp, err := env.appointments.Reserve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, slot.ID, *resp.TimeSlotID)

	req.Time = "11:00"
	_, err = env.appointments.Reserve(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestReserve_GuestContactRequired(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	req := guestRequest(slot.ID, apptType.ID)
	req.Email = ""
	_, err := env.appointments.Reserve(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	req = guestRequest(slot.ID, apptType.ID)
	req.Name = ""
	_, err = env.appointments.Reserve(context.Background(), req)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	assert.Zero(t, env.activeCount(slot.ID))
}

func TestReserve_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(env *testEnv, slot entity.TimeSlot) (slotID uuid.UUID, typeID uuid.UUID)
		wantErr error
	}{
		{
			name: "unknown slot",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				return uuid.New(), env.addType(t, true).ID
			},
			wantErr: domain.ErrSlotNotFound,
		},
		{
			name: "blocked slot",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				env.updateSlot(slot.ID, func(s *entity.TimeSlot) { s.IsAvailable = false })
				return slot.ID, env.addType(t, true).ID
			},
			wantErr: domain.ErrSlotBlocked,
		},
		{
			name: "slot already started",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				past := env.addSlot(t, "2025-08-01", "10:00", 1)
				return past.ID, env.addType(t, true).ID
			},
			wantErr: domain.ErrSlotInPast,
		},
		{
			name: "slot restricted to another type",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				other := env.addType(t, true)
				env.updateSlot(slot.ID, func(s *entity.TimeSlot) { s.AppointmentTypeID = &other.ID })
				return slot.ID, env.addType(t, true).ID
			},
			wantErr: domain.ErrSlotTypeMismatch,
		},
		{
			name: "inactive type",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				return slot.ID, env.addType(t, false).ID
			},
			wantErr: domain.ErrAppointmentTypeInactive,
		},
		{
			name: "unknown type",
			setup: func(env *testEnv, slot entity.TimeSlot) (uuid.UUID, uuid.UUID) {
				return slot.ID, uuid.New()
			},
			wantErr: domain.ErrAppointmentTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			slot := env.addSlot(t, "2025-08-04", "09:00", 1)
			slotID, typeID := tt.setup(env, slot)

			_, err := env.appointments.Reserve(context.Background(), guestRequest(slotID, typeID))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, env.notifier.all())
			assert.Zero(t, env.activeCount(slot.ID))
		})
	}
}

func TestReserve_MatchingRestrictedTypeSucceeds(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)
	env.updateSlot(slot.ID, func(s *entity.TimeSlot) { s.AppointmentTypeID = &apptType.ID })

	_, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	assert.NoError(t, err)
}

func TestReserve_FullSlot(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 2)

	for i := 0; i < 2; i++ {
		_, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
		require.NoError(t, err)
	}

	_, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	assert.ErrorIs(t, err, domain.ErrSlotFull)
	assert.EqualValues(t, 2, env.activeCount(slot.ID))
}

func TestReserve_ConcurrentRequestsNeverOverbook(t *testing.T) {
	const attempts = 25

	for _, capacity := range []int{1, 3} {
		env := newTestEnv(t)
		apptType := env.addType(t, true)
		slot := env.addSlot(t, "2025-08-04", "09:00", capacity)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			full      int
			other     []error
		)
		start := make(chan struct{})
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				_, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, domain.ErrSlotFull):
					full++
				default:
					other = append(other, err)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Empty(t, other)
		assert.Equal(t, capacity, succeeded, "capacity %d", capacity)
		assert.Equal(t, attempts-capacity, full, "capacity %d", capacity)
		assert.EqualValues(t, capacity, env.activeCount(slot.ID))
	}
}

func TestReserve_CancelFreesCapacity(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	first, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	_, err = env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.ErrorIs(t, err, domain.ErrSlotFull)

	_, err = env.appointments.UpdateStatus(adminContext(), first.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusCancelled)})
	require.NoError(t, err)

	_, err = env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	assert.NoError(t, err)
}

func TestReserve_NoShowReleasesCapacity(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	first, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)
	_, err = env.appointments.UpdateStatus(adminContext(), first.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusNoShow)})
	require.NoError(t, err)

	assert.Zero(t, env.activeCount(slot.ID))
}

func TestUpdateStatus_Transitions(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 5)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	confirmed, err := env.appointments.UpdateStatus(adminContext(), reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusConfirmed)})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
	assert.True(t, confirmed.ConfirmedAt.Equal(testNow))
	require.NotNil(t, confirmed.AppointmentType)
	assert.Equal(t, apptType.ID, confirmed.AppointmentType.ID)

	_, err = env.appointments.UpdateStatus(adminContext(), reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusPending)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = env.appointments.UpdateStatus(adminContext(), reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusCancelled)})
	require.NoError(t, err)

	_, err = env.appointments.UpdateStatus(adminContext(), reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusConfirmed)})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	events := env.notifier.all()
	require.Len(t, events, 3)
	assert.Equal(t, entity.AppointmentEventStatusChanged, events[1].Type)
	assert.Equal(t, entity.AppointmentStatusPending, events[1].PreviousStatus)
	assert.Equal(t, entity.AppointmentStatusConfirmed, events[1].Status)
	assert.Equal(t, entity.AppointmentStatusCancelled, events[2].Status)
}

func TestUpdateStatus_UnknownStatusAndAppointment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.UpdateStatus(adminContext(), uuid.New(), &dto.UpdateAppointmentStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.appointments.UpdateStatus(adminContext(), uuid.New(),
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusConfirmed)})
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestUpdateStatus_EarlyCompletionIsLoggedNotRejected(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)
	env.hook.Reset()

	completed, err := env.appointments.UpdateStatus(adminContext(), reserved.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCompleted), completed.Status)

	var warned bool
	for _, e := range env.hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, reserved.ID.String()) &&
			strings.Contains(e.Message, "before its start time") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a warning about early completion")
}

func TestCancelMyAppointment(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)
	owner := uuid.New()

	req := &dto.ReserveAppointmentRequest{TimeSlotID: &slot.ID, AppointmentTypeID: apptType.ID}
	reserved, err := env.appointments.Reserve(clientContext(owner), req)
	require.NoError(t, err)

	_, err = env.appointments.CancelMyAppointment(clientContext(uuid.New()), reserved.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotOwned)

	_, err = env.appointments.CancelMyAppointment(context.Background(), reserved.ID)
	assert.ErrorIs(t, err, ErrUserNotInContext)

	cancelled, err := env.appointments.CancelMyAppointment(clientContext(owner), reserved.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Zero(t, env.activeCount(slot.ID))
}

func TestGetMyAppointments(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 3)
	owner := uuid.New()

	for _, ctx := range []context.Context{clientContext(owner), clientContext(owner), clientContext(uuid.New())} {
		req := &dto.ReserveAppointmentRequest{TimeSlotID: &slot.ID, AppointmentTypeID: apptType.ID}
		_, err := env.appointments.Reserve(ctx, req)
		require.NoError(t, err)
	}

	mine, err := env.appointments.GetMyAppointments(clientContext(owner))
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)

	_, err = env.appointments.GetMyAppointments(context.Background())
	assert.ErrorIs(t, err, ErrUserNotInContext)
}

func TestRecordPayment(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	paid, err := env.appointments.RecordPayment(adminContext(), reserved.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentStatusPaid), paid.PaymentStatus)
	assert.Equal(t, string(entity.AppointmentStatusPending), paid.Status)

	_, err = env.appointments.RecordPayment(adminContext(), reserved.ID)
	assert.ErrorIs(t, err, domain.ErrPaymentAlreadyRecorded)

	_, err = env.appointments.RecordPayment(adminContext(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestUpdateAdminNotes(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	updated, err := env.appointments.UpdateAdminNotes(adminContext(), reserved.ID, &dto.UpdateAdminNotesRequest{AdminNotes: "bring blood test"})
	require.NoError(t, err)
	assert.Equal(t, "bring blood test", updated.AdminNotes)
	assert.Equal(t, "first visit", updated.Notes)
	assert.Contains(t, env.store.auditActions(), entity.AuditActionAppointmentNotes)
}

func TestDeleteAppointment(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	require.NoError(t, env.appointments.DeleteAppointment(adminContext(), reserved.ID))
	assert.Zero(t, env.activeCount(slot.ID))

	_, err = env.appointments.GetAppointment(context.Background(), reserved.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	err = env.appointments.DeleteAppointment(adminContext(), reserved.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	events := env.notifier.all()
	require.Len(t, events, 2)
	assert.Equal(t, entity.AppointmentEventDeleted, events[1].Type)
}

func TestListAppointments_FiltersAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 5)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		resp, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}
	_, err := env.appointments.UpdateStatus(adminContext(), ids[0],
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusConfirmed)})
	require.NoError(t, err)

	list, err := env.appointments.ListAppointments(adminContext(), &dto.AppointmentListQuery{Status: "pending"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Total)
	assert.Equal(t, defaultPage, list.Page)
	assert.Equal(t, defaultLimit, list.Limit)

	page, err := env.appointments.ListAppointments(adminContext(), &dto.AppointmentListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Len(t, page.Appointments, 1)

	_, err = env.appointments.ListAppointments(adminContext(), &dto.AppointmentListQuery{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = env.appointments.ListAppointments(adminContext(), &dto.AppointmentListQuery{StartDate: "04/08/2025"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
