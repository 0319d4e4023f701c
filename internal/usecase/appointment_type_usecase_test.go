package usecase

import (
	"context"
	"testing"

	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAppointmentType(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.types.CreateAppointmentType(adminContext(), &dto.CreateAppointmentTypeRequest{
		Name:     map[string]string{"en": "Sports Nutrition", "es": "Nutrición Deportiva"},
		Duration: 50,
		Price:    decimal.RequireFromString("70.50"),
		Color:    "#9C27B0",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Sports Nutrition", created.Name["en"])
	assert.Equal(t, []string{entity.AuditActionTypeCreate}, env.store.auditActions())

	_, err = env.types.CreateAppointmentType(adminContext(), &dto.CreateAppointmentTypeRequest{
		Name:     map[string]string{"en": "Refund"},
		Duration: 30,
		Price:    decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateAppointmentType_Deactivate(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	inactive := false

	updated, err := env.types.UpdateAppointmentType(adminContext(), apptType.ID, &dto.UpdateAppointmentTypeRequest{
		Name:     map[string]string{"en": "Initial Consultation"},
		Duration: 75,
		Price:    decimal.NewFromInt(90),
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 75, updated.Duration)

	_, err = env.types.GetAppointmentType(context.Background(), apptType.ID, true)
	assert.ErrorIs(t, err, domain.ErrAppointmentTypeNotFound)

	found, err := env.types.GetAppointmentType(adminContext(), apptType.ID, false)
	require.NoError(t, err)
	assert.Equal(t, apptType.ID, found.ID)

	public, err := env.types.ListAppointmentTypes(context.Background(), true)
	require.NoError(t, err)
	assert.Zero(t, public.Total)

	_, err = env.types.UpdateAppointmentType(adminContext(), uuid.New(), &dto.UpdateAppointmentTypeRequest{
		Name: map[string]string{"en": "x"}, Duration: 10,
	})
	assert.ErrorIs(t, err, domain.ErrAppointmentTypeNotFound)
}

func TestUpdateAppointmentType_KeepsBookedSnapshot(t *testing.T) {
	env := newTestEnv(t)
	apptType := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	reserved, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, apptType.ID))
	require.NoError(t, err)

	_, err = env.types.UpdateAppointmentType(adminContext(), apptType.ID, &dto.UpdateAppointmentTypeRequest{
		Name:     map[string]string{"en": "Initial Consultation"},
		Duration: 90,
		Price:    decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	kept, err := env.appointments.GetAppointment(adminContext(), reserved.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, kept.Duration)
	assert.True(t, decimal.NewFromInt(80).Equal(kept.PaymentAmount))
}

func TestDeleteAppointmentType(t *testing.T) {
	env := newTestEnv(t)
	used := env.addType(t, true)
	unused := env.addType(t, true)
	slot := env.addSlot(t, "2025-08-04", "09:00", 1)

	_, err := env.appointments.Reserve(context.Background(), guestRequest(slot.ID, used.ID))
	require.NoError(t, err)

	err = env.types.DeleteAppointmentType(adminContext(), used.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentTypeInUse)

	require.NoError(t, env.types.DeleteAppointmentType(adminContext(), unused.ID))
	_, err = env.types.GetAppointmentType(adminContext(), unused.ID, false)
	assert.ErrorIs(t, err, domain.ErrAppointmentTypeNotFound)

	err = env.types.DeleteAppointmentType(adminContext(), unused.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentTypeNotFound)
}

func TestSeedDefaults_OnlyIntoEmptyRegistry(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.types.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(entity.DefaultAppointmentTypes()), created)

	list, err := env.types.ListAppointmentTypes(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, created, list.Total)
	// ordered by duration
	assert.Equal(t, 30, list.AppointmentTypes[0].Duration)

	created, err = env.types.SeedDefaults(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}
