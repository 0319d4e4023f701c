package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"nutrition-booking/internal/domain"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gorm.io/gorm"
)

// testNow is a Friday; 2025-08-04 is the following Monday
var testNow = time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

func testOptions() BookingOptions {
	return BookingOptions{
		Location:            time.UTC,
		ReserveTimeout:      2 * time.Second,
		AvailabilityMaxDays: 92,
		Now:                 func() time.Time { return testNow },
	}
}

func newNullLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}

// fakeStore is an in-memory stand-in for the four tables. One mutex guards
// everything; transactions are not isolated, the slot locker provides that.
type fakeStore struct {
	mu           sync.Mutex
	types        map[uuid.UUID]entity.AppointmentType
	slots        map[uuid.UUID]entity.TimeSlot
	appointments map[uuid.UUID]entity.Appointment
	auditLogs    []entity.AuditLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		types:        map[uuid.UUID]entity.AppointmentType{},
		slots:        map[uuid.UUID]entity.TimeSlot{},
		appointments: map[uuid.UUID]entity.Appointment{},
	}
}

// fakeTransactor runs fn directly with a nil handle
type fakeTransactor struct{}

func (fakeTransactor) Conn(ctx context.Context) *gorm.DB { return nil }

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(nil)
}

// =============================================================================
// Appointment types
// =============================================================================

type fakeTypeRepo struct{ s *fakeStore }

func (r fakeTypeRepo) Create(db *gorm.DB, apptType *entity.AppointmentType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if apptType.ID == uuid.Nil {
		apptType.ID = uuid.New()
	}
	apptType.CreatedAt, apptType.UpdatedAt = testNow, testNow
	r.s.types[apptType.ID] = *apptType
	return nil
}

func (r fakeTypeRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AppointmentType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	apptType, ok := r.s.types[id]
	if !ok {
		return nil, nil
	}
	return &apptType, nil
}

func (r fakeTypeRepo) FindAll(db *gorm.DB, activeOnly bool) ([]entity.AppointmentType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var types []entity.AppointmentType
	for _, apptType := range r.s.types {
		if activeOnly && !apptType.IsActive {
			continue
		}
		types = append(types, apptType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Duration < types[j].Duration })
	return types, nil
}

func (r fakeTypeRepo) Count(db *gorm.DB) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.types)), nil
}

func (r fakeTypeRepo) Update(db *gorm.DB, apptType *entity.AppointmentType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.types[apptType.ID] = *apptType
	return nil
}

func (r fakeTypeRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.types[id]; !ok {
		return 0, nil
	}
	delete(r.s.types, id)
	return 1, nil
}

func (r fakeTypeRepo) IsReferenced(db *gorm.DB, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.appointments {
		if a.AppointmentTypeID == id {
			return true, nil
		}
	}
	for _, slot := range r.s.slots {
		if slot.AppointmentTypeID != nil && *slot.AppointmentTypeID == id {
			return true, nil
		}
	}
	return false, nil
}

// =============================================================================
// Time slots
// =============================================================================

type fakeSlotRepo struct{ s *fakeStore }

func (r fakeSlotRepo) Create(db *gorm.DB, slot *entity.TimeSlot) error {
	created, err := r.CreateIfAbsent(db, slot)
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrDuplicateSlot
	}
	return nil
}

func (r fakeSlotRepo) CreateIfAbsent(db *gorm.DB, slot *entity.TimeSlot) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.slots {
		if existing.SlotDate.Equal(slot.SlotDate) && existing.StartTime == slot.StartTime {
			return false, nil
		}
	}
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	slot.CreatedAt, slot.UpdatedAt = testNow, testNow
	r.s.slots[slot.ID] = *slot
	return true, nil
}

func (r fakeSlotRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	slot, ok := r.s.slots[id]
	if !ok {
		return nil, nil
	}
	return &slot, nil
}

func (r fakeSlotRepo) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.TimeSlot, error) {
	return r.FindByID(db, id)
}

func (r fakeSlotRepo) FindByDateAndStart(db *gorm.DB, date time.Time, start entity.Clock) (*entity.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, slot := range r.s.slots {
		if slot.SlotDate.Equal(entity.DateOnly(date)) && slot.StartTime == start {
			return &slot, nil
		}
	}
	return nil, nil
}

func (r fakeSlotRepo) FindAll(db *gorm.DB, filter *entity.SlotFilter) ([]entity.TimeSlot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var slots []entity.TimeSlot
	for _, slot := range r.s.slots {
		if matchesSlotFilter(slot, filter) {
			slots = append(slots, slot)
		}
	}
	sortSlots(slots)
	return slots, nil
}

func (r fakeSlotRepo) FindWithOccupancy(db *gorm.DB, filter *entity.SlotFilter) ([]entity.SlotOccupancy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var slots []entity.TimeSlot
	for _, slot := range r.s.slots {
		if matchesSlotFilter(slot, filter) {
			slots = append(slots, slot)
		}
	}
	sortSlots(slots)

	result := make([]entity.SlotOccupancy, len(slots))
	for i, slot := range slots {
		result[i] = entity.SlotOccupancy{TimeSlot: slot, CurrentAppointments: int(r.s.countActive(slot.ID))}
	}
	return result, nil
}

func (r fakeSlotRepo) UpdateAvailability(db *gorm.DB, id uuid.UUID, available bool) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	slot, ok := r.s.slots[id]
	if !ok {
		return 0, nil
	}
	slot.IsAvailable = available
	r.s.slots[id] = slot
	return 1, nil
}

func (r fakeSlotRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.slots[id]; !ok {
		return 0, nil
	}
	delete(r.s.slots, id)
	// ON DELETE SET NULL
	for appointmentID, a := range r.s.appointments {
		if a.TimeSlotID != nil && *a.TimeSlotID == id {
			a.TimeSlotID = nil
			r.s.appointments[appointmentID] = a
		}
	}
	return 1, nil
}

func matchesSlotFilter(slot entity.TimeSlot, filter *entity.SlotFilter) bool {
	if filter == nil {
		return true
	}
	if filter.StartDate != nil && slot.SlotDate.Before(entity.DateOnly(*filter.StartDate)) {
		return false
	}
	if filter.EndDate != nil && slot.SlotDate.After(entity.DateOnly(*filter.EndDate)) {
		return false
	}
	if filter.IsAvailable != nil && slot.IsAvailable != *filter.IsAvailable {
		return false
	}
	if filter.AppointmentTypeID != nil && !slot.Accepts(*filter.AppointmentTypeID) {
		return false
	}
	return true
}

func sortSlots(slots []entity.TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].SlotDate.Equal(slots[j].SlotDate) {
			return slots[i].SlotDate.Before(slots[j].SlotDate)
		}
		return slots[i].StartTime < slots[j].StartTime
	})
}

// =============================================================================
// Appointments
// =============================================================================

type fakeAppointmentRepo struct{ s *fakeStore }

func (r fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	appointment.CreatedAt, appointment.UpdatedAt = testNow, testNow
	stored := *appointment
	stored.AppointmentType = nil
	r.s.appointments[appointment.ID] = stored
	return nil
}

func (r fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	if apptType, ok := r.s.types[a.AppointmentTypeID]; ok {
		a.AppointmentType = &apptType
	}
	return &a, nil
}

func (r fakeAppointmentRepo) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r fakeAppointmentRepo) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []entity.Appointment
	for _, a := range r.s.appointments {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.SlotID != nil && (a.TimeSlotID == nil || *a.TimeSlotID != *filter.SlotID) {
			continue
		}
		if filter.UserID != nil && !a.IsOwnedBy(*filter.UserID) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID.String() < matched[j].ID.String() })

	total := int64(len(matched))
	offset := filter.Offset()
	if offset >= len(matched) {
		return []entity.Appointment{}, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r fakeAppointmentRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var appointments []entity.Appointment
	for _, a := range r.s.appointments {
		if a.IsOwnedBy(userID) {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}

func (r fakeAppointmentRepo) CountActiveBySlot(db *gorm.DB, slotID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.countActive(slotID), nil
}

func (r fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *appointment
	stored.AppointmentType = nil
	r.s.appointments[appointment.ID] = stored
	return nil
}

func (r fakeAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.appointments[id]; !ok {
		return 0, nil
	}
	delete(r.s.appointments, id)
	return 1, nil
}

// countActive must be called with mu held
func (s *fakeStore) countActive(slotID uuid.UUID) int64 {
	var count int64
	for _, a := range s.appointments {
		if a.TimeSlotID != nil && *a.TimeSlotID == slotID && a.Status.IsActive() {
			count++
		}
	}
	return count
}

// =============================================================================
// Audit logs
// =============================================================================

type fakeAuditRepo struct{ s *fakeStore }

func (r fakeAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	log.ID = int64(len(r.s.auditLogs) + 1)
	log.CreatedAt = testNow
	r.s.auditLogs = append(r.s.auditLogs, *log)
	return nil
}

func (r fakeAuditRepo) FindAll(db *gorm.DB, filter *entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var matched []entity.AuditLog
	for _, log := range r.s.auditLogs {
		if filter.Action != "" && log.Action != filter.Action {
			continue
		}
		if filter.EntityID != "" && log.EntityID != filter.EntityID {
			continue
		}
		matched = append(matched, log)
	}
	total := int64(len(matched))
	offset := filter.Offset()
	if offset >= len(matched) {
		return []entity.AuditLog{}, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r fakeAuditRepo) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, log := range r.s.auditLogs {
		if log.ID == id {
			return &log, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) auditActions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]string, len(s.auditLogs))
	for i, log := range s.auditLogs {
		actions[i] = log.Action
	}
	return actions
}

// =============================================================================
// Notifier
// =============================================================================

type recordingNotifier struct {
	mu     sync.Mutex
	events []entity.AppointmentEvent
}

func (n *recordingNotifier) Dispatch(event entity.AppointmentEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) all() []entity.AppointmentEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]entity.AppointmentEvent(nil), n.events...)
}

// =============================================================================
// Fixtures
// =============================================================================

type testEnv struct {
	store        *fakeStore
	log          *logrus.Logger
	hook         *test.Hook
	notifier     *recordingNotifier
	locker       *service.MemorySlotLocker
	appointments AppointmentUsecase
	slots        TimeSlotUsecase
	availability AvailabilityUsecase
	types        AppointmentTypeUsecase
	auditLogs    AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := newFakeStore()
	log, hook := newNullLogger()
	notifier := &recordingNotifier{}
	locker := service.NewMemorySlotLocker(log)
	t.Cleanup(locker.Stop)

	tx := fakeTransactor{}
	typeRepo := fakeTypeRepo{store}
	slotRepo := fakeSlotRepo{store}
	appointmentRepo := fakeAppointmentRepo{store}
	auditRepo := fakeAuditRepo{store}
	auditService := service.NewAuditService(log, auditRepo)
	opts := testOptions()

	return &testEnv{
		store:        store,
		log:          log,
		hook:         hook,
		notifier:     notifier,
		locker:       locker,
		appointments: NewAppointmentUsecase(tx, log, appointmentRepo, slotRepo, typeRepo, auditService, locker, notifier, nil, opts),
		slots:        NewTimeSlotUsecase(tx, log, slotRepo, appointmentRepo, typeRepo, auditService, locker, nil, opts),
		availability: NewAvailabilityUsecase(tx, log, slotRepo, opts),
		types:        NewAppointmentTypeUsecase(tx, log, typeRepo, auditService),
		auditLogs:    NewAuditLogUsecase(tx, log, auditRepo),
	}
}

func (e *testEnv) addType(t *testing.T, active bool) entity.AppointmentType {
	t.Helper()
	apptType := entity.AppointmentType{
		ID:       uuid.New(),
		Name:     entity.LocalizedText{"en": "Initial Consultation"},
		Duration: 60,
		Price:    decimal.NewFromInt(80),
		Color:    "#4CAF50",
		IsActive: active,
	}
	e.store.mu.Lock()
	e.store.types[apptType.ID] = apptType
	e.store.mu.Unlock()
	return apptType
}

func (e *testEnv) addSlot(t *testing.T, date string, start string, capacity int) entity.TimeSlot {
	t.Helper()
	d, err := entity.ParseDate(date)
	if err != nil {
		t.Fatal(err)
	}
	c, err := entity.ParseClock(start)
	if err != nil {
		t.Fatal(err)
	}
	slot := entity.TimeSlot{
		ID:              uuid.New(),
		SlotDate:        d,
		StartTime:       c,
		EndTime:         c.Add(60),
		MaxAppointments: capacity,
		IsAvailable:     true,
	}
	e.store.mu.Lock()
	e.store.slots[slot.ID] = slot
	e.store.mu.Unlock()
	return slot
}

func (e *testEnv) updateSlot(slotID uuid.UUID, fn func(slot *entity.TimeSlot)) {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	slot := e.store.slots[slotID]
	fn(&slot)
	e.store.slots[slotID] = slot
}

func (e *testEnv) activeCount(slotID uuid.UUID) int64 {
	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	return e.store.countActive(slotID)
}
