package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nutrition-booking/config"
	"nutrition-booking/internal/delivery/dto"
	"nutrition-booking/internal/delivery/http/handler"
	"nutrition-booking/internal/delivery/http/middleware"
	"nutrition-booking/internal/domain/entity"
	umocks "nutrition-booking/internal/usecase/mocks"
	"nutrition-booking/pkg/jwt"
	"nutrition-booking/pkg/metrics"
	"nutrition-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	handler      http.Handler
	jwt          *jwt.JWTService
	types        *umocks.MockAppointmentTypeUsecase
	appointments *umocks.MockAppointmentUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	log, _ := test.NewNullLogger()
	v := validator.NewValidator()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "router-secret", AccessExpiry: time.Minute})
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	types := umocks.NewMockAppointmentTypeUsecase(t)
	appointments := umocks.NewMockAppointmentUsecase(t)

	router := NewRouter(
		handler.NewAppointmentTypeHandler(types, v),
		handler.NewTimeSlotHandler(umocks.NewMockTimeSlotUsecase(t), v),
		handler.NewAvailabilityHandler(umocks.NewMockAvailabilityUsecase(t)),
		handler.NewAppointmentHandler(appointments, v),
		handler.NewAuditLogHandler(umocks.NewMockAuditLogUsecase(t)),
		middleware.NewAuthMiddleware(jwtService, nil),
		middleware.NewCORSMiddleware(),
		middleware.NewObservabilityMiddleware(log, m),
	).WithMetrics("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &routerFixture{
		handler:      router.Setup(),
		jwt:          jwtService,
		types:        types,
		appointments: appointments,
	}
}

func (f *routerFixture) request(t *testing.T, method, target, role string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, _, err := f.jwt.GenerateAccessToken(uuid.New(), role+"@example.com", role)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)
	w := f.request(t, http.MethodGet, "/api/v1/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_PublicCatalogueNeedsNoToken(t *testing.T) {
	f := newRouterFixture(t)
	f.types.EXPECT().ListAppointmentTypes(mock.Anything, true).Return(&dto.AppointmentTypeListResponse{}, nil)

	w := f.request(t, http.MethodGet, "/api/v1/appointment-types", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.request(t, http.MethodGet, "/api/v1/admin/appointment-types", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.request(t, http.MethodGet, "/api/v1/admin/appointment-types", entity.RoleClient, "").Code)

	f.types.EXPECT().ListAppointmentTypes(mock.Anything, false).Return(&dto.AppointmentTypeListResponse{}, nil)
	assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/api/v1/admin/appointment-types", entity.RoleAdmin, "").Code)
}

func TestRouter_MyAppointmentsRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.request(t, http.MethodGet, "/api/v1/me/appointments", "", "").Code)

	f.appointments.EXPECT().GetMyAppointments(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Value(middleware.UserIDKey).(uuid.UUID)
		return ok
	})).Return(&dto.AppointmentListResponse{}, nil)
	assert.Equal(t, http.StatusOK, f.request(t, http.MethodGet, "/api/v1/me/appointments", entity.RoleClient, "").Code)
}

func TestRouter_ReserveAcceptsGuestsAndClients(t *testing.T) {
	f := newRouterFixture(t)
	body := `{"time_slot_id":"` + uuid.NewString() + `","appointment_type_id":"` + uuid.NewString() + `","name":"Ana","email":"ana@example.com"}`

	f.appointments.EXPECT().Reserve(mock.Anything, mock.Anything).Return(&dto.AppointmentResponse{ID: uuid.New()}, nil).Twice()

	assert.Equal(t, http.StatusCreated, f.request(t, http.MethodPost, "/api/v1/appointments", "", body).Code)
	assert.Equal(t, http.StatusCreated, f.request(t, http.MethodPost, "/api/v1/appointments", entity.RoleClient, body).Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer broken")
	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t)
	f.request(t, http.MethodGet, "/api/v1/health", "", "")

	w := f.request(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nutrition_booking_http_requests_total")
}
