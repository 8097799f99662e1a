package http_test

import (
	"context"
	"fitbook/config"
	"fitbook/infras/otel/mocks"
	bookingMocks "fitbook/internal/domains/booking/mocks"
	classMocks "fitbook/internal/domains/class/mocks"
	"fitbook/internal/domains/class/model/dto"
	bookingHandler "fitbook/internal/handlers/booking"
	classHandler "fitbook/internal/handlers/class"
	gDto "fitbook/shared/dto"
	"fitbook/shared/testutil"
	transport "fitbook/transport/http"
	"fitbook/transport/http/middleware"
	"fitbook/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *classMocks.MockClass) {
	t.Helper()

	ctrl := gomock.NewController(t)
	classes := classMocks.NewMockClass(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	otl := mocks.NewOtel()
	cfg := &config.Config{}

	r := router.New(router.DomainHandlers{
		Class:   classHandler.New(classes, otl),
		Booking: bookingHandler.New(bookings, otl),
	})

	return transport.New(cfg, r, middleware.NewAppMiddleware(otl, cfg, testutil.NopCache{})), classes
}

func TestHTTP_Routes(t *testing.T) {
	server, classes := newServer(t)

	classes.EXPECT().
		ListUpcoming(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time, gDto.QueryParams, *time.Location) (dto.GetClassesResponse, error) {
			return dto.GetClassesResponse{}, nil
		}).
		Times(2)

	for _, path := range []string{"/v1/classes", "/classes"} {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_SwaggerSpec(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/book")
}

func TestHTTP_ReadyAfterSetup(t *testing.T) {
	server, _ := newServer(t)

	assert.False(t, server.Ready())

	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, server.Ready())
	assert.Equal(t, transport.ServerStateReady, server.State())
}
