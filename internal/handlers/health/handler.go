package health

import (
	"fitbook/shared/timezone"
	"fitbook/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	statusHealthy = "healthy"
	messageOK     = "Fitness Booking API is running"
)

// Probe reports whether the server still accepts new work.
type Probe interface {
	Ready() bool
}

type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type Handler struct {
	probe Probe
}

func New(probe Probe) Handler {
	return Handler{probe: probe}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Check)
}

// Check reports liveness. It fails once shutdown has started so load balancers drain the instance.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, _ *http.Request) {
	if !handler.probe.Ready() {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithPayload(w, http.StatusOK, Status{
		Status:    statusHealthy,
		Timestamp: timezone.Now().UTC().Format(time.RFC3339Nano),
		Message:   messageOK,
	})
}
