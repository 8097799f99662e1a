package booking

import (
	"fitbook/infras/otel"
	"fitbook/internal/domains/booking/model"
	"fitbook/internal/domains/booking/model/dto"
	"fitbook/internal/domains/booking/service"
	"fitbook/shared"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	"fitbook/shared/timezone"
	"fitbook/shared/validator"
	"fitbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const emailRule = "required,email"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book", handler.BookClass)
	router.Get("/bookings", handler.GetBookingsByEmail)
}

// BookClass reserves a slot in a class for a client.
// @Summary Book a class
// @Description Reserve one slot. Each email can hold at most one booking per class.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookClassRequest true "Book Class Request"
// @Param timezone query string false "Zone used to render the response, defaults to the input zone (Asia/Kolkata)"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error "Validation failed, class already started, no slots left or duplicate booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/book [post]
func (handler *Handler) BookClass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookClass")
	defer scope.End()

	loc, err := gDto.LocationFromRequest(r, timezone.InputLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.BookClassRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Book(ctx, req, loc)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("class_id", req.ClassID).Msg("failed to book class")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class booked successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookingsByEmail lists the bookings made with an email address.
// @Summary List bookings by email
// @Description Newest bookings first, each with the class name and start time.
// @Tags Booking
// @Produce json
// @Param email query string true "Client email"
// @Param timezone query string false "IANA zone name or IST"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_dir query string false "Order of booking time" Enums(ASC, DESC)
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
func (handler *Handler) GetBookingsByEmail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByEmail")
	defer scope.End()

	loc, err := gDto.LocationFromRequest(r, timezone.DisplayLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	email := shared.NormalizeEmail(r.URL.Query().Get(constant.RequestParamEmail))
	if err := validator.ValidateVar(email, emailRule); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	// bookings are only ordered by booking time
	queryParams.SortBy = model.TableName + "." + model.FieldCreatedAt
	queryParams.SetDefaultSort(queryParams.SortBy, gDto.SortDirDesc)

	bookings, err := handler.service.ListByEmail(ctx, email, queryParams, loc)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}
