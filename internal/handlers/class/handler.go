package class

import (
	"fitbook/infras/otel"
	"fitbook/internal/domains/class/model"
	"fitbook/internal/domains/class/model/dto"
	"fitbook/internal/domains/class/service"
	"fitbook/shared/constant"
	gDto "fitbook/shared/dto"
	"fitbook/shared/timezone"
	"fitbook/shared/validator"
	"fitbook/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var sortByRule = "omitempty,oneof=" + strings.Join(model.SortableFields, " ")

type Handler struct {
	service service.Class
	otel    otel.Otel
}

func New(service service.Class, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/classes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClass)
		routerGroup.Get("/", handler.GetUpcomingClasses)
		routerGroup.Get("/{id}", handler.GetClassByID)
	})
}

// CreateClass schedules a new class.
// @Summary Create a class
// @Description Schedule a class. A dateTime without an offset is read as Asia/Kolkata time.
// @Tags Class
// @Accept json
// @Produce json
// @Param request body dto.CreateClassRequest true "Create Class Request"
// @Param timezone query string false "Zone used to render the response, defaults to the input zone (Asia/Kolkata)"
// @Success 201 {object} response.Data[dto.ClassResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes [post]
func (handler *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClass")
	defer scope.End()

	loc, err := gDto.LocationFromRequest(r, timezone.InputLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateClassRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	class, err := handler.service.Create(ctx, req, loc)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create class")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Class created successfully")

	response.WithJSON(w, http.StatusCreated, class)
}

// GetUpcomingClasses lists classes that have not started yet.
// @Summary List upcoming classes
// @Description Classes starting after now, rendered in the requested timezone.
// @Tags Class
// @Produce json
// @Param timezone query string false "IANA zone name or IST"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort_by query string false "Sort column" Enums(start_time, name, instructor, available_slots)
// @Param sort_dir query string false "Sort direction" Enums(ASC, DESC)
// @Success 200 {object} response.Data[dto.GetClassesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes [get]
func (handler *Handler) GetUpcomingClasses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcomingClasses")
	defer scope.End()

	loc, err := gDto.LocationFromRequest(r, timezone.DisplayLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := validator.ValidateVar(queryParams.SortBy, sortByRule); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams.SetDefaultSort(model.FieldStartTime, gDto.SortDirAsc)

	classes, err := handler.service.ListUpcoming(ctx, timezone.Now(), queryParams, loc)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming classes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming classes retrieved successfully")

	response.WithJSON(w, http.StatusOK, classes)
}

// GetClassByID retrieves a class by its ID.
// @Summary Get a class by ID
// @Tags Class
// @Produce json
// @Param id path string true "Class ID"
// @Param timezone query string false "IANA zone name or IST"
// @Success 200 {object} response.Data[dto.ClassResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/classes/{id} [get]
func (handler *Handler) GetClassByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClassByID")
	defer scope.End()

	loc, err := gDto.LocationFromRequest(r, timezone.DisplayLocation())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	class, err := handler.service.Get(ctx, id, loc)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get class by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, class)
}
