package zone

import (
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzresolve/infras/otel"
	"tzresolve/internal/domains/zone/model/dto"
	"tzresolve/internal/domains/zone/service"
	"tzresolve/shared/constant"
	"tzresolve/shared/failure"
	"tzresolve/shared/timezone"
	"tzresolve/shared/validator"
	"tzresolve/transport/http/response"
)

type Handler struct {
	service service.Zone
	otel    otel.Otel
	now     func() time.Time
}

func New(service service.Zone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
		now:     timezone.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/zones", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.ListZones)
		routerGroup.Get("/local", handler.GetLocalZone)
		routerGroup.Post("/convert", handler.ConvertTime)
		routerGroup.Get("/*", handler.GetZone)
	})
}

// ListZones lists every zone found below the configured root paths.
// @Summary List zones
// @Tags Zone
// @Produce json
// @Success 200 {object} dto.ZoneListResponse
// @Failure 500 {object} response.Error
// @Router /v1/zones [get]
func (handler *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListZones")
	defer scope.End()

	zones, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list zones")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, zones)
}

// GetLocalZone describes the host's local zone.
// @Summary Get the local zone
// @Tags Zone
// @Produce json
// @Param at query string false "RFC3339 instant, defaults to now"
// @Success 200 {object} dto.ZoneResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/zones/local [get]
func (handler *Handler) GetLocalZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocalZone")
	defer scope.End()

	at, err := handler.instant(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	zone, err := handler.service.Local(ctx, at)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve local zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, zone)
}

// GetZone describes a zone by identifier or root path.
// @Summary Get a zone
// @Tags Zone
// @Produce json
// @Param name path string true "Zone identifier, e.g. Europe/London"
// @Param at query string false "RFC3339 instant, defaults to now"
// @Success 200 {object} dto.ZoneResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/zones/{name} [get]
func (handler *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetZone")
	defer scope.End()

	name, err := url.PathUnescape(chi.URLParam(r, constant.RequestParamZone))
	if err == nil {
		err = validator.ValidateVar(name, "required,max=255,zonename")
	}

	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	scope.SetAttribute(constant.OtelZoneAttributeKey, name)

	at, err := handler.instant(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	zone, err := handler.service.Get(ctx, name, at)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", name).Msg("failed to resolve zone")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, zone)
}

// ConvertTime re-expresses a wall clock time from one zone in another.
// @Summary Convert a wall clock time
// @Tags Zone
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/zones/convert [post]
func (handler *Handler) ConvertTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConvertTime")
	defer scope.End()

	req := dto.ConvertRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) instant(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get(constant.RequestParamAt)
	if value == "" {
		return handler.now(), nil
	}

	at, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.InvalidTimeParam
	}

	return at, nil
}
