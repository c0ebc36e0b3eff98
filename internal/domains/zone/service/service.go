package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tzresolve/config"
	"tzresolve/infras/otel"
	"tzresolve/internal/domains/zone/model/dto"
	"tzresolve/shared/cache"
	"tzresolve/shared/constant"
	"tzresolve/shared/failure"
	"tzresolve/shared/timezone"
)

type Zone interface {
	Get(ctx context.Context, name string, at time.Time) (dto.ZoneResponse, error)
	Local(ctx context.Context, at time.Time) (dto.ZoneResponse, error)
	List(ctx context.Context) (dto.ZoneListResponse, error)
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.ConvertResponse, error)
}

// Resolver is satisfied by *timezone.Resolver.
type Resolver interface {
	Resolve(name string) (timezone.Zone, error)
}

type serviceImpl struct {
	resolver Resolver
	catalog  timezone.Catalog
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(resolver Resolver, catalog timezone.Catalog, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Zone {
	return &serviceImpl{
		resolver: resolver,
		catalog:  catalog,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, name string, at time.Time) (res dto.ZoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelZoneAttributeKey, name)

	zone, err := s.resolve(ctx, name)
	if err != nil {
		return res, err
	}

	res.FromZone(zone, at)

	return res, nil
}

func (s *serviceImpl) Local(ctx context.Context, at time.Time) (res dto.ZoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Local")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	zone, err := s.resolve(ctx, "")
	if err != nil {
		return res, err
	}

	scope.SetAttribute(constant.OtelZoneAttributeKey, zone.String())
	res.FromZone(zone, at)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.ZoneListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var zones []string

	err = s.cache.Get(ctx, constant.CacheKeyZoneCatalog, &zones)
	if err == nil {
		scope.AddEvent("zone catalog served from cache")
		res.FromNames(zones)

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("failed to read zone catalog from cache")
	}

	zones, err = s.catalog.Zones()
	if err != nil {
		log.Error().Err(err).Msg("failed to list zones")

		return res, failure.InternalError(fmt.Errorf("failed to list zones: %w", err)) //nolint:wrapcheck
	}

	if err := s.cache.Save(ctx, constant.CacheKeyZoneCatalog, zones, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache zone catalog")
	}

	res.FromNames(zones)

	return res, nil
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.ConvertResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from, err := s.resolve(ctx, req.From)
	if err != nil {
		return res, err
	}

	to, err := s.resolve(ctx, req.To)
	if err != nil {
		return res, err
	}

	instant, err := req.WallTime(from.Location)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"timezone.from": from.String(),
		"timezone.to":   to.String(),
	})

	res.From.FromZone(from, instant)
	res.To.FromZone(to, instant)

	return res, nil
}

// resolve maps resolution failures to 404 and anything else to 500.
func (s *serviceImpl) resolve(ctx context.Context, name string) (timezone.Zone, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelResolverScopeName, constant.OtelResolverScopeName+".Resolve")
	defer scope.End()

	zone, err := s.resolver.Resolve(name)
	if err == nil {
		return zone, nil
	}

	scope.TraceError(err)

	var resolutionErr *timezone.ZoneResolutionError
	if errors.As(err, &resolutionErr) {
		log.Warn().Err(err).Str("timezone", resolutionErr.Zone).Msg("failed to resolve timezone")

		return timezone.Zone{}, failure.NotFound(err.Error()) //nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to detect local timezone")

	return timezone.Zone{}, failure.InternalError(err) //nolint:wrapcheck
}
