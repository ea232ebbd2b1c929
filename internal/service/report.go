// Package service classifies car reports against the vehicle catalog.
package service

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fleet-monitor/reporting/internal/catalog"
	"fleet-monitor/reporting/internal/domain"
	"fleet-monitor/reporting/internal/metrics"
)

const tracerName = "fleet-monitor/reporting/internal/service"

type OutcomeKind int

const (
	OutcomeNotFound OutcomeKind = iota
	OutcomeAccepted
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Outcome is the result of one submission. Valid and Vehicle are only
// meaningful when Kind is OutcomeAccepted.
type Outcome struct {
	Kind    OutcomeKind
	Valid   bool
	Vehicle domain.Vehicle
}

func NotFound() Outcome {
	return Outcome{Kind: OutcomeNotFound}
}

func Accepted(v domain.Vehicle, valid bool) Outcome {
	return Outcome{Kind: OutcomeAccepted, Valid: valid, Vehicle: v}
}

type ReportService struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*ReportService)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ReportService) { s.metrics = m }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *ReportService) { s.tracer = tp.Tracer(tracerName) }
}

func NewReportService(c *catalog.Catalog, logger *slog.Logger, opts ...Option) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ReportService{
		catalog: c,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit looks up the reported vehicle and classifies the report. A found
// vehicle is always accepted; validity is only recorded in the log and
// metrics. Unknown vehicles produce no validation log record.
func (s *ReportService) Submit(ctx context.Context, r domain.Report) Outcome {
	ctx, span := s.tracer.Start(ctx, "report.submit",
		trace.WithAttributes(attribute.String("car.id", r.ID)))
	defer span.End()

	v, ok := s.catalog.Lookup(r.ID)
	if !ok {
		s.metrics.ObserveReport(metrics.ResultNotFound)
		span.SetAttributes(attribute.String("report.outcome", OutcomeNotFound.String()))
		return NotFound()
	}

	valid := domain.ValidateReport(v, r)
	result := domain.ValidityOf(valid)

	s.logger.LogAttrs(ctx, slog.LevelInfo, "car report processed",
		slog.String("car_id", v.ID),
		slog.String("car_model", v.Model),
		slog.String("fuel_type", v.FuelType),
		mileageAttr(r.Mileage),
		slog.String("result", string(result)),
	)
	s.metrics.ObserveReport(string(result))
	span.SetAttributes(
		attribute.String("report.outcome", OutcomeAccepted.String()),
		attribute.String("report.result", string(result)),
	)

	return Accepted(v, valid)
}

// mileageAttr renders non-finite mileage as text; JSON handlers cannot
// encode ±Inf or NaN as numbers.
func mileageAttr(m float64) slog.Attr {
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return slog.String("mileage", strconv.FormatFloat(m, 'g', -1, 64))
	}
	return slog.Float64("mileage", m)
}
