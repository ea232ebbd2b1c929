package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"fleet-monitor/reporting/internal/domain"
	"fleet-monitor/reporting/internal/metrics"
	"fleet-monitor/reporting/internal/service"
)

const (
	ReportPath  = "/api/v1/car-report"
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"

	maxBodyBytes = 1 << 20

	msgAccepted      = "Car status report accepted"
	msgNotFound      = "Car not found"
	msgInvalidReport = "Invalid car report"
	msgInternal      = "Internal server error"
)

// Submitter is the part of service.ReportService the handlers need.
type Submitter interface {
	Submit(ctx context.Context, r domain.Report) service.Outcome
}

type messageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// carReportFields is the raw request object. Keys are matched exactly;
// encoding/json struct decoding would also accept "ID" or "Mileage".
type carReportFields map[string]json.RawMessage

func (f carReportFields) toReport() (domain.Report, error) {
	var (
		r       domain.Report
		missing []string
	)

	strs := []struct {
		key string
		dst *string
	}{
		{"id", &r.ID},
		{"car_model", &r.Model},
		{"fuel_type", &r.FuelType},
	}
	for _, s := range strs {
		ok, err := f.stringField(s.key, s.dst)
		if err != nil {
			return domain.Report{}, err
		}
		if !ok {
			missing = append(missing, s.key)
		}
	}

	nums := []struct {
		key string
		dst *float64
	}{
		{"mileage", &r.Mileage},
		{"used_fuel", &r.UsedFuel},
	}
	for _, n := range nums {
		ok, err := f.numberField(n.key, n.dst)
		if err != nil {
			return domain.Report{}, err
		}
		if !ok {
			missing = append(missing, n.key)
		}
	}

	if len(missing) > 0 {
		return domain.Report{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return r, nil
}

// present reports whether key holds a non-null value.
func (f carReportFields) present(key string) (json.RawMessage, bool) {
	raw, ok := f[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func (f carReportFields) stringField(key string, dst *string) (bool, error) {
	raw, ok := f.present(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("field %q must be a string", key)
	}
	return true, nil
}

// numberField keeps out-of-range numbers such as 1e400 as ±Inf so they
// reach validation and are classified there.
func (f carReportFields) numberField(key string, dst *float64) (bool, error) {
	raw, ok := f.present(key)
	if !ok {
		return false, nil
	}
	v, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return false, fmt.Errorf("field %q must be a number", key)
	}
	*dst = v
	return true, nil
}

type Handler struct {
	svc    Submitter
	logger *slog.Logger
}

func NewHandler(svc Submitter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// NewRouter wires every route and the middleware chain. m may be nil, in
// which case /metrics is not served and latency is not recorded.
func NewRouter(svc Submitter, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	h := NewHandler(svc, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ReportPath, h.SubmitCarReport)
	mux.HandleFunc("GET "+HealthPath, h.Healthz)
	if m != nil {
		mux.Handle("GET "+MetricsPath, m.Handler())
	}

	var root http.Handler = mux
	root = Instrument(m, root)
	root = AccessLog(h.logger, root)
	root = Recover(h.logger, root)
	root = RequestID(root)
	return root
}

func (h *Handler) SubmitCarReport(w http.ResponseWriter, r *http.Request) {
	report, err := decodeCarReport(w, r)
	if err != nil {
		h.logger.DebugContext(r.Context(), "rejected car report body",
			slog.String("request_id", RequestIDFrom(r.Context())),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: msgInvalidReport, Detail: err.Error()})
		return
	}

	status, body := outcomeResponse(h.svc.Submit(r.Context(), report))
	writeJSON(w, status, body)
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// outcomeResponse is the only place outcomes become HTTP responses.
func outcomeResponse(o service.Outcome) (int, messageResponse) {
	switch o.Kind {
	case service.OutcomeAccepted:
		return http.StatusAccepted, messageResponse{Message: msgAccepted}
	case service.OutcomeNotFound:
		return http.StatusNotFound, messageResponse{Message: msgNotFound}
	default:
		return http.StatusInternalServerError, messageResponse{Message: msgInternal}
	}
}

func decodeCarReport(w http.ResponseWriter, r *http.Request) (domain.Report, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var fields carReportFields
	if err := dec.Decode(&fields); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return domain.Report{}, errors.New("request body is empty")
		case errors.As(err, &maxErr):
			return domain.Report{}, fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		case errors.As(err, &typeErr):
			return domain.Report{}, errors.New("request body must be a JSON object")
		default:
			return domain.Report{}, fmt.Errorf("malformed JSON: %w", err)
		}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return domain.Report{}, errors.New("request body must contain a single JSON object")
	}

	return fields.toReport()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
