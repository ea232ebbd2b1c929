package tracing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"fleet-monitor/reporting/internal/catalog"
	"fleet-monitor/reporting/internal/domain"
	"fleet-monitor/reporting/internal/service"
)

func TestProviderExportsOnShutdown(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewProvider(&buf, "fleet-reporting")
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}

	_, span := tp.Tracer("test").Start(context.Background(), "report.submit")
	span.SetAttributes(attribute.String("car.id", "b658bd54-7cbe-4342-aca3-b08bbf9f7f5d"))
	span.End()

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"report.submit", "car.id", "fleet-reporting"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported spans missing %q: %s", want, out)
		}
	}
}

func TestProviderReceivesReportSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, err := NewProvider(&buf, "fleet-reporting")
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	c, err := catalog.New(domain.DefaultVehicles)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}

	svc := service.NewReportService(c, nil, service.WithTracerProvider(tp))
	svc.Submit(context.Background(), domain.Report{ID: "b658bd54-7cbe-4342-aca3-b08bbf9f7f5d", Mileage: 100, UsedFuel: 5.4})

	if err := tp.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"Name":"report.submit"`, "report.result", "valid"} {
		if !strings.Contains(out, want) {
			t.Errorf("exported spans missing %q: %s", want, out)
		}
	}
}
