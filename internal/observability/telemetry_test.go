package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInitTelemetryInstallsProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	shutdown, err := InitTelemetry(context.Background(), Options{
		ServiceName: "acidmud-test",
		Endpoint:    "127.0.0.1:1",
		Insecure:    true,
	})
	require.NoError(t, err)
	defer otel.SetTracerProvider(before)

	require.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	// Нечего экспортировать, поэтому коллектор не нужен.
	require.NoError(t, shutdown(context.Background()))
}
