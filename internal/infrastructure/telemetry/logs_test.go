package telemetry_test

import (
	"context"
	"sync"
	"testing"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

var _ sdklog.Processor = (*recordingProcessor)(nil)

// recordingProcessor keeps every emitted record body
type recordingProcessor struct {
	mu     sync.Mutex
	bodies []string
}

func (p *recordingProcessor) OnEmit(_ context.Context, r *sdklog.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bodies = append(p.bodies, r.Body().AsString())
	return nil
}

func (p *recordingProcessor) Enabled(context.Context, sdklog.EnabledParameters) bool { return true }
func (p *recordingProcessor) Shutdown(context.Context) error                         { return nil }
func (p *recordingProcessor) ForceFlush(context.Context) error                       { return nil }

func TestLoggerProvider_Disabled(t *testing.T) {
	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())

	base := zap.NewNop()
	assert.Same(t, base, lp.Bridge(base, zapcore.InfoLevel))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_BridgeTeesRecords(t *testing.T) {
	proc := &recordingProcessor{}
	lp := telemetry.NewLoggerProviderWithProcessor(telemetry.LogsConfig{ServiceName: "test"}, zaptest.NewLogger(t), proc)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := lp.Bridge(zap.New(core), zapcore.WarnLevel)

	logger.Info("kept local")
	logger.Warn("Skipping non-numeric amount")

	assert.Equal(t, 2, logs.Len(), "the base core still sees everything")
	proc.mu.Lock()
	defer proc.mu.Unlock()
	assert.Equal(t, []string{"Skipping non-numeric amount"}, proc.bodies)
}
