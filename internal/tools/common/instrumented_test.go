package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/curator/internal/config"
	"github.com/teemow/curator/internal/instrumentation"
	"github.com/teemow/curator/internal/server"
	"github.com/teemow/curator/internal/store"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background(), store.NewMemoryStore(), config.MapConfig{})
	require.NoError(t, err)
	return sc
}

func newCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestInstrumentedToolHandlerPassthrough(t *testing.T) {
	// No instrumentation attached: the wrapper must be transparent.
	sc := newTestServerContext(t)

	called := false
	handler := InstrumentedToolHandler("listSources", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			called = true
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := handler(context.Background(), newCallToolRequest("listSources", nil))
	require.NoError(t, err)
	assert.True(t, called)
	assert.False(t, result.IsError)
}

func TestInstrumentedToolHandlerRecordsMetrics(t *testing.T) {
	sc := newTestServerContext(t)

	ctx := context.Background()
	provider, err := instrumentation.NewProvider(ctx, instrumentation.Config{
		ServiceName:     "curator-test",
		Enabled:         true,
		MetricsExporter: instrumentation.ExporterPrometheus,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	sc.SetInstrumentation(provider.Metrics(), instrumentation.NewAuditLogger(nil))

	handler := InstrumentedToolHandlerWithCollection("addSource", "sources", "add", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			time.Sleep(time.Millisecond)
			return mcp.NewToolResultText("ok"), nil
		})

	result, err := handler(ctx, newCallToolRequest("addSource", nil))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestInstrumentedToolHandlerPropagatesError(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetInstrumentation(nil, instrumentation.NewAuditLogger(nil))

	wantErr := errors.New("boom")
	handler := InstrumentedToolHandler("addSource", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return nil, wantErr
		})

	_, err := handler(context.Background(), newCallToolRequest("addSource", nil))
	assert.ErrorIs(t, err, wantErr)
}

func TestInstrumentedToolHandlerToolError(t *testing.T) {
	sc := newTestServerContext(t)
	sc.SetInstrumentation(nil, instrumentation.NewAuditLogger(nil))

	handler := InstrumentedToolHandler("getContent", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultError("content not found"), nil
		})

	result, err := handler(context.Background(), newCallToolRequest("getContent", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
