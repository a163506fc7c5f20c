package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", ServiceName: "id-service", Output: &buf})

	logger.Info().Msg("dropped")
	logger.Warn().Str(FieldKind, "user").Msg("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "id-service", lines[0][FieldService])
	assert.Equal(t, "user", lines[0][FieldKind])
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf})

	ctx := WithKind(WithLogger(context.Background(), logger), "order")
	l := Ctx(ctx)
	l.Info().Msg("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "order", lines[0][FieldKind])

	// No logger in context falls back to the global one.
	assert.NotPanics(t, func() {
		l := Ctx(context.Background())
		_ = l
	})
}

func TestUnaryServerInterceptor(t *testing.T) {
	var buf bytes.Buffer
	interceptor := UnaryServerInterceptor(New(Config{Output: &buf}))
	info := &grpc.UnaryServerInfo{FullMethod: "/id.IDService/GenerateID"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(metadataKeyRequestID, "req-1"))
	resp, err := interceptor(ctx, "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		l := Ctx(ctx)
		l.Info().Msg("inside")
		return "out", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "out", resp)

	_, err = interceptor(context.Background(), "in", info, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "missing")
	})
	assert.Error(t, err)

	_, err = interceptor(context.Background(), "in", info, func(context.Context, interface{}) (interface{}, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "req-1", lines[0][FieldRequestID])
	assert.Equal(t, "inside", lines[0]["message"])
	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, "OK", lines[1][FieldGRPCCode])
	assert.Equal(t, "warn", lines[2]["level"])
	assert.Equal(t, "NotFound", lines[2][FieldGRPCCode])
	assert.Equal(t, "error", lines[3]["level"])
	assert.NotEmpty(t, lines[3][FieldRequestID])
}
