package pgtrace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pgwire/protocol"
)

type recordingLogger struct {
	lines []string
	data  []map[string]any
}

func (r *recordingLogger) Log(level Level, msg string, data map[string]any) {
	r.lines = append(r.lines, msg)
	r.data = append(r.data, data)
}

func TestTracerTraceMessage(t *testing.T) {
	rec := &recordingLogger{}
	tracer := &Tracer{Logger: rec}

	tracer.TraceMessage('B', &protocol.BackendKeyData{ProcessID: 42, SecretKey: 99})

	require.Len(t, rec.lines, 1)
	require.Equal(t, "BackendKeyData\t 42 99", rec.lines[0])
	require.Equal(t, "B", rec.data[0]["sender"])
}

func TestTracerNilLoggerIsNoop(t *testing.T) {
	var tracer *Tracer
	require.NotPanics(t, func() {
		tracer.TraceMessage('B', &protocol.ReadyForQuery{TxStatus: protocol.TxStatusIdle})
	})

	tracer = &Tracer{}
	require.NotPanics(t, func() {
		tracer.TraceMessage('B', &protocol.ReadyForQuery{TxStatus: protocol.TxStatusIdle})
	})
}

func TestTracerTraceClientCommand(t *testing.T) {
	rec := &recordingLogger{}
	tracer := &Tracer{Logger: rec}

	tracer.TraceClientCommand("Query", `"select 1"`)

	require.Len(t, rec.lines, 1)
	require.Equal(t, "Query\t \"select 1\"", rec.lines[0])
	require.Equal(t, "F", rec.data[0]["sender"])
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "trace", LevelTrace.String())
	require.Equal(t, "none", LevelNone.String())
	require.Contains(t, Level(0).String(), "invalid")
}
