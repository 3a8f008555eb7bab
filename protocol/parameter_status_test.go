package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterStatusDecode(t *testing.T) {
	payload := append(append([]byte("server_version"), 0), append([]byte("14.2"), 0)...)

	var ps ParameterStatus
	require.NoError(t, ps.Decode(payload))
	require.Equal(t, "server_version", ps.Name)
	require.Equal(t, "14.2", ps.Value)
}

func TestParameterStatusDecodeMissingValue(t *testing.T) {
	payload := append([]byte("server_version"), 0)

	var ps ParameterStatus
	require.Error(t, ps.Decode(payload))
}
