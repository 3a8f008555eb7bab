package wire

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkReaderNextDoesNotReadIfAlreadyBuffered(t *testing.T) {
	server := &bytes.Buffer{}
	r := NewChunkReader(server, 4)

	src := []byte{1, 2, 3, 4}
	server.Write(src)

	n1, err := r.Next(2)
	require.NoError(t, err)
	require.Equal(t, src[0:2], n1)

	n2, err := r.Next(2)
	require.NoError(t, err)
	require.Equal(t, src[2:4], n2)

	require.Equal(t, src, r.buf)

	_, err = r.Next(0) // Trigger the buffer reset.
	require.NoError(t, err)
	require.Zero(t, r.rp)
	require.Zero(t, r.wp)
}

func TestChunkReaderNextGetsBiggerBufAsNeeded(t *testing.T) {
	server := &bytes.Buffer{}
	r := NewChunkReader(server, 4)

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	server.Write(src)

	n1, err := r.Next(5)
	require.NoError(t, err)
	require.Equal(t, src[0:5], n1)
	require.Equal(t, bigBufPools[0].byteSize, len(r.buf))
}

func TestChunkReaderReusesBuf(t *testing.T) {
	server := &bytes.Buffer{}
	r := NewChunkReader(server, 4)

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	server.Write(src)

	n1, err := r.Next(4)
	require.NoError(t, err)
	require.Equal(t, src[0:4], n1)

	n2, err := r.Next(4)
	require.NoError(t, err)
	require.Equal(t, src[4:8], n2)

	require.Equal(t, src[4:8], n1, "expected r's backing array slot to be reused")
}

type randomReader struct {
	rnd *rand.Rand
}

func (r *randomReader) Read(p []byte) (n int, err error) {
	n = r.rnd.Intn(len(p) + 1)
	return r.rnd.Read(p[:n])
}

func TestChunkReaderNextFuzz(t *testing.T) {
	rr := &randomReader{rnd: rand.New(rand.NewSource(1))}
	r := NewChunkReader(rr, 8192)

	randomSizes := rand.New(rand.NewSource(0))

	for i := 0; i < 10000; i++ {
		size := randomSizes.Intn(16384) + 1
		buf, err := r.Next(size)
		require.NoError(t, err)
		require.Len(t, buf, size)
	}
}
