package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
)

// samplePage is comfortably over the 18-byte minimum.
const samplePage = ".TH sample 1\n.SH NAME\nsample \\- a sample page\n"

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func gzipped(t *testing.T, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLoad_PlainTroff(t *testing.T) {
	before := ActiveMappings()
	path := writeFile(t, "sample.1", []byte(samplePage))

	buf, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(samplePage), buf.Bytes())
	assert.Equal(t, before+1, ActiveMappings())

	require.NoError(t, buf.Close())
	assert.Equal(t, before, ActiveMappings())
}

func TestLoad_GzippedTroff(t *testing.T) {
	before := ActiveMappings()
	path := writeFile(t, "sample.1.gz", gzipped(t, []byte(samplePage)))

	buf, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(samplePage), buf.Bytes())
	// only the decompressed mapping survives
	assert.Equal(t, before+1, ActiveMappings())

	require.NoError(t, buf.Close())
	assert.Equal(t, before, ActiveMappings())
}

func TestLoad_GzippedLargerThanOnePage(t *testing.T) {
	content := []byte(".TH big 5\n" + strings.Repeat("body line of filler text\n", 800))
	path := writeFile(t, "big.5.gz", gzipped(t, content))

	buf, err := New().Load(path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, content, buf.Bytes())
}

func TestLoad_MissingFile(t *testing.T) {
	before := ActiveMappings()

	_, err := New().Load(filepath.Join(t.TempDir(), "nope.1"))
	assert.ErrorIs(t, err, domain.ErrOpenFailed)
	assert.Equal(t, before, ActiveMappings())
}

func TestLoad_MinimumSizeBoundary(t *testing.T) {
	before := ActiveMappings()

	// 17 bytes: rejected by the loader
	short := writeFile(t, "short.1", bytes.Repeat([]byte{'x'}, 17))
	_, err := New().Load(short)
	assert.ErrorIs(t, err, domain.ErrFileTooSmall)
	assert.Equal(t, before, ActiveMappings())

	// 18 bytes: accepted into the detection path even though the content
	// is nonsense; failure, if any, belongs to the parser
	ok := writeFile(t, "ok.1", bytes.Repeat([]byte{'x'}, 18))
	buf, err := New().Load(ok)
	require.NoError(t, err)
	assert.Len(t, buf.Bytes(), 18)
	require.NoError(t, buf.Close())
	assert.Equal(t, before, ActiveMappings())
}

func TestLoad_CorruptGzip(t *testing.T) {
	before := ActiveMappings()

	// a valid magic over garbage, with a plausible ISIZE footer
	content := append([]byte{0x1f, 0x8b, 0x08}, bytes.Repeat([]byte{0xde}, 20)...)
	content = append(content, 0x40, 0x00, 0x00, 0x00)
	path := writeFile(t, "corrupt.1.gz", content)

	_, err := New().Load(path)
	assert.ErrorIs(t, err, domain.ErrDecompressFailed)
	assert.Equal(t, before, ActiveMappings())
}

func TestLoad_TruncatedGzip(t *testing.T) {
	before := ActiveMappings()

	full := gzipped(t, []byte(samplePage))
	path := writeFile(t, "truncated.1.gz", full[:len(full)-6])

	_, err := New().Load(path)
	assert.ErrorIs(t, err, domain.ErrDecompressFailed)
	assert.Equal(t, before, ActiveMappings())
}

func TestBuffer_CloseIsIdempotent(t *testing.T) {
	before := ActiveMappings()
	path := writeFile(t, "sample.1", []byte(samplePage))

	buf, err := New().Load(path)
	require.NoError(t, err)

	require.NoError(t, buf.Close())
	require.NoError(t, buf.Close())
	assert.Equal(t, before, ActiveMappings())
}
