package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manview-cli/internal/core/domain"
	"github.com/custodia-labs/manview-cli/internal/core/ports/driven"
	"github.com/custodia-labs/manview-cli/internal/normalisers/troff"
)

// fakeBuffer records how often it is closed.
type fakeBuffer struct {
	data   []byte
	closes int
}

func (b *fakeBuffer) Bytes() []byte { return b.data }

func (b *fakeBuffer) Close() error {
	b.closes++
	return nil
}

// fakeLoader reads files without mmap so service tests stay adapter-free.
type fakeLoader struct {
	err  error
	last *fakeBuffer
}

func (l *fakeLoader) Load(path string) (driven.PageBuffer, error) {
	if l.err != nil {
		return nil, l.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrOpenFailed
	}
	l.last = &fakeBuffer{data: data}
	return l.last, nil
}

func writePage(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "page-*.1")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestPageService_Open(t *testing.T) {
	ld := &fakeLoader{}
	svc := NewPageService(ld, troff.New())
	path := writePage(t, ".TH hello 1\n.SH NAME\nhello \\- greet\n")

	sess, err := svc.Open(context.Background(), path)
	require.NoError(t, err)
	defer sess.Close()

	assert.Equal(t, "hello", sess.Page.Title)
	assert.Equal(t, "1", sess.Page.Section)
	assert.Contains(t, string(sess.Source), ".SH NAME")
	assert.Zero(t, ld.last.closes, "session owns the buffer while open")

	require.NoError(t, sess.Close())
	assert.Equal(t, 1, ld.last.closes)
}

func TestPageService_Open_LoadFailure(t *testing.T) {
	ld := &fakeLoader{err: domain.ErrFileTooSmall}
	svc := NewPageService(ld, troff.New())

	_, err := svc.Open(context.Background(), "whatever.1")
	assert.ErrorIs(t, err, domain.ErrFileTooSmall)
}

func TestPageService_Open_ParseFailureReleasesBuffer(t *testing.T) {
	ld := &fakeLoader{}
	svc := NewPageService(ld, troff.New())
	path := writePage(t, ".SH NAME\nno title here\n")

	_, err := svc.Open(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrNoTitle)
	require.NotNil(t, ld.last)
	assert.Equal(t, 1, ld.last.closes, "buffer must be released on parse failure")
}

func TestPageService_Open_SessionCloseIsIdempotent(t *testing.T) {
	ld := &fakeLoader{}
	svc := NewPageService(ld, troff.New())
	path := writePage(t, ".TH once 1\n")

	sess, err := svc.Open(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())
	assert.Equal(t, 1, ld.last.closes)
}

func TestPageService_Open_WrapsPathInError(t *testing.T) {
	ld := &fakeLoader{err: errors.New("boom")}
	svc := NewPageService(ld, troff.New())

	_, err := svc.Open(context.Background(), "/some/path.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/some/path.1")
}
