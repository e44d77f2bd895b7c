package registry_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregoryfmartin/zipassets/archive"
	"github.com/gregoryfmartin/zipassets/internal/testutil"
	"github.com/gregoryfmartin/zipassets/registry"
)

// fakeSource serves entries from memory and fails reads listed in readErrs.
type fakeSource struct {
	names    []string
	data     map[string][]byte
	readErrs map[string]error
	listErr  error
	reads    []string
}

func (s *fakeSource) Entries() ([]archive.Entry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]archive.Entry, len(s.names))
	for i, n := range s.names {
		out[i] = archive.Entry{Name: n, Size: uint64(len(s.data[n]))}
	}
	return out, nil
}

func (s *fakeSource) ReadEntry(e archive.Entry) ([]byte, error) {
	s.reads = append(s.reads, e.Name)
	if err := s.readErrs[e.Name]; err != nil {
		return nil, err
	}
	return s.data[e.Name], nil
}

// decodeUpper upper-cases payloads and rejects ones starting with "bad".
func decodeUpper(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte("bad")) {
		return "", errors.New("unsupported payload")
	}
	return strings.ToUpper(string(data)), nil
}

func openArchive(t *testing.T, entries ...testutil.TestEntry) *archive.Reader {
	t.Helper()
	data := testutil.BuildZip(t, entries...)
	r, err := archive.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestPopulateFromArchive(t *testing.T) {
	t.Parallel()

	src := openArchive(t,
		testutil.TestEntry{Name: "a.png", Data: []byte("alpha"), Method: testutil.Store},
		testutil.TestEntry{Name: "b.txt", Data: []byte("text"), Method: testutil.Deflate},
		testutil.TestEntry{Name: "c.jpg", Data: []byte("gamma"), Method: testutil.Zstd},
	)

	r, d := newStrings(t)
	report, err := r.Populate(src, registry.MatchSuffix(".png", ".jpg"), decodeUpper)
	require.NoError(t, err)
	require.NoError(t, report.Err())

	assert.Equal(t, []string{"a.png", "c.jpg"}, report.Added)
	assert.Equal(t, 1, report.Filtered)
	assert.Empty(t, report.Duplicates)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 0, r.IndexOf("a.png"))
	assert.Equal(t, 1, r.IndexOf("c.jpg"))
	assert.False(t, r.Contains("b.txt"))

	h, err := r.Get("c.jpg")
	require.NoError(t, err)
	assert.Equal(t, "GAMMA", h)
	assert.Zero(t, d.Total())
}

func TestPopulateDecodeFailureIsIsolated(t *testing.T) {
	t.Parallel()

	src := openArchive(t,
		testutil.TestEntry{Name: "a.png", Data: []byte("good"), Method: testutil.Deflate},
		testutil.TestEntry{Name: "b.png", Data: []byte("bad data"), Method: testutil.Deflate},
		testutil.TestEntry{Name: "c.png", Data: []byte("fine"), Method: testutil.Store},
	)

	r, _ := newStrings(t)
	report, err := r.Populate(src, registry.MatchSuffix(".png"), decodeUpper)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "c.png"}, r.Names())
	require.Len(t, report.Diagnostics, 1)

	var entryErr *registry.EntryError
	require.ErrorAs(t, report.Diagnostics[0], &entryErr)
	assert.Equal(t, "b.png", entryErr.Name)
	assert.Equal(t, registry.OpDecode, entryErr.Op)
	require.ErrorIs(t, report.Err(), registry.ErrDecode)
}

func TestPopulateReadFailureIsIsolated(t *testing.T) {
	t.Parallel()

	src := openArchive(t,
		testutil.TestEntry{Name: "a.png", Data: []byte("ok"), Method: testutil.Store},
		testutil.TestEntry{Name: "b.png", Data: []byte("corrupted"), Method: testutil.Deflate, CRC32: 0xdeadbeef},
		testutil.TestEntry{Name: "c.png", Data: []byte("ok too"), Method: testutil.Store},
	)

	r, _ := newStrings(t)
	report, err := r.Populate(src, registry.MatchSuffix(".png"), decodeUpper)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "c.png"}, report.Added)
	require.Len(t, report.Diagnostics, 1)

	var entryErr *registry.EntryError
	require.ErrorAs(t, report.Diagnostics[0], &entryErr)
	assert.Equal(t, "b.png", entryErr.Name)
	assert.Equal(t, registry.OpRead, entryErr.Op)
	require.ErrorIs(t, entryErr, archive.ErrRead)
}

func TestPopulateDuplicates(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		names: []string{"a.png", "a.png", "b.png"},
		data:  map[string][]byte{"a.png": []byte("a"), "b.png": []byte("b")},
	}

	r, d := newStrings(t)
	report, err := r.Populate(src, registry.MatchAll, decodeUpper)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png", "b.png"}, report.Added)
	assert.Equal(t, []string{"a.png"}, report.Duplicates)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, d.Total(), "duplicate handle is released")
}

func TestPopulateTwiceIsIdempotentOnNames(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		names: []string{"a.png", "b.png"},
		data:  map[string][]byte{"a.png": []byte("a"), "b.png": []byte("b")},
	}

	r, d := newStrings(t)
	_, err := r.Populate(src, nil, decodeUpper)
	require.NoError(t, err)

	report, err := r.Populate(src, nil, decodeUpper)
	require.NoError(t, err)
	assert.Empty(t, report.Added)
	assert.Equal(t, []string{"a.png", "b.png"}, report.Duplicates)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, d.Total())
}

func TestPopulateSkipsReadsForFilteredEntries(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		names: []string{"a.txt", "b.png", "c.md"},
		data:  map[string][]byte{"b.png": []byte("b")},
	}

	r, _ := newStrings(t)
	report, err := r.Populate(src, registry.MatchSuffix(".png"), decodeUpper)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Filtered)
	assert.Equal(t, []string{"b.png"}, src.reads)
}

func TestPopulateEnumerationFailure(t *testing.T) {
	t.Parallel()

	listErr := errors.New("central directory unreadable")
	src := &fakeSource{listErr: listErr}

	r, _ := newStrings(t)
	report, err := r.Populate(src, registry.MatchAll, decodeUpper)
	require.ErrorIs(t, err, listErr)
	assert.Nil(t, report)
	assert.Equal(t, 0, r.Len())
}

func TestPopulateClosedReader(t *testing.T) {
	t.Parallel()

	data := testutil.BuildZip(t, testutil.TestEntry{Name: "a.png", Data: []byte("a"), Method: testutil.Store})
	src, err := archive.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.NoError(t, src.Close())

	r, _ := newStrings(t)
	_, err = r.Populate(src, registry.MatchAll, decodeUpper)
	require.ErrorIs(t, err, archive.ErrClosed)
	assert.Equal(t, 0, r.Len())
}

func TestPopulateAbortsWhenSourceClosesMidway(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		names:    []string{"a.png", "b.png", "c.png"},
		data:     map[string][]byte{"a.png": []byte("a"), "c.png": []byte("c")},
		readErrs: map[string]error{"b.png": archive.ErrClosed},
	}

	r, _ := newStrings(t)
	report, err := r.Populate(src, registry.MatchAll, decodeUpper)
	require.ErrorIs(t, err, archive.ErrClosed)
	require.NotNil(t, report)
	assert.Equal(t, []string{"a.png"}, report.Added)
	assert.Equal(t, []string{"a.png"}, r.Names())
	assert.NotContains(t, src.reads, "c.png")
}

func TestPopulateAfterDestroy(t *testing.T) {
	t.Parallel()

	r, _ := newStrings(t)
	require.NoError(t, r.Destroy())

	_, err := r.Populate(&fakeSource{}, registry.MatchAll, decodeUpper)
	require.ErrorIs(t, err, registry.ErrDestroyed)
}

func TestReportErrNil(t *testing.T) {
	t.Parallel()

	var report *registry.Report
	require.NoError(t, report.Err())
	require.NoError(t, (&registry.Report{}).Err())
}
