package resx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resxtools/resxkit/pkg/resx"
)

var utf8Marker = []byte{0xEF, 0xBB, 0xBF}

const doc = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
	"<root>\n" +
	"  <!-- UI strings -->\n" +
	"  <data name=\"Key1\" xml:space=\"preserve\">\n" +
	"    <value>Value1</value>\n" +
	"  </data>\n" +
	"  <data name=\"Key2\" xml:space=\"preserve\">\n" +
	"    <value>Value2</value>\n" +
	"  </data>\n" +
	"</root>\n"

func TestUpdateRoundTrip(t *testing.T) {
	out, err := resx.UpdateValue([]byte(doc), "Key1", "changed")
	require.NoError(t, err)

	before, err := resx.Parse([]byte(doc))
	require.NoError(t, err)
	after, err := resx.Parse(out)
	require.NoError(t, err)

	assert.Equal(t, "changed", after["Key1"])
	delete(before, "Key1")
	delete(after, "Key1")
	assert.Equal(t, before, after, "no other key may change")
}

func TestRemoveInsertIdempotence(t *testing.T) {
	out, ordinal, err := resx.RemoveEntry([]byte(doc), "Key2")
	require.NoError(t, err)
	require.Equal(t, 1, ordinal)

	restored, err := resx.InsertEntry(out, "Key2", "Value2", ordinal)
	require.NoError(t, err)

	wantEntries, err := resx.Entries([]byte(doc))
	require.NoError(t, err)
	gotEntries, err := resx.Entries(restored)
	require.NoError(t, err)
	assert.Equal(t, wantEntries, gotEntries, "mapping and relative order must be restored")
}

func TestBatchUpdateNoOpIsByteIdentical(t *testing.T) {
	out, err := resx.UpdateValues([]byte(doc), map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, []byte(doc), out)
}

func TestMarkerPreservedByEveryMutation(t *testing.T) {
	marked := append(append([]byte{}, utf8Marker...), doc...)

	mutations := map[string]func() ([]byte, error){
		"update": func() ([]byte, error) { return resx.UpdateValue(marked, "Key2", "x") },
		"rename": func() ([]byte, error) { return resx.RenameKey(marked, "Key2", "Key2b") },
		"insert": func() ([]byte, error) { return resx.InsertEntry(marked, "Key3", "v", 99) },
		"remove": func() ([]byte, error) {
			out, _, err := resx.RemoveEntry(marked, "Key2")
			return out, err
		},
		"batch-insert": func() ([]byte, error) {
			return resx.InsertEntries(marked, []resx.InsertItem{{Key: "Key4", Value: "v", Index: 0}})
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			out, err := mutate()
			require.NoError(t, err)
			assert.Equal(t, utf8Marker, out[:3], "marker must survive the mutation")
		})
	}
}

func TestEscapingMinimality(t *testing.T) {
	out, err := resx.UpdateValue([]byte(doc), "Key1", `a & b < c > d "q"`)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<value>a &amp; b &lt; c &gt; d "q"</value>`)
}

func TestCRLFPreserved(t *testing.T) {
	crlf := strings.ReplaceAll(doc, "\n", "\r\n")
	out, err := resx.InsertEntry([]byte(crlf), "Key3", "v3", 0)
	require.NoError(t, err)
	assert.NotContains(t, strings.ReplaceAll(string(out), "\r\n", ""), "\n",
		"no bare LF may appear in a CRLF document")

	fp, err := resx.Sniff(out)
	require.NoError(t, err)
	assert.Equal(t, "\r\n", fp.LineEnding)
}

func TestUTF16DocumentSurvivesEdit(t *testing.T) {
	// Build a UTF-16LE document by updating a value in one; the engine
	// re-encodes output to the input's encoding.
	utf16 := encodeUTF16LE(t, doc)
	out, err := resx.UpdateValue(utf16, "Key1", "näw")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, []byte{0xFF, 0xFE}, out[:2], "utf-16le marker must survive")

	m, err := resx.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "näw", m["Key1"])
	assert.Equal(t, "Value2", m["Key2"])
}

func TestSniff(t *testing.T) {
	fp, err := resx.Sniff([]byte(doc))
	require.NoError(t, err)
	assert.False(t, fp.HasMarker)
	assert.Equal(t, "\n", fp.LineEnding)
	assert.Equal(t, "  ", fp.IndentUnit)
}

func TestLookup(t *testing.T) {
	v, err := resx.Lookup([]byte(doc), "Key1")
	require.NoError(t, err)
	assert.Equal(t, "Value1", v)

	_, err = resx.Lookup([]byte(doc), "Missing")
	assert.ErrorIs(t, err, resx.ErrNotFound)
}

func TestInsertDuplicateKey(t *testing.T) {
	_, err := resx.InsertEntry([]byte(doc), "Key1", "v", 0)
	assert.ErrorIs(t, err, resx.ErrDuplicateKey)
}

func TestBatchInsertTieOrder(t *testing.T) {
	out, err := resx.InsertEntries([]byte(doc), []resx.InsertItem{
		{Key: "A", Value: "a", Index: 0},
		{Key: "B", Value: "b", Index: 0},
	})
	require.NoError(t, err)
	entries, err := resx.Entries(out)
	require.NoError(t, err)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"A", "B", "Key1", "Key2"}, keys)
}

func TestMalformedDocument(t *testing.T) {
	_, err := resx.Parse([]byte(`<root><data name="a"`))
	assert.ErrorIs(t, err, resx.ErrMalformed)

	_, err = resx.UpdateValue([]byte(`<root><!-- busted`), "a", "b")
	assert.ErrorIs(t, err, resx.ErrMalformed)
}

func encodeUTF16LE(t *testing.T, s string) []byte {
	t.Helper()
	out := []byte{0xFF, 0xFE}
	for _, r := range s {
		if r > 0xFFFF {
			t.Fatalf("sample must stay in the BMP, got %q", r)
		}
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}
