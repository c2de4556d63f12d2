package resxtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/resxtools/resxkit/pkg/types"
)

const twoEntryDoc = "<root>\n" +
	"  <data name=\"Key1\" xml:space=\"preserve\"><value>Value1</value></data>\n" +
	"  <data name=\"Key2\" xml:space=\"preserve\"><value>Value2</value></data>\n" +
	"</root>\n"

func TestInsertEntryAtIndex(t *testing.T) {
	out, err := InsertEntry([]byte(twoEntryDoc), "New", "NV", 1, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	entries, err := Entries(out)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	keys := entryKeys(entries)
	if strings.Join(keys, ",") != "Key1,New,Key2" {
		t.Errorf("order = %v", keys)
	}
	if !strings.Contains(string(out), "\n  <data name=\"New\" xml:space=\"preserve\">\n    <value>NV</value>\n  </data>\n  <data name=\"Key2\"") {
		t.Errorf("synthesized block misplaced or misindented:\n%s", out)
	}
}

func TestInsertEntryAtZero(t *testing.T) {
	out, err := InsertEntry([]byte(twoEntryDoc), "New", "NV", 0, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	entries, _ := Entries(out)
	if keys := entryKeys(entries); strings.Join(keys, ",") != "New,Key1,Key2" {
		t.Errorf("order = %v", keys)
	}
}

func TestInsertEntryAppends(t *testing.T) {
	out, err := InsertEntry([]byte(twoEntryDoc), "Tail", "TV", 99, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	entries, _ := Entries(out)
	if keys := entryKeys(entries); strings.Join(keys, ",") != "Key1,Key2,Tail" {
		t.Errorf("order = %v", keys)
	}
	if !strings.Contains(string(out), "</data>\n  <data name=\"Tail\" xml:space=\"preserve\">\n    <value>TV</value>\n  </data>\n</root>\n") {
		t.Errorf("append block wrong:\n%s", out)
	}
}

func TestInsertEntryDuplicate(t *testing.T) {
	_, err := InsertEntry([]byte(twoEntryDoc), "Key1", "x", 0, "\n", "  ")
	if !errors.Is(err, types.ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestInsertEntryCRLF(t *testing.T) {
	doc := strings.ReplaceAll(twoEntryDoc, "\n", "\r\n")
	out, err := InsertEntry([]byte(doc), "New", "NV", 1, "\r\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	if !strings.Contains(string(out), "<data name=\"New\" xml:space=\"preserve\">\r\n    <value>NV</value>\r\n  </data>\r\n") {
		t.Errorf("crlf not used in synthesized block:\n%q", out)
	}
}

func TestInsertEntryEmptyRoot(t *testing.T) {
	doc := "<root>\n</root>\n"
	out, err := InsertEntry([]byte(doc), "Only", "V", 0, "\n", "    ")
	if err != nil {
		t.Fatalf("InsertEntry: %v", err)
	}
	m, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m["Only"] != "V" {
		t.Errorf("mapping = %v", m)
	}
	if !strings.Contains(string(out), "<root>\n    <data name=\"Only\"") {
		t.Errorf("block not indented with the fallback unit:\n%q", out)
	}
}

func TestInsertEntriesBatchOrdering(t *testing.T) {
	items := []types.InsertItem{
		{Key: "A", Value: "a", Index: 0},
		{Key: "B", Value: "b", Index: 0},
	}
	out, err := InsertEntries([]byte(twoEntryDoc), items, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntries: %v", err)
	}
	entries, _ := Entries(out)
	if keys := entryKeys(entries); strings.Join(keys, ",") != "A,B,Key1,Key2" {
		t.Errorf("order = %v", keys)
	}
}

func TestInsertEntriesSpread(t *testing.T) {
	items := []types.InsertItem{
		{Key: "Mid", Value: "m", Index: 1},
		{Key: "End", Value: "e", Index: 9},
		{Key: "Front", Value: "f", Index: 0},
	}
	out, err := InsertEntries([]byte(twoEntryDoc), items, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntries: %v", err)
	}
	entries, _ := Entries(out)
	if keys := entryKeys(entries); strings.Join(keys, ",") != "Front,Key1,Mid,Key2,End" {
		t.Errorf("order = %v", keys)
	}
}

func TestInsertEntriesEmptyBatchByteIdentical(t *testing.T) {
	out, err := InsertEntries([]byte(twoEntryDoc), nil, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntries: %v", err)
	}
	if string(out) != twoEntryDoc {
		t.Error("empty batch must reproduce the document byte-for-byte")
	}
}

func TestInsertEntriesDuplicateWithinBatch(t *testing.T) {
	items := []types.InsertItem{
		{Key: "X", Value: "1", Index: 0},
		{Key: "X", Value: "2", Index: 1},
	}
	_, err := InsertEntries([]byte(twoEntryDoc), items, "\n", "  ")
	if !errors.Is(err, types.ErrDuplicateKey) {
		t.Errorf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestInsertEntriesIntoEmptyRoot(t *testing.T) {
	doc := "<root>\n</root>\n"
	items := []types.InsertItem{
		{Key: "A", Value: "1", Index: 0},
		{Key: "B", Value: "2", Index: 0},
	}
	out, err := InsertEntries([]byte(doc), items, "\n", "  ")
	if err != nil {
		t.Fatalf("InsertEntries: %v", err)
	}
	entries, _ := Entries(out)
	if keys := entryKeys(entries); strings.Join(keys, ",") != "A,B" {
		t.Errorf("order = %v", keys)
	}
}

func entryKeys(entries []types.Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
