package resxtext

import (
	"testing"
)

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func TestRemoveEntriesOrdinalAndWhitespace(t *testing.T) {
	doc := "<root>\n" +
		"  <data name=\"Key1\" xml:space=\"preserve\"><value>Value1</value></data>\n" +
		"  <data name=\"Key2\" xml:space=\"preserve\"><value>Value2</value></data>\n" +
		"</root>"
	out, ordinals, err := RemoveEntries([]byte(doc), keySet("Key2"))
	if err != nil {
		t.Fatalf("RemoveEntries: %v", err)
	}
	if ordinals["Key2"] != 1 {
		t.Errorf("ordinal = %d, want 1", ordinals["Key2"])
	}
	want := "<root>\n" +
		"  <data name=\"Key1\" xml:space=\"preserve\"><value>Value1</value></data>\n" +
		"</root>"
	if string(out) != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRemoveEntriesFirst(t *testing.T) {
	doc := "<root>\n" +
		"  <data name=\"A\" xml:space=\"preserve\"><value>1</value></data>\n" +
		"  <data name=\"B\" xml:space=\"preserve\"><value>2</value></data>\n" +
		"</root>\n"
	out, ordinals, err := RemoveEntries([]byte(doc), keySet("A"))
	if err != nil {
		t.Fatalf("RemoveEntries: %v", err)
	}
	if ordinals["A"] != 0 {
		t.Errorf("ordinal = %d, want 0", ordinals["A"])
	}
	want := "<root>\n" +
		"  <data name=\"B\" xml:space=\"preserve\"><value>2</value></data>\n" +
		"</root>\n"
	if string(out) != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRemoveEntriesBatch(t *testing.T) {
	doc := "<root>\n" +
		"  <data name=\"A\" xml:space=\"preserve\"><value>1</value></data>\n" +
		"  <data name=\"B\" xml:space=\"preserve\"><value>2</value></data>\n" +
		"  <data name=\"C\" xml:space=\"preserve\"><value>3</value></data>\n" +
		"</root>\n"
	out, ordinals, err := RemoveEntries([]byte(doc), keySet("A", "C"))
	if err != nil {
		t.Fatalf("RemoveEntries: %v", err)
	}
	if ordinals["A"] != 0 || ordinals["C"] != 2 {
		t.Errorf("ordinals = %v, want A:0 C:2", ordinals)
	}
	m, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m) != 1 || m["B"] != "2" {
		t.Errorf("surviving mapping = %v", m)
	}
}

func TestRemoveEntriesMissingKeySilent(t *testing.T) {
	doc := "<root>\n  <data name=\"A\" xml:space=\"preserve\"><value>1</value></data>\n</root>\n"
	out, ordinals, err := RemoveEntries([]byte(doc), keySet("Nope"))
	if err != nil {
		t.Fatalf("RemoveEntries: %v", err)
	}
	if len(ordinals) != 0 {
		t.Errorf("ordinals = %v, want empty", ordinals)
	}
	if string(out) != doc {
		t.Error("removing an absent key must leave the document unchanged")
	}
}

func TestRemoveEntriesKeepsComments(t *testing.T) {
	doc := "<root>\n" +
		"  <!-- header note -->\n" +
		"  <data name=\"A\" xml:space=\"preserve\"><value>1</value></data>\n" +
		"  <data name=\"B\" xml:space=\"preserve\"><value>2</value></data>\n" +
		"</root>\n"
	out, _, err := RemoveEntries([]byte(doc), keySet("A"))
	if err != nil {
		t.Fatalf("RemoveEntries: %v", err)
	}
	want := "<root>\n" +
		"  <!-- header note -->\n" +
		"  <data name=\"B\" xml:space=\"preserve\"><value>2</value></data>\n" +
		"</root>\n"
	if string(out) != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRemoveEntriesUnterminated(t *testing.T) {
	doc := `<root><data name="A"><value>1</value>`
	if _, _, err := RemoveEntries([]byte(doc), keySet("A")); err == nil {
		t.Error("expected error for unterminated target element")
	}
}
