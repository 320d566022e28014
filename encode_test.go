package habit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mtscully16/habit-tracker/date"
)

func TestDecodeDocument_Garbage(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"truncated", `{"version": 2, "settings": {"posi`},
		{"not json", "!!!"},
		{"empty", ""},
		{"wrong shape", `[1, 2, 3]`},
		{"null", `null`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := DecodeDocument([]byte(tc.data))
			checkInvariants(t, doc, date.Today())
			if got := doc.Version; got != Version {
				t.Errorf("Version = %d, want %d", got, Version)
			}
			if got := len(doc.Settings.Positive); got != len(DefaultPositive) {
				t.Errorf("len(Positive) = %d, want the default list", got)
			}
		})
	}
}

func TestDecodeDocument_RoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.AddHabit(Positive, "Floss")
	doc.SetCheck(doc.SelectedDate(), Positive, 0, true)
	doc.SetCheck(doc.SelectedDate(), Negative, 2, true)
	doc.SetMode(date.Year)
	doc.SetMonthYear(time.February, 2030)

	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	if !DecodeDocument(data).Equal(doc) {
		t.Error("decoded document differs from the encoded one")
	}
}

// TestEncodeDocument_Canonical checks that equal documents serialize to
// identical bytes regardless of day insertion order.
func TestEncodeDocument_Canonical(t *testing.T) {
	days := []date.Date{monday, wednesday, sunday}

	a := newDocument(wednesday)
	for _, on := range days {
		a.EnsureDay(on)
	}
	b := newDocument(wednesday)
	for i := len(days) - 1; i >= 0; i-- {
		b.EnsureDay(days[i])
	}

	pa, err := EncodeDocument(a)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := EncodeDocument(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pa, pb) {
		t.Errorf("encodings differ:\n%s\n%s", pa, pb)
	}
}

func TestEncodeDocumentIndent(t *testing.T) {
	doc := newDocument(wednesday)
	data, err := EncodeDocumentIndent(doc)
	if err != nil {
		t.Fatalf("EncodeDocumentIndent() error = %v", err)
	}
	s := string(data)
	if !strings.HasSuffix(s, "\n") {
		t.Error("indented encoding should end with a newline")
	}
	if !strings.Contains(s, "\n  \"version\"") {
		t.Error("indented encoding should use two-space indentation")
	}
	if !DecodeDocument(data).Equal(DecodeDocument(mustEncode(t, doc))) {
		t.Error("indented and compact encodings decode differently")
	}
}

func mustEncode(t *testing.T, doc *Document) []byte {
	t.Helper()
	data, err := EncodeDocument(doc)
	if err != nil {
		t.Fatal(err)
	}
	return data
}
