package meta

import (
	"encoding/json"
	"strings"
	"testing"
)

func encodeOne(t *testing.T, record string) string {
	t.Helper()
	out, err := EncodeIndex([]json.RawMessage{json.RawMessage(record)})
	if err != nil {
		t.Fatalf("EncodeIndex failed: %v", err)
	}
	return string(out)
}

func TestEncodeIndexEmpty(t *testing.T) {
	out, err := EncodeIndex(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[]\n" {
		t.Errorf("empty index = %q; want %q", out, "[]\n")
	}
}

func TestEncodeCompactArrays(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   string
	}{
		{
			name:   "five short strings stay on one line",
			record: `{"id":"a","tags":["one","two","three","four","five"]}`,
			want:   `"tags": ["one", "two", "three", "four", "five"]`,
		},
		{
			name:   "six strings expand",
			record: `{"id":"a","tags":["1","2","3","4","5","6"]}`,
			want:   "\"tags\": [\n      \"1\",\n      \"2\",\n      \"3\",\n      \"4\",\n      \"5\",\n      \"6\"\n    ]",
		},
		{
			name:   "string of 49 characters stays compact",
			record: `{"id":"a","tags":["` + strings.Repeat("x", 49) + `"]}`,
			want:   `"tags": ["` + strings.Repeat("x", 49) + `"]`,
		},
		{
			name:   "string of 50 characters expands",
			record: `{"id":"a","tags":["` + strings.Repeat("x", 50) + `"]}`,
			want:   "\"tags\": [\n      \"" + strings.Repeat("x", 50) + "\"\n    ]",
		},
		{
			name:   "non-string element expands",
			record: `{"id":"a","nums":[1,2]}`,
			want:   "\"nums\": [\n      1,\n      2\n    ]",
		},
		{
			name:   "empty array stays inline",
			record: `{"id":"a","tags":[]}`,
			want:   `"tags": []`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeOne(t, tt.record)
			if !strings.Contains(got, tt.want) {
				t.Errorf("output does not contain %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestEncodePreservesKeyOrder(t *testing.T) {
	got := encodeOne(t, `{"zeta":"1","alpha":"2","mid":"3"}`)
	want := `[
  {
    "zeta": "1",
    "alpha": "2",
    "mid": "3"
  }
]
`
	if got != want {
		t.Errorf("key order not preserved:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNestedObjects(t *testing.T) {
	got := encodeOne(t, `{"id":"a","links":{"github":"https://example.com","docs":{}}}`)
	want := `[
  {
    "id": "a",
    "links": {
      "github": "https://example.com",
      "docs": {}
    }
  }
]
`
	if got != want {
		t.Errorf("nested encoding mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeScalarLiterals(t *testing.T) {
	got := encodeOne(t, `{"int":8080,"float":1.50,"exp":1e3,"yes":true,"no":false,"nil":null}`)
	for _, want := range []string{`"int": 8080`, `"float": 1.50`, `"exp": 1e3`, `"yes": true`, `"no": false`, `"nil": null`} {
		if !strings.Contains(got, want) {
			t.Errorf("output lost literal %q:\n%s", want, got)
		}
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	got := encodeOne(t, `{"url":"https://example.com/?a=1&b=2"}`)
	if !strings.Contains(got, `"https://example.com/?a=1&b=2"`) {
		t.Errorf("ampersand was escaped:\n%s", got)
	}
}

func TestEncodeRoundTripStable(t *testing.T) {
	first := encodeOne(t, `{"id":"a","name":"App","tags":["web","media"],"deps":["one","two","three","four","five","six"]}`)

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(first), &records); err != nil {
		t.Fatalf("re-parsing own output: %v", err)
	}
	out, err := EncodeIndex(records)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != first {
		t.Errorf("re-encoding own output changed it:\nfirst:\n%s\nsecond:\n%s", first, out)
	}
}
