package models

import "testing"

func TestStringArrayValueNeverNull(t *testing.T) {
	var empty StringArray
	v, err := empty.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil slice should persist as empty array, got %v", v)
	}

	v, err = StringArray{"go", "sql"}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != `["go","sql"]` {
		t.Fatalf("unexpected encoding: %v", v)
	}
}

func TestStringArrayScanToleratesLegacyRows(t *testing.T) {
	cases := []struct {
		name string
		src  interface{}
		want []string
	}{
		{"json array", []byte(`["a","b"]`), []string{"a", "b"}},
		{"sql null", nil, []string{}},
		{"json null", "null", []string{}},
		{"blank", "   ", []string{}},
		{"json string", `"solo"`, []string{"solo"}},
		{"raw text", "never encoded", []string{"never encoded"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sa StringArray
			if err := sa.Scan(tc.src); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if len(sa) != len(tc.want) {
				t.Fatalf("got %v, want %v", sa, tc.want)
			}
			for i := range sa {
				if sa[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", sa, tc.want)
				}
			}
		})
	}
}

func TestStringArrayScanRejectsUnknownTypes(t *testing.T) {
	var sa StringArray
	if err := sa.Scan(42); err == nil {
		t.Fatal("numeric source should not scan")
	}
}
