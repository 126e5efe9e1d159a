package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper key stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attr    slog.Attr
	}{
		{"Component", KeyComponent, Component("set")},
		{"Operation", KeyOperation, Operation("put")},
		{"Capacity", KeyCapacity, Capacity(6)},
		{"OldCapacity", KeyOldCapacity, OldCapacity(3)},
		{"Load", KeyLoad, Load(4)},
		{"Rehashed", KeyRehashed, Rehashed(3)},
		{"Probes", KeyProbes, Probes(2)},
		{"Relocated", KeyRelocated, Relocated(1)},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
	}
}

func TestIntHelpersCarryValue(t *testing.T) {
	a := Capacity(12)
	if a.Value.Kind() != slog.KindInt64 || a.Value.Int64() != 12 {
		t.Fatalf("expected int 12, got %v", a.Value)
	}
}

func TestErrorHelper(t *testing.T) {
	if v := Error(nil).Value.String(); v != "" {
		t.Fatalf("expected empty value for nil error, got %q", v)
	}
	if v := Error(errors.New("boom")).Value.String(); v != "boom" {
		t.Fatalf("expected boom, got %q", v)
	}
}
