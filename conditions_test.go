package quickex

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestConditionParse(t *testing.T) {
	cond := NewCondition("escrow", "seal", []byte{1, 2, 3, 4})

	ext, typ, data, err := cond.Parse()
	if err != nil {
		t.Fatalf("cannot parse condition: %+v", err)
	}
	if ext != "escrow" || typ != "seal" {
		t.Fatalf("unexpected sections: %s %s", ext, typ)
	}
	if !bytes.Equal(data, []byte{1, 2, 3, 4}) {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestConditionValidate(t *testing.T) {
	cases := map[string]struct {
		cond    Condition
		wantErr bool
	}{
		"valid condition": {
			cond: NewCondition("sigs", "ed25519", []byte("data")),
		},
		"empty condition": {
			cond:    Condition{},
			wantErr: true,
		},
		"missing data section": {
			cond:    Condition("sigs/ed25519/"),
			wantErr: true,
		},
		"not enough sections": {
			cond:    Condition("sigs/data"),
			wantErr: true,
		},
		"data section with a newline": {
			cond: NewCondition("sigs", "ed25519", []byte("new\nline")),
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.cond.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("unexpected validation result: %+v", err)
			}
		})
	}
}

func TestConditionAddress(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte("first"))
	other := NewCondition("sigs", "ed25519", []byte("second"))

	addr := cond.Address()
	if err := addr.Validate(); err != nil {
		t.Fatalf("invalid address: %+v", err)
	}
	if addr.Equals(other.Address()) {
		t.Fatal("different conditions must produce different addresses")
	}
	// Address derivation must be deterministic.
	if !addr.Equals(cond.Address()) {
		t.Fatal("address derivation is not deterministic")
	}
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr bool
	}{
		"valid address": {
			addr: NewAddress([]byte("some data")),
		},
		"nil address": {
			addr:    nil,
			wantErr: true,
		},
		"too short": {
			addr:    Address{1, 2, 3},
			wantErr: true,
		},
		"too long": {
			addr:    Address(bytes.Repeat([]byte{1}, 32)),
			wantErr: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.addr.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("unexpected validation result: %+v", err)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	addr := NewAddress([]byte("json round trip"))

	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("cannot marshal: %+v", err)
	}
	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %+v", err)
	}
	if !addr.Equals(got) {
		t.Fatalf("want %s, got %s", addr, got)
	}
}

func TestAddressUnmarshalJSONCondFormat(t *testing.T) {
	cond := NewCondition("escrow", "seal", []byte{0xbe, 0xef})

	var got Address
	if err := json.Unmarshal([]byte(`"cond:escrow/seal/BEEF"`), &got); err != nil {
		t.Fatalf("cannot unmarshal: %+v", err)
	}
	if !got.Equals(cond.Address()) {
		t.Fatalf("want %s, got %s", cond.Address(), got)
	}
}
