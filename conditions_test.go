package nftoken

import (
	"encoding/json"
	"testing"
)

func TestNewCondition(t *testing.T) {
	cond := NewCondition("sigs", "ed25519", []byte{1, 2, 3})
	if err := cond.Validate(); err != nil {
		t.Fatalf("invalid condition: %+v", err)
	}

	ext, typ, data, err := cond.Parse()
	if err != nil {
		t.Fatalf("cannot parse: %+v", err)
	}
	if ext != "sigs" || typ != "ed25519" {
		t.Fatalf("unexpected parse result: %s/%s", ext, typ)
	}
	if len(data) != 3 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestConditionAddressStable(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte("foo")).Address()
	b := NewCondition("sigs", "ed25519", []byte("foo")).Address()
	c := NewCondition("sigs", "ed25519", []byte("bar")).Address()

	if err := a.Validate(); err != nil {
		t.Fatalf("invalid address: %+v", err)
	}
	if !a.Equals(b) {
		t.Fatal("same condition must produce the same address")
	}
	if a.Equals(c) {
		t.Fatal("different conditions must produce different addresses")
	}
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr    Address
		wantErr bool
	}{
		"proper length": {addr: make(Address, AddressLength)},
		"nil":           {addr: nil, wantErr: true},
		"too short":     {addr: make(Address, 5), wantErr: true},
		"too long":      {addr: make(Address, 25), wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.addr.Validate()
			if tc.wantErr != (err != nil) {
				t.Fatalf("unexpected result: %+v", err)
			}
		})
	}
}

func TestParseAddress(t *testing.T) {
	cond := NewCondition("test", "cond", []byte("whatever"))
	addr := cond.Address()

	cases := map[string]string{
		"default hex":   addr.String(),
		"hex prefix":    "hex:" + addr.String(),
		"cond prefix":   "cond:" + cond.String(),
		"bech32 prefix": "bech32:" + addr.Bech32String("tiov"),
	}
	for testName, enc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseAddress(enc)
			if err != nil {
				t.Fatalf("cannot parse %q: %+v", enc, err)
			}
			if !got.Equals(addr) {
				t.Fatalf("want %s, got %s", addr, got)
			}
		})
	}

	if _, err := ParseAddress("not an address"); err == nil {
		t.Fatal("garbage must not parse")
	}
}

func TestAddressJSONRoundtrip(t *testing.T) {
	addr := NewCondition("test", "cond", []byte("json")).Address()

	raw, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("cannot marshal: %+v", err)
	}

	var got Address
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %+v", err)
	}
	if !got.Equals(addr) {
		t.Fatalf("want %s, got %s", addr, got)
	}
}

func TestConditionJSONRoundtrip(t *testing.T) {
	cond := NewCondition("test", "cond", []byte{0xff, 0x00})

	raw, err := json.Marshal(cond)
	if err != nil {
		t.Fatalf("cannot marshal: %+v", err)
	}

	var got Condition
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("cannot unmarshal: %+v", err)
	}
	if !got.Equals(cond) {
		t.Fatalf("want %s, got %s", cond, got)
	}
}
