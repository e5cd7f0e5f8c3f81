package tokentest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/nftoken"
)

// condCounter ensures that conditions generated within a single test run
// are unique.
var condCounter uint64

// NewCondition returns a new, unique condition. Its address can be used
// wherever an account is expected.
func NewCondition() nftoken.Condition {
	n := atomic.AddUint64(&condCounter, 1)
	bin := make([]byte, 8)
	binary.BigEndian.PutUint64(bin, n)
	return nftoken.NewCondition("test", "cond", bin)
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// nftoken.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) nftoken.Address {
	t.Helper()

	addr, err := nftoken.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
