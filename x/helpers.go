package x

import (
	"github.com/iov-one/nftoken"
)

//--------------- expose helpers -----

// TestHelpers returns helper objects for tests,
// encapsulated in one object to be easily imported in other packages
type TestHelpers struct{}

// CountingDecorator passes tx along, and counts how many times it was called.
// Adds one on input down, one on output up,
// to differentiate panic from error
func (TestHelpers) CountingDecorator() CountingDecorator {
	return &countingDecorator{}
}

// CountingHandler returns success and counts times called
func (TestHelpers) CountingHandler() CountingHandler {
	return &countingHandler{}
}

// ErrorDecorator always returns the given error when called
func (TestHelpers) ErrorDecorator(err error) nftoken.Decorator {
	return errorDecorator{err}
}

// ErrorHandler always returns the given error when called
func (TestHelpers) ErrorHandler(err error) nftoken.Handler {
	return errorHandler{err}
}

// PanicAtHeightDecorator will panic if ctx.height >= h
func (TestHelpers) PanicAtHeightDecorator(h int64) nftoken.Decorator {
	return panicAtHeightDecorator{h}
}

// PanicHandler always panics with the given error when called
func (TestHelpers) PanicHandler(err error) nftoken.Handler {
	return panicHandler{err}
}

// WriteHandler will write the given key/value pair to the KVStore,
// and return the error (use nil for success)
func (TestHelpers) WriteHandler(key, value []byte, err error) nftoken.Handler {
	return writeHandler{
		key:   key,
		value: value,
		err:   err,
	}
}

// WriteDecorator will write the given key/value pair to the KVStore,
// either before or after calling down the stack.
// Returns (res, err) from child handler untouched
func (TestHelpers) WriteDecorator(key, value []byte, after bool) nftoken.Decorator {
	return writeDecorator{
		key:   key,
		value: value,
		after: after,
	}
}

// MockMsg returns a Msg object holding these bytes
func (TestHelpers) MockMsg(bz []byte) nftoken.Msg {
	return &mockMsg{bz}
}

// MockTx returns a minimal Tx object holding this Msg
func (TestHelpers) MockTx(msg nftoken.Msg) nftoken.Tx {
	return &mockTx{msg}
}

// Authenticate returns an Authenticator that gives permissions
// to the given conditions
func (TestHelpers) Authenticate(perms ...nftoken.Condition) Authenticator {
	return mockAuth{perms}
}

// CountingDecorator keeps track of number of times called.
// 2x per call, 1x per call with panic inside
type CountingDecorator interface {
	GetCount() int
	nftoken.Decorator
}

// CountingHandler keeps track of number of times called.
// 1x per call
type CountingHandler interface {
	GetCount() int
	nftoken.Handler
}

//--------------- tx and msg -----------------------

//------ msg
type mockMsg struct {
	data []byte
}

var _ nftoken.Msg = (*mockMsg)(nil)

func (m mockMsg) Marshal() ([]byte, error) {
	return m.data, nil
}

func (m *mockMsg) Unmarshal(bz []byte) error {
	m.data = bz
	return nil
}

func (m mockMsg) Path() string {
	return "mock"
}

func (m mockMsg) Validate() error {
	return nil
}

//------ tx
type mockTx struct {
	msg nftoken.Msg
}

var _ nftoken.Tx = (*mockTx)(nil)

func (m mockTx) GetMsg() (nftoken.Msg, error) {
	return m.msg, nil
}

func (m mockTx) Marshal() ([]byte, error) {
	return m.msg.Marshal()
}

func (m *mockTx) Unmarshal(bz []byte) error {
	return m.msg.Unmarshal(bz)
}

//------ auth

type mockAuth struct {
	signers []nftoken.Condition
}

var _ Authenticator = mockAuth{}

func (a mockAuth) GetConditions(nftoken.Context) []nftoken.Condition {
	return a.signers
}

func (a mockAuth) HasAddress(ctx nftoken.Context, addr nftoken.Address) bool {
	for _, s := range a.signers {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

//-------------- counting -------------------------

type countingDecorator struct {
	called int
}

var _ nftoken.Decorator = (*countingDecorator)(nil)

func (c *countingDecorator) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (nftoken.CheckResult, error) {

	c.called++
	res, err := next.Check(ctx, store, tx)
	c.called++
	return res, err
}

func (c *countingDecorator) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (nftoken.DeliverResult, error) {

	c.called++
	res, err := next.Deliver(ctx, store, tx)
	c.called++
	return res, err
}

func (c *countingDecorator) GetCount() int {
	return c.called
}

type countingHandler struct {
	called int
}

var _ nftoken.Handler = (*countingHandler)(nil)

func (c *countingHandler) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	c.called++
	return nftoken.CheckResult{}, nil
}

func (c *countingHandler) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	c.called++
	return nftoken.DeliverResult{}, nil
}

func (c *countingHandler) GetCount() int {
	return c.called
}

//-------------- errors -------------------------

type errorDecorator struct {
	err error
}

var _ nftoken.Decorator = errorDecorator{}

func (e errorDecorator) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (nftoken.CheckResult, error) {

	return nftoken.CheckResult{}, e.err
}

func (e errorDecorator) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (nftoken.DeliverResult, error) {

	return nftoken.DeliverResult{}, e.err
}

type errorHandler struct {
	err error
}

var _ nftoken.Handler = errorHandler{}

func (e errorHandler) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	return nftoken.CheckResult{}, e.err
}

func (e errorHandler) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	return nftoken.DeliverResult{}, e.err
}

type panicAtHeightDecorator struct {
	height int64
}

var _ nftoken.Decorator = panicAtHeightDecorator{}

func (p panicAtHeightDecorator) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (nftoken.CheckResult, error) {

	if val, _ := nftoken.GetHeight(ctx); val >= p.height {
		panic("too high")
	}
	return next.Check(ctx, store, tx)
}

func (p panicAtHeightDecorator) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (nftoken.DeliverResult, error) {

	if val, _ := nftoken.GetHeight(ctx); val >= p.height {
		panic("too high")
	}
	return next.Deliver(ctx, store, tx)
}

type panicHandler struct {
	err error
}

var _ nftoken.Handler = panicHandler{}

func (p panicHandler) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	panic(p.err)
}

func (p panicHandler) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	panic(p.err)
}

//-------------- writers --------------------

type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ nftoken.Handler = writeHandler{}

func (h writeHandler) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.CheckResult, error) {

	store.Set(h.key, h.value)
	return nftoken.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx) (nftoken.DeliverResult, error) {

	store.Set(h.key, h.value)
	return nftoken.DeliverResult{}, h.err
}

type writeDecorator struct {
	key   []byte
	value []byte
	after bool
}

var _ nftoken.Decorator = writeDecorator{}

func (d writeDecorator) Check(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Checker) (nftoken.CheckResult, error) {

	if !d.after {
		store.Set(d.key, d.value)
	}
	res, err := next.Check(ctx, store, tx)
	if d.after {
		store.Set(d.key, d.value)
	}
	return res, err
}

func (d writeDecorator) Deliver(ctx nftoken.Context, store nftoken.KVStore,
	tx nftoken.Tx, next nftoken.Deliverer) (nftoken.DeliverResult, error) {

	if !d.after {
		store.Set(d.key, d.value)
	}
	res, err := next.Deliver(ctx, store, tx)
	if d.after {
		store.Set(d.key, d.value)
	}
	return res, err
}
