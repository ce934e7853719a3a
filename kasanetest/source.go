package kasanetest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/yacchi/kasane/source"
)

// SourceFactory creates a Source initialized with the given test data.
// The factory is called for each test case to ensure test isolation.
type SourceFactory func(data []byte) source.Source

// NotExistFactory creates a Source that points to a non-existent resource.
type NotExistFactory func() source.Source

// SourceTesterOption configures SourceTester behavior.
type SourceTesterOption func(*SourceTester)

// WithNotExistFactory sets a factory that creates a Source for a non-existent resource.
// Without it the ErrNotExist test is skipped.
func WithNotExistFactory(factory NotExistFactory) SourceTesterOption {
	return func(st *SourceTester) {
		st.notExistFactory = factory
	}
}

// SourceTester verifies Source implementations.
//
// Example:
//
//	func TestMySource_Compliance(t *testing.T) {
//	    kasanetest.NewSourceTester(t, func(data []byte) source.Source {
//	        return mysource.New(data)
//	    }).TestAll()
//	}
type SourceTester struct {
	t               *testing.T
	factory         SourceFactory
	notExistFactory NotExistFactory
}

// NewSourceTester creates a SourceTester for the given SourceFactory.
func NewSourceTester(t *testing.T, factory SourceFactory, opts ...SourceTesterOption) *SourceTester {
	st := &SourceTester{
		t:       t,
		factory: factory,
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// TestAll runs all standard compliance tests for Source implementations.
func (st *SourceTester) TestAll() {
	st.t.Run("Type", st.testType)
	st.t.Run("Load", st.testLoad)
	st.t.Run("LoadReturnsCopy", st.testLoadReturnsCopy)
	st.t.Run("CanceledContext", st.testCanceledContext)
	st.t.Run("NotExist", st.testNotExist)
}

// testType verifies Type() returns a non-empty Type.
func (st *SourceTester) testType(t *testing.T) {
	s := st.factory([]byte(`{"key": "value"}`))
	require(t, s.Type() != "", "Type() returned empty string")
}

// testLoad verifies Load() returns the data byte for byte.
func (st *SourceTester) testLoad(t *testing.T) {
	want := []byte("{\"key\": \"value\" /* kept */}\n")
	s := st.factory(want)

	data, err := s.Load(context.Background())
	requireNoError(t, err, "Load() error = %v", err)
	check(t, bytes.Equal(data, want), "Load() = %q, want %q", data, want)
}

// testLoadReturnsCopy verifies that mutating loaded data does not affect later loads.
func (st *SourceTester) testLoadReturnsCopy(t *testing.T) {
	s := st.factory([]byte(`{"key": "value"}`))

	first, err := s.Load(context.Background())
	requireNoError(t, err, "Load() error = %v", err)
	require(t, len(first) > 0, "Load() returned empty data")
	first[0] = 'X'

	second, err := s.Load(context.Background())
	requireNoError(t, err, "second Load() error = %v", err)
	check(t, string(second) == `{"key": "value"}`, "second Load() = %q, data was aliased", second)
}

// testCanceledContext verifies Load honors a canceled context.
func (st *SourceTester) testCanceledContext(t *testing.T) {
	s := st.factory([]byte(`{}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	check(t, errors.Is(err, context.Canceled), "Load() with canceled context error = %v, want context.Canceled", err)
	check(t, !errors.Is(err, source.ErrNotExist), "canceled Load() must not report ErrNotExist")
}

// testNotExist verifies that a missing resource is reported with source.ErrNotExist.
func (st *SourceTester) testNotExist(t *testing.T) {
	if st.notExistFactory == nil {
		t.Skip("NotExistFactory not provided")
	}

	_, err := st.notExistFactory().Load(context.Background())
	require(t, err != nil, "Load() on non-existent resource should return error")
	check(t, errors.Is(err, source.ErrNotExist), "Load() error should wrap source.ErrNotExist, got: %v", err)
}
