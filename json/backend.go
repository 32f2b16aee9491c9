package json

// Backend is the consumer contract the parser drives: one call per
// recognized event, in source order, with composite open/close events
// bracketing their contents. Any non-nil error cancels the parse: the
// parser stops invoking the backend and discards further input until
// eof, at which point Result is still called to produce the parser's
// return value.
//
// No assumption should be made about the lifetime of the string views
// passed to StringValue and Key beyond the call itself; copy them if
// they must outlive it.
type Backend interface {
	StringValue(s string) error
	IntegerValue(i int64) error
	FloatValue(f float64) error
	BooleanValue(b bool) error
	NullValue() error

	BeginArray() error
	EndArray() error

	BeginObject() error
	Key(s string) error
	EndObject() error

	// Result is called once, from eof, regardless of whether the parse
	// succeeded; its return value becomes the parser's return value.
	Result() (any, error)
}

// DiscardBackend implements Backend by doing nothing: every event returns
// nil and Result returns (nil, nil). Useful for validation-only parses
// and benchmarks that want to measure the matcher set without DOM
// construction.
type DiscardBackend struct{}

func (DiscardBackend) StringValue(string) error  { return nil }
func (DiscardBackend) IntegerValue(int64) error  { return nil }
func (DiscardBackend) FloatValue(float64) error  { return nil }
func (DiscardBackend) BooleanValue(bool) error   { return nil }
func (DiscardBackend) NullValue() error          { return nil }
func (DiscardBackend) BeginArray() error         { return nil }
func (DiscardBackend) EndArray() error           { return nil }
func (DiscardBackend) BeginObject() error        { return nil }
func (DiscardBackend) Key(string) error          { return nil }
func (DiscardBackend) EndObject() error          { return nil }
func (DiscardBackend) Result() (any, error)      { return nil, nil }

// TreeBackend rebuilds the package's own Value tree, exactly what the
// teacher's original hardwired parser produced. ParseString and friends
// use it as their default backend so that existing callers of the
// Value/AsXxx API see no behavior change.
type TreeBackend struct {
	stack      []*Value
	pendingKey *string
}

// NewTreeBackend returns a Backend that builds a *Value document tree.
func NewTreeBackend() *TreeBackend {
	return &TreeBackend{}
}

func (b *TreeBackend) emit(v *Value) error {
	if len(b.stack) == 0 {
		b.stack = append(b.stack, v)
		return nil
	}
	parent := b.stack[len(b.stack)-1]
	switch parent.jsonType {
	case Array:
		parent.arrayValue = append(parent.arrayValue, v)
	case Object:
		parent.objectValue = append(parent.objectValue, pair{key: *b.pendingKey, val: v})
		b.pendingKey = nil
	}
	return nil
}

func (b *TreeBackend) StringValue(s string) error { return b.emit(&Value{jsonType: String, stringValue: s}) }
func (b *TreeBackend) IntegerValue(i int64) error {
	return b.emit(&Value{jsonType: Integer, integerValue: i})
}
func (b *TreeBackend) FloatValue(f float64) error {
	return b.emit(&Value{jsonType: Number, numberValue: f})
}
func (b *TreeBackend) BooleanValue(v bool) error { return b.emit(&Value{jsonType: Boolean, booleanValue: v}) }
func (b *TreeBackend) NullValue() error          { return b.emit(&Value{jsonType: Null}) }

func (b *TreeBackend) BeginArray() error {
	b.stack = append(b.stack, &Value{jsonType: Array, arrayValue: []*Value{}})
	return nil
}

func (b *TreeBackend) EndArray() error {
	v := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.emit(v)
}

func (b *TreeBackend) BeginObject() error {
	b.stack = append(b.stack, &Value{jsonType: Object, objectValue: []pair{}})
	return nil
}

func (b *TreeBackend) Key(s string) error {
	k := s
	b.pendingKey = &k
	return nil
}

func (b *TreeBackend) EndObject() error {
	v := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.emit(v)
}

// Result returns the single value left on the stack after a successful
// top-level parse, or an empty Value if nothing was ever emitted. After a
// parse that failed inside an array or object, it returns the partly built
// outermost container.
func (b *TreeBackend) Result() (any, error) {
	if len(b.stack) == 0 {
		return &Value{}, nil
	}
	return b.stack[0], nil
}
