package interpreter

import (
	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
	"github.com/cinskabotanicka/IPP2/pkg/stack"
)

// Frame is an insertion-ordered set of variables with unique names.
type Frame struct {
	names []string             // declaration order
	vars  map[string]*Variable // name -> variable
}

func newFrame() *Frame {
	return &Frame{vars: make(map[string]*Variable)}
}

// Lookup returns the variable declared under name
func (f *Frame) Lookup(name string) (*Variable, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// Variables returns the variables in declaration order
func (f *Frame) Variables() []*Variable {
	out := make([]*Variable, 0, len(f.names))
	for _, n := range f.names {
		out = append(out, f.vars[n])
	}
	return out
}

// Len returns the number of declared variables
func (f *Frame) Len() int {
	return len(f.names)
}

func (f *Frame) declare(name string) error {
	if _, ok := f.vars[name]; ok {
		return fault.Errorf(fault.Structural, "variable %s is already declared", name)
	}
	f.vars[name] = &Variable{Name: name}
	f.names = append(f.names, name)
	return nil
}

// FrameStore owns the global frame, the local-frame stack and the temporary frame.
// The global frame exists for the whole run and never takes part in push/pop.
type FrameStore struct {
	global *Frame
	locals *stack.Stack[*Frame]
	temp   *Frame // nil when no temporary frame exists
}

func NewFrameStore() *FrameStore {
	return &FrameStore{
		global: newFrame(),
		locals: stack.NewStack[*Frame](),
	}
}

// CreateTemp discards any temporary frame and creates an empty one
func (fs *FrameStore) CreateTemp() {
	fs.temp = newFrame()
}

// PushTempAsLocal promotes the temporary frame to the top of the local-frame stack
func (fs *FrameStore) PushTempAsLocal() error {
	if fs.temp == nil {
		return fault.Errorf(fault.FrameAccess, "no temporary frame to push")
	}
	fs.locals.Push(fs.temp)
	fs.temp = nil
	return nil
}

// PopLocalAsTemp removes the top local frame and makes it the temporary frame
func (fs *FrameStore) PopLocalAsTemp() error {
	top, ok := fs.locals.Pop()
	if !ok {
		return fault.Errorf(fault.FrameAccess, "no local frame to pop")
	}
	fs.temp = top
	return nil
}

// frame returns the frame a qualifier currently addresses
func (fs *FrameStore) frame(q program.Qualifier) (*Frame, error) {
	switch q {
	case program.GF:
		return fs.global, nil
	case program.LF:
		if top, ok := fs.locals.Peek(); ok {
			return top, nil
		}
		return nil, fault.Errorf(fault.FrameAccess, "local frame does not exist")
	case program.TF:
		if fs.temp != nil {
			return fs.temp, nil
		}
		return nil, fault.Errorf(fault.FrameAccess, "temporary frame does not exist")
	}
	return nil, fault.Errorf(fault.FrameAccess, "unknown frame %s", q)
}

// Declare adds an uninitialized variable to the frame addressed by q
func (fs *FrameStore) Declare(q program.Qualifier, name string) error {
	f, err := fs.frame(q)
	if err != nil {
		return err
	}
	return f.declare(name)
}

// Lookup finds a declared variable, initialized or not
func (fs *FrameStore) Lookup(q program.Qualifier, name string) (*Variable, error) {
	f, err := fs.frame(q)
	if err != nil {
		return nil, err
	}
	v, ok := f.Lookup(name)
	if !ok {
		return nil, fault.Errorf(fault.VariableAccess, "variable %s@%s is not declared", q, name)
	}
	return v, nil
}

// Read returns the value of an initialized variable
func (fs *FrameStore) Read(q program.Qualifier, name string) (Value, error) {
	v, err := fs.Lookup(q, name)
	if err != nil {
		return Value{}, err
	}
	val, ok := v.Get()
	if !ok {
		return Value{}, fault.Errorf(fault.VariableAccess, "variable %s@%s is not initialized", q, name)
	}
	return val, nil
}

// Write stores a value into a declared variable
func (fs *FrameStore) Write(q program.Qualifier, name string, val Value) error {
	v, err := fs.Lookup(q, name)
	if err != nil {
		return err
	}
	v.Set(val)
	return nil
}

// Global returns the global frame
func (fs *FrameStore) Global() *Frame {
	return fs.global
}

// Local returns the top local frame, or nil if none
func (fs *FrameStore) Local() *Frame {
	top, _ := fs.locals.Peek()
	return top
}

// Temp returns the temporary frame, or nil if none
func (fs *FrameStore) Temp() *Frame {
	return fs.temp
}

// LocalDepth returns the number of frames on the local-frame stack
func (fs *FrameStore) LocalDepth() int {
	return fs.locals.Size()
}

// Active returns the number of frames currently in existence
func (fs *FrameStore) Active() int {
	n := 1 + fs.locals.Size()
	if fs.temp != nil {
		n++
	}
	return n
}
