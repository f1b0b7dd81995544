package interpreter

// Variable is a named slot in one frame. It is uninitialized until first written;
// an uninitialized variable holds no value at all, not nil.
type Variable struct {
	Name  string
	value Value
	init  bool
}

// Get returns the current value, ok is false while the variable is uninitialized
func (v *Variable) Get() (Value, bool) {
	return v.value, v.init
}

// Set stores a value together with its kind
func (v *Variable) Set(val Value) {
	v.value = val
	v.init = true
}

func (v *Variable) Initialized() bool {
	return v.init
}

// Describe renders the variable for debug dumps
func (v *Variable) Describe() string {
	if !v.init {
		return v.Name + " = <uninitialized>"
	}
	return v.Name + " = " + v.value.Describe()
}
