package interpreter

import (
	"unicode/utf8"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
	"github.com/cinskabotanicka/IPP2/pkg/program"
)

// runeAt indexes s by code point
func runeAt(s string, idx int64) (rune, error) {
	runes := []rune(s)
	if idx < 0 || idx >= int64(len(runes)) {
		return 0, fault.Errorf(fault.StringOperation, "index %d out of range [0, %d)", idx, len(runes))
	}
	return runes[idx], nil
}

// INT2CHAR ⟨var⟩ ⟨int⟩
func execInt2Char(i *Interpreter, in program.Instruction) (int, error) {
	code, err := i.resolve(in.Args[1], acceptInt)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}

	if code.I64 < 0 || code.I64 > utf8.MaxRune || !utf8.ValidRune(rune(code.I64)) {
		return 0, fault.Errorf(fault.OperandValue, "%d is not a valid code point", code.I64)
	}
	dst.Set(newString(string(rune(code.I64))))
	return i.next(), nil
}

// STRI2INT ⟨var⟩ ⟨string⟩ ⟨int⟩
func execStri2Int(i *Interpreter, in program.Instruction) (int, error) {
	s, err := i.resolve(in.Args[1], acceptString)
	if err != nil {
		return 0, err
	}
	idx, err := i.resolve(in.Args[2], acceptInt)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}

	r, err := runeAt(s.Str, idx.I64)
	if err != nil {
		return 0, err
	}
	dst.Set(newInt(int64(r)))
	return i.next(), nil
}

// CONCAT ⟨var⟩ ⟨string⟩ ⟨string⟩
func execConcat(i *Interpreter, in program.Instruction) (int, error) {
	dst, a, b, err := i.binary(in, acceptString)
	if err != nil {
		return 0, err
	}
	dst.Set(newString(a.Str + b.Str))
	return i.next(), nil
}

// STRLEN ⟨var⟩ ⟨string⟩
func execStrLen(i *Interpreter, in program.Instruction) (int, error) {
	s, err := i.resolve(in.Args[1], acceptString)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}
	dst.Set(newInt(int64(utf8.RuneCountInString(s.Str))))
	return i.next(), nil
}

// GETCHAR ⟨var⟩ ⟨string⟩ ⟨int⟩
func execGetChar(i *Interpreter, in program.Instruction) (int, error) {
	s, err := i.resolve(in.Args[1], acceptString)
	if err != nil {
		return 0, err
	}
	idx, err := i.resolve(in.Args[2], acceptInt)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}

	r, err := runeAt(s.Str, idx.I64)
	if err != nil {
		return 0, err
	}
	dst.Set(newString(string(r)))
	return i.next(), nil
}

// SETCHAR ⟨var⟩ ⟨int⟩ ⟨string⟩ replaces one character of the string held by ⟨var⟩
func execSetChar(i *Interpreter, in program.Instruction) (int, error) {
	idx, err := i.resolve(in.Args[1], acceptInt)
	if err != nil {
		return 0, err
	}
	repl, err := i.resolve(in.Args[2], acceptString)
	if err != nil {
		return 0, err
	}
	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}

	cur, ok := dst.Get()
	if !ok || cur.Kind != KindString {
		return 0, fault.Errorf(fault.StringOperation, "SETCHAR destination %s does not hold a string", in.Args[0])
	}

	runes := []rune(cur.Str)
	if idx.I64 < 0 || idx.I64 >= int64(len(runes)) {
		return 0, fault.Errorf(fault.StringOperation, "index %d out of range [0, %d)", idx.I64, len(runes))
	}
	first, size := utf8.DecodeRuneInString(repl.Str)
	if size == 0 {
		return 0, fault.Errorf(fault.StringOperation, "replacement string is empty")
	}

	runes[idx.I64] = first
	dst.Set(newString(string(runes)))
	return i.next(), nil
}

// TYPE ⟨var⟩ ⟨symb⟩, an uninitialized variable yields the empty string
func execType(i *Interpreter, in program.Instruction) (int, error) {
	sym := in.Args[1]

	var name string
	if sym.IsVar() {
		v, err := i.frames.Lookup(sym.Frame, sym.Name)
		if err != nil {
			return 0, err
		}
		if val, ok := v.Get(); ok {
			name = val.Kind.String()
		}
	} else {
		val, err := i.resolve(sym, acceptAny)
		if err != nil {
			return 0, err
		}
		name = val.Kind.String()
	}

	dst, err := i.target(in.Args[0])
	if err != nil {
		return 0, err
	}
	dst.Set(newString(name))
	return i.next(), nil
}
