package program

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
)

// Language is the header every program must declare
const Language = "IPPcode24"

type xmlProgram struct {
	XMLName      xml.Name
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
	Other        []xmlArg         `xml:",any"`
}

type xmlInstruction struct {
	Order  string   `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Value   string `xml:",chardata"`
}

// LoadXML reads the XML program representation and linearises it by order number
func LoadXML(r io.Reader) (*Program, error) {
	var doc xmlProgram
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fault.Errorf(fault.SourceFormat, "empty program document")
		}
		return nil, fault.Errorf(fault.SourceFormat, "malformed XML: %v", err)
	}

	if doc.XMLName.Local != "program" {
		return nil, fault.Errorf(fault.Structural, "unexpected root element <%s>", doc.XMLName.Local)
	}
	if !strings.EqualFold(strings.TrimSpace(doc.Language), Language) {
		return nil, fault.Errorf(fault.Structural, "unsupported language %q", doc.Language)
	}
	if len(doc.Other) > 0 {
		return nil, fault.Errorf(fault.Structural, "unexpected element <%s> in program", doc.Other[0].XMLName.Local)
	}

	records := make([]Instruction, 0, len(doc.Instructions))
	for _, xi := range doc.Instructions {
		ins, err := xi.record()
		if err != nil {
			return nil, err
		}
		records = append(records, ins)
	}

	return NewProgram(records)
}

// record converts one <instruction> element
func (xi xmlInstruction) record() (Instruction, error) {
	order, err := strconv.Atoi(strings.TrimSpace(xi.Order))
	if err != nil {
		return Instruction{}, fault.Errorf(fault.Structural, "invalid order %q", xi.Order)
	}

	op, ok := ParseOpcode(strings.TrimSpace(xi.Opcode))
	if !ok {
		return Instruction{}, fault.Errorf(fault.Structural, "unknown opcode %q", xi.Opcode)
	}

	// arg1..arg3 may appear in any document order
	var slots [3]*xmlArg
	for i := range xi.Args {
		a := &xi.Args[i]
		pos := argPosition(a.XMLName.Local)
		if pos < 0 {
			return Instruction{}, fault.Errorf(fault.Structural, "unexpected element <%s> in instruction %d", a.XMLName.Local, order)
		}
		if slots[pos] != nil {
			return Instruction{}, fault.Errorf(fault.Structural, "duplicate <%s> in instruction %d", a.XMLName.Local, order)
		}
		slots[pos] = a
	}

	args := make([]Symbol, 0, len(xi.Args))
	for pos, a := range slots {
		if a == nil {
			continue
		}
		if pos != len(args) {
			return Instruction{}, fault.Errorf(fault.Structural, "missing <arg%d> in instruction %d", len(args)+1, order)
		}
		sym, err := ParseOperand(strings.TrimSpace(a.Type), strings.TrimSpace(a.Value))
		if err != nil {
			return Instruction{}, err
		}
		args = append(args, sym)
	}

	return Instruction{Op: op, Order: order, Args: args}, nil
}

func argPosition(name string) int {
	switch name {
	case "arg1":
		return 0
	case "arg2":
		return 1
	case "arg3":
		return 2
	}
	return -1
}
