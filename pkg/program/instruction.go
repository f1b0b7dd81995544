package program

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cinskabotanicka/IPP2/pkg/fault"
)

type Instruction struct {
	Op    Opcode
	Order int      // declared execution-order key
	Args  []Symbol // operands in positional order
}

// String returns a string representation of the instruction
func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString(i.Op.String())
	for _, a := range i.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}

// Program is an instruction sequence linearised by order number
type Program struct {
	instructions []Instruction
}

// NewProgram sorts records by order number and rejects non-positive or duplicate orders
func NewProgram(records []Instruction) (*Program, error) {
	pb := slices.Clone(records)
	slices.SortStableFunc(pb, func(a, b Instruction) int {
		return a.Order - b.Order
	})

	for idx, ins := range pb {
		if ins.Order <= 0 {
			return nil, fault.Errorf(fault.Structural, "instruction order must be positive, got %d", ins.Order)
		}
		if idx > 0 && pb[idx-1].Order == ins.Order {
			return nil, fault.Errorf(fault.Structural, "duplicate instruction order %d", ins.Order)
		}
	}

	return &Program{instructions: pb}, nil
}

// Instructions returns the instructions in execution order
func (p *Program) Instructions() []Instruction {
	return p.instructions
}

// Len returns the number of instructions
func (p *Program) Len() int {
	return len(p.instructions)
}

// Listing renders one instruction per line prefixed by its order number
func (p *Program) Listing() []string {
	lines := make([]string, 0, len(p.instructions))
	for _, ins := range p.instructions {
		lines = append(lines, fmt.Sprintf("%d: %s", ins.Order, ins))
	}
	return lines
}
