// Package workload drives Deques from the outside: YAML scripts of
// operations, and randomized soak runs checked against a slice model.
package workload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/lucasgdosr/deque/v2"
)

// Op names accepted in scripts.
const (
	OpPushBack   = "push_back"
	OpPushFront  = "push_front"
	OpPopBack    = "pop_back"
	OpPopFront   = "pop_front"
	OpInsert     = "insert"
	OpErase      = "erase"
	OpEraseRange = "erase_range"
	OpResize     = "resize"
	OpReserve    = "reserve"
	OpClear      = "clear"
	OpSet        = "set"
)

var (
	// ErrUnknownOp is returned for an op name the runner does not know.
	ErrUnknownOp = errors.New("unknown op")
	// ErrOutOfRange is returned when an op's index or range does not fit the
	// Deque.
	ErrOutOfRange = errors.New("index out of range")
	// ErrEmpty is returned when popping from an empty Deque.
	ErrEmpty = errors.New("deque is empty")
)

// Op is one scripted operation. Which fields matter depends on the op:
// Index for insert, erase, erase_range and set; End for erase_range; Value
// for pushes, insert, set and as the fill of resize; Index is the new size
// for resize and the capacity for reserve.
type Op struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index,omitempty"`
	End   int    `yaml:"end,omitempty"`
	Value int    `yaml:"value,omitempty"`
}

// Script is an ordered list of operations.
type Script struct {
	Ops []Op `yaml:"ops"`
}

// ParseScript decodes a YAML script.
func ParseScript(r io.Reader) (Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("workload: decode script: %w", err)
	}
	return s, nil
}

// LoadScript reads and decodes a YAML script file.
func LoadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, err
	}
	defer f.Close()
	return ParseScript(f)
}

// Run applies every op to d in order and stops at the first one that fails.
// The Deque keeps the effects of the ops that ran.
func (s Script) Run(d *deque.Deque[int], log logrus.FieldLogger) error {
	for i, op := range s.Ops {
		if err := Apply(d, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		log.WithFields(logrus.Fields{
			"step":  i,
			"op":    op.Op,
			"len":   d.Len(),
			"cap":   d.Cap(),
			"deque": d.String(),
		}).Debug("applied")
	}
	return nil
}

// Apply performs a single op. Preconditions the Deque leaves to its caller,
// like popping an empty Deque, are checked here and reported as errors
// without touching d.
func Apply(d *deque.Deque[int], op Op) error {
	switch op.Op {
	case OpPushBack:
		return d.PushBack(op.Value)
	case OpPushFront:
		return d.PushFront(op.Value)
	case OpPopBack:
		if d.Empty() {
			return ErrEmpty
		}
		d.PopBack()
	case OpPopFront:
		if d.Empty() {
			return ErrEmpty
		}
		d.PopFront()
	case OpInsert:
		if err := checkRange(op.Index, op.Index, d.Len()); err != nil {
			return err
		}
		_, err := d.Insert(d.CBegin().Add(op.Index), op.Value)
		return err
	case OpErase:
		if err := checkRange(op.Index, op.Index+1, d.Len()); err != nil {
			return err
		}
		d.Erase(d.CBegin().Add(op.Index))
	case OpEraseRange:
		if err := checkRange(op.Index, op.End, d.Len()); err != nil {
			return err
		}
		d.EraseRange(d.CBegin().Add(op.Index), d.CBegin().Add(op.End))
	case OpResize:
		return d.Resize(op.Index, op.Value)
	case OpReserve:
		return d.Reserve(op.Index)
	case OpClear:
		d.Clear()
	case OpSet:
		if err := checkRange(op.Index, op.Index+1, d.Len()); err != nil {
			return err
		}
		d.Set(op.Index, op.Value)
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func checkRange(first, last, n int) error {
	if first < 0 || first > last || last > n {
		return fmt.Errorf("%w: [%d, %d) with length %d", ErrOutOfRange, first, last, n)
	}
	return nil
}
