package deque_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lucasgdosr/deque/v2"
)

// TestAgainstSlice drives a Deque and a plain slice with the same random
// operations and compares them after every step.
func TestAgainstSlice(t *testing.T) {
	for seed := range uint64(8) {
		rng := rand.New(rand.NewPCG(seed, 0xdec0de))
		d := deque.New[int]()
		var want []int

		for step := range 2000 {
			n := rng.IntN(1000)
			var op string
			switch k := rng.IntN(10); {
			case k < 3:
				op = "PushBack"
				if err := d.PushBack(n); err != nil {
					t.Fatal(err)
				}
				want = append(want, n)
			case k < 5:
				op = "PushFront"
				if err := d.PushFront(n); err != nil {
					t.Fatal(err)
				}
				want = slices.Insert(want, 0, n)
			case k < 6 && len(want) > 0:
				op = "PopBack"
				d.PopBack()
				want = want[:len(want)-1]
			case k < 7 && len(want) > 0:
				op = "PopFront"
				d.PopFront()
				want = want[1:]
			case k < 8:
				op = "Insert"
				p := rng.IntN(len(want) + 1)
				if _, err := d.Insert(d.CBegin().Add(p), n); err != nil {
					t.Fatal(err)
				}
				want = slices.Insert(want, p, n)
			case k < 9 && len(want) > 0:
				op = "EraseRange"
				i := rng.IntN(len(want))
				j := i + rng.IntN(min(3, len(want)-i)+1)
				d.EraseRange(d.CBegin().Add(i), d.CBegin().Add(j))
				want = slices.Delete(want, i, j)
			default:
				op = "Copy"
				c, err := d.Copy()
				if err != nil {
					t.Fatal(err)
				}
				d = c
			}

			if diff := cmp.Diff(want, d.Slice(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("seed %d step %d after %s: mismatch (-want +got):\n%s", seed, step, op, diff)
			}
			if d.Len() != len(want) || d.Empty() != (len(want) == 0) || d.Cap() < d.Len() {
				t.Fatalf("seed %d step %d after %s: len %d cap %d, want len %d", seed, step, op, d.Len(), d.Cap(), len(want))
			}
		}
	}
}
