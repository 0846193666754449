package deque_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/deque/v2"
)

func ints(t *testing.T, ns ...int) *deque.Deque[int] {
	t.Helper()
	d := deque.New[int]()
	for _, n := range ns {
		require.NoError(t, d.PushBack(n))
	}
	return d
}

func TestIteratorWalk(t *testing.T) {
	d := ints(t, 1, 2, 3, 4, 5)

	var got []int
	for it := d.Begin(); !it.Equal(d.End()); it = it.Next() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, got)

	got = got[:0]
	for it := d.End(); !it.Equal(d.Begin()); {
		it = it.Prev()
		got = append(got, it.Get())
	}
	require.Equal(t, []int{5, 4, 3, 2, 1}, got)
}

func TestIteratorArithmetic(t *testing.T) {
	d := ints(t, 1, 2, 3, 4, 5)
	b, e := d.Begin(), d.End()

	require.Equal(t, 5, e.Diff(b))
	require.Equal(t, -5, b.Diff(e))
	require.Equal(t, 3, b.Add(2).Get())
	require.Equal(t, 4, e.Sub(2).Get())
	require.Equal(t, 4, b.At(3))
	require.Equal(t, 2, e.Add(-1).At(-3))
	require.True(t, b.Add(5).Equal(e))
	require.True(t, e.Sub(5).Equal(b))

	require.True(t, b.Less(e))
	require.False(t, e.Less(b))
	require.False(t, b.Less(b))
	require.Equal(t, -1, b.Compare(e))
	require.Equal(t, 0, b.Compare(d.Begin()))
	require.Equal(t, 1, e.Compare(b))
	require.Equal(t, 2, b.Add(2).Index())
}

func TestIteratorSet(t *testing.T) {
	d := ints(t, 1, 2, 3)
	d.Begin().Next().Set(20)
	*d.End().Prev().Ptr() = 30
	require.Equal(t, []int{1, 20, 30}, d.Slice())
}

func TestIteratorEqualityNeedsSameDeque(t *testing.T) {
	a := ints(t, 1, 2)
	b := ints(t, 1, 2)
	require.False(t, a.Begin().Equal(b.Begin()))
	require.False(t, a.CEnd().Equal(b.CEnd()))
	require.True(t, a.Begin().Equal(a.Begin()))
}

func TestIteratorConversions(t *testing.T) {
	d := ints(t, 1, 2, 3)
	it := d.Begin().Next()
	var cit deque.ConstIterator[int] = it.Const()
	require.Equal(t, 2, cit.Get())
	require.True(t, cit.Equal(d.CBegin().Next()))
	require.True(t, d.RBegin().Const().Equal(d.CRBegin()))
	require.True(t, d.End().Const().Equal(d.CEnd()))
}

func TestConstIterator(t *testing.T) {
	d := ints(t, 1, 2, 3, 4)
	var got []int
	for it := d.CBegin(); !it.Equal(d.CEnd()); it = it.Next() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)

	b, e := d.CBegin(), d.CEnd()
	require.Equal(t, 4, e.Diff(b))
	require.Equal(t, 4, b.Add(3).Get())
	require.Equal(t, 2, e.Sub(3).Get())
	require.Equal(t, 4, b.At(3))
	require.Equal(t, 3, e.Prev().Prev().Get())
	require.True(t, b.Less(e))
	require.Equal(t, 1, e.Compare(b))
	require.Equal(t, 4, e.Index())
}

func TestConstConversionIsOneWay(t *testing.T) {
	it := reflect.TypeFor[deque.Iterator[int]]()
	cit := reflect.TypeFor[deque.ConstIterator[int]]()
	require.False(t, cit.ConvertibleTo(it))

	rit := reflect.TypeFor[deque.ReverseIterator[int]]()
	crit := reflect.TypeFor[deque.ConstReverseIterator[int]]()
	require.False(t, crit.ConvertibleTo(rit))

	d := ints(t, 1, 2, 3)
	c := d.Begin().Next().Const()
	require.Equal(t, 1, c.Index())
	require.Equal(t, 2, c.Get())
	require.True(t, c.Equal(d.CBegin().Next()))
	require.True(t, d.RBegin().Const().Equal(d.CRBegin()))
}

func TestReverseIterators(t *testing.T) {
	d := ints(t, 1, 2, 3, 4)

	var got []int
	for it := d.RBegin(); !it.Equal(d.REnd()); it = it.Next() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	got = got[:0]
	for it := d.CRBegin(); !it.Equal(d.CREnd()); it = it.Next() {
		got = append(got, it.Get())
	}
	require.Equal(t, []int{4, 3, 2, 1}, got)

	rb, re := d.RBegin(), d.REnd()
	require.Equal(t, 4, re.Diff(rb))
	require.Equal(t, 2, rb.Add(2).Get())
	require.Equal(t, 1, rb.At(3))
	require.Equal(t, 4, re.Sub(4).Get())
	require.Equal(t, 3, re.Prev().Prev().Prev().Get())
	require.True(t, rb.Less(re))
	require.Equal(t, -1, rb.Compare(re))
	require.True(t, rb.Base().Equal(d.End()))

	rb.Set(40)
	*rb.Next().Ptr() = 30
	require.Equal(t, []int{1, 2, 30, 40}, d.Slice())

	crb, cre := d.CRBegin(), d.CREnd()
	require.Equal(t, 4, cre.Diff(crb))
	require.Equal(t, 30, crb.Add(1).Get())
	require.Equal(t, 40, cre.Sub(4).Get())
	require.Equal(t, 1, crb.At(3))
	require.Equal(t, 2, cre.Prev().Next().Prev().Prev().Get())
	require.True(t, crb.Less(cre))
	require.Equal(t, 1, cre.Compare(crb))
	require.True(t, crb.Base().Equal(d.CEnd()))
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"begin", 0, []int{5, 1, 2, 3, 4}},
		{"middle", 2, []int{1, 2, 5, 3, 4}},
		{"close to end", 3, []int{1, 2, 3, 5, 4}},
		{"end", 4, []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ints(t, 1, 2, 3, 4)
			it, err := d.Insert(d.CBegin().Add(tt.pos), 5)
			require.NoError(t, err)
			require.Equal(t, tt.want, d.Slice())
			require.Equal(t, tt.pos, it.Index())
			require.Equal(t, 5, it.Get())
		})
	}
}

func TestInsertEmpty(t *testing.T) {
	d := deque.New[int]()
	it, err := d.Insert(d.CEnd(), 1)
	require.NoError(t, err)
	require.True(t, it.Equal(d.Begin()))
	require.Equal(t, []int{1}, d.Slice())
}

func TestErase(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"begin", 0, []int{2, 3, 4}},
		{"middle", 2, []int{1, 2, 4}},
		{"end", 3, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ints(t, 1, 2, 3, 4)
			it := d.Erase(d.CBegin().Add(tt.pos))
			require.Equal(t, tt.want, d.Slice())
			require.Equal(t, tt.pos, it.Index())
			if tt.pos < d.Len() {
				require.Equal(t, tt.want[tt.pos], it.Get())
			} else {
				require.True(t, it.Equal(d.End()))
			}
		})
	}
}

func TestEraseRange(t *testing.T) {
	d := ints(t, 1, 2, 3, 4, 5, 6, 7)
	it := d.EraseRange(d.CBegin().Add(2), d.CBegin().Add(5))
	require.Equal(t, []int{1, 2, 6, 7}, d.Slice())
	require.Equal(t, 6, it.Get())

	it = d.EraseRange(d.CBegin(), d.CBegin())
	require.Equal(t, []int{1, 2, 6, 7}, d.Slice())
	require.True(t, it.Equal(d.Begin()))

	it = d.EraseRange(d.CBegin(), d.CEnd())
	require.True(t, d.Empty())
	require.True(t, it.Equal(d.End()))
}

func TestInsertEraseRoundTrip(t *testing.T) {
	orig := []int{1, 2, 3, 4, 5, 6}
	for p := 0; p <= len(orig); p++ {
		d := deque.New[int]()
		// Push half to the front so the ring wraps.
		for _, n := range orig[3:] {
			require.NoError(t, d.PushBack(n))
		}
		for i := 2; i >= 0; i-- {
			require.NoError(t, d.PushFront(orig[i]))
		}

		it, err := d.Insert(d.CBegin().Add(p), 100)
		require.NoError(t, err)
		require.Equal(t, 100, d.At(p))
		d.Erase(it.Const())
		require.Equal(t, orig, d.Slice(), "position %d", p)
	}
}

func TestSwapKeepsIterators(t *testing.T) {
	d1 := ints(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	d2 := ints(t, 11)

	d1Begin, d1End := d1.CBegin(), d1.CEnd()
	d2Begin, d2End := d2.CBegin(), d2.CEnd()
	p := d1.Ptr(0)

	deque.Swap(d1, d2)

	require.Equal(t, 1, d1Begin.Get())
	d1Begin = d1Begin.Next()
	require.Equal(t, 2, d1Begin.Get())
	d1Begin = d1Begin.Next()
	require.Equal(t, 3, d1Begin.Get())
	d1Begin = d1Begin.Add(8)
	require.True(t, d1End.Equal(d1Begin))

	require.Equal(t, 11, d2Begin.Get())
	require.True(t, d2End.Equal(d2Begin.Next()))

	// The iterators now belong to the other Deque.
	require.True(t, d2End.Equal(d1.CEnd()))
	require.Same(t, p, d2.Ptr(0))
}

func TestReallocationInvalidatesPointers(t *testing.T) {
	d := ints(t, 1, 2)
	require.Equal(t, 2, d.Cap())
	p := d.Ptr(0)

	require.NoError(t, d.PushBack(3))
	require.Equal(t, 4, d.Cap())
	require.NotSame(t, p, d.Ptr(0))

	// The old slot was released and no longer aliases the element.
	require.Zero(t, *p)
	*p = 100
	require.Equal(t, []int{1, 2, 3}, d.Slice())
}
