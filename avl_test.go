package avl_test

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"jsouthworth.net/go/avl"
)

func compareInt(a, b int) int       { return cmp.Compare(a, b) }
func compareString(a, b string) int { return cmp.Compare(a, b) }

func TestAdd(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("t=empty.Add(i)->t.Contains(i)",
		prop.ForAll(
			func(i int) bool {
				var e *avl.Tree[int, int]
				s := e.Add(compareInt, i, i)
				return s.Contains(compareInt, i)
			},
			gen.Int(),
		))
	properties.Property("t=empty.Add(k,v)->t.At(k)==v",
		prop.ForAll(
			func(i int) bool {
				var e *avl.Tree[int, int]
				s := e.Add(compareInt, i, i*2)
				return s.At(compareInt, i) == i*2
			},
			gen.Int(),
		))
	properties.Property("ForAll entries random.At(k)==len(k)",
		prop.ForAll(
			func(rt *rtree) bool {
				for _, k := range rt.entries {
					if rt.t.At(compareString, k) != len(k) {
						return false
					}
				}
				return true
			},
			genRandomTree,
		))
	properties.Property("replace keeps length",
		prop.ForAll(
			func(rt *rtree, v int) bool {
				if len(rt.entries) == 0 {
					return true
				}
				k := rt.entries[0]
				new := rt.t.Add(compareString, k, v)
				return new.At(compareString, k) == v &&
					new.Len() == rt.t.Len()
			},
			genRandomTree,
			gen.Int(),
		))
	properties.Property("add preserves the original",
		prop.ForAll(
			func(rt *rtree, k string, v int) bool {
				before, ok := rt.t.Find(compareString, k)
				rt.t.Add(compareString, k, v)
				after, ok2 := rt.t.Find(compareString, k)
				return ok == ok2 && before == after
			},
			genRandomTree,
			gen.Identifier(),
			gen.Int(),
		))
	properties.Property("add keeps the tree valid",
		prop.ForAll(
			func(rt *rtree) bool {
				return rt.t.Valid(compareString)
			},
			genRandomTree,
		))
	properties.Property("height stays logarithmic",
		prop.ForAll(
			func(lt *ltree) bool {
				n := float64(lt.t.Len())
				return float64(lt.t.Height()) <= 2*math.Log2(n+2)+2
			},
			genLargeTree,
		))
	properties.Property("add twice equals add once",
		prop.ForAll(
			func(rt *rtree, k string, v int) bool {
				once := rt.t.Add(compareString, k, v)
				twice := once.Add(compareString, k, v)
				return slices.Equal(once.Pairs(), twice.Pairs())
			},
			genRandomTree,
			gen.Identifier(),
			gen.Int(),
		))

	properties.TestingRun(t)
}

func TestRemove(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("new=t.Remove(absent) -> new==t",
		prop.ForAll(
			func(rt *rtree) bool {
				// identifiers never start with a digit
				return rt.t.Remove(compareString, "9absent") == rt.t
			},
			genRandomTree,
		))
	properties.Property("new=t.Remove(k) -> !new.Contains(k) && t.Contains(k)",
		prop.ForAll(
			func(rt *rtree) bool {
				if len(rt.entries) == 0 {
					return true
				}
				k := rt.entries[0]
				new := rt.t.Remove(compareString, k)
				return !new.Contains(compareString, k) &&
					rt.t.Contains(compareString, k)
			},
			genRandomTree,
		))
	properties.Property("remove keeps the tree valid",
		prop.ForAll(
			func(rt *rtree) bool {
				new := rt.t
				for _, k := range rt.entries {
					new = new.Remove(compareString, k)
					if !new.Valid(compareString) {
						return false
					}
				}
				return new.Len() == 0
			},
			genRandomTree,
		))
	properties.Property("new=removeAll(large) -> new.Len()==0",
		prop.ForAll(
			func(lt *ltree) bool {
				new := lt.t
				for i := 0; i < lt.num; i++ {
					new = new.Remove(compareString, lt.k+strconv.Itoa(i))
				}
				return new.Len() == 0
			},
			genLargeTree,
		))

	properties.TestingRun(t)
}

func TestUpdate(t *testing.T) {
	var e *avl.Tree[string, int]
	insert := func(cur int, found bool) (int, bool) { return cur + 1, true }
	drop := func(cur int, found bool) (int, bool) { return 0, false }

	tr := e.Update(compareString, "a", insert)
	if got := tr.At(compareString, "a"); got != 1 {
		t.Fatalf("expected 1 after insert, got %v", got)
	}
	tr = tr.Update(compareString, "a", insert)
	if got := tr.At(compareString, "a"); got != 2 {
		t.Fatalf("expected 2 after update, got %v", got)
	}
	tr2 := tr.Update(compareString, "a", drop)
	if tr2.Contains(compareString, "a") {
		t.Fatal("expected key removed")
	}
	if tr3 := tr2.Update(compareString, "b", drop); tr3 != tr2 {
		t.Fatal("expected dropping an absent key to return the same tree")
	}
}

func TestScenarioReplace(t *testing.T) {
	var e *avl.Tree[string, int]
	tr := e.Add(compareString, "a", 1).
		Add(compareString, "b", 2).
		Add(compareString, "a", 3)
	expected := []avl.Entry[string, int]{
		{Key: "a", Value: 3},
		{Key: "b", Value: 2},
	}
	if got := tr.Pairs(); !slices.Equal(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestScenarioRemove(t *testing.T) {
	var e *avl.Tree[int, string]
	tr := e.Add(compareInt, 1, "a").
		Add(compareInt, 2, "b").
		Remove(compareInt, 1)
	want := e.Add(compareInt, 2, "b")
	if !slices.Equal(tr.Pairs(), want.Pairs()) {
		t.Fatalf("expected %v, got %v", want, tr)
	}
}

func TestNearest(t *testing.T) {
	var tr *avl.Tree[int, string]
	for i := 0; i <= 100; i += 10 {
		tr = tr.Add(compareInt, i, strconv.Itoa(i))
	}
	cases := []struct {
		query int
		dir   avl.Direction
		key   int
		found bool
	}{
		{query: 35, dir: avl.Floor, key: 30, found: true},
		{query: 35, dir: avl.Ceiling, key: 40, found: true},
		{query: 40, dir: avl.Floor, key: 40, found: true},
		{query: 40, dir: avl.Ceiling, key: 40, found: true},
		{query: -1, dir: avl.Floor, found: false},
		{query: -1, dir: avl.Ceiling, key: 0, found: true},
		{query: 101, dir: avl.Floor, key: 100, found: true},
		{query: 101, dir: avl.Ceiling, found: false},
	}
	for _, c := range cases {
		k, _, ok := tr.Nearest(compareInt, c.query, c.dir)
		if ok != c.found || (ok && k != c.key) {
			t.Fatalf("%v of %d: expected (%d, %v), got (%d, %v)",
				c.dir, c.query, c.key, c.found, k, ok)
		}
	}
}

func TestMinMax(t *testing.T) {
	var e *avl.Tree[int, int]
	if _, _, ok := e.Min(); ok {
		t.Fatal("empty tree has no minimum")
	}
	if _, _, ok := e.Max(); ok {
		t.Fatal("empty tree has no maximum")
	}
	tr := e.Add(compareInt, 2, 2).
		Add(compareInt, 1, 1).
		Add(compareInt, 3, 3)
	if k, _, _ := tr.Min(); k != 1 {
		t.Fatalf("expected min 1, got %d", k)
	}
	if k, _, _ := tr.Max(); k != 3 {
		t.Fatalf("expected max 3, got %d", k)
	}
}

func TestFold(t *testing.T) {
	var tr *avl.Tree[int, int]
	var want int
	for i := 0; i < 1000; i++ {
		tr = tr.Add(compareInt, i, i)
		want += i
	}
	got := avl.Fold(tr, 0, func(acc, k, v int) int { return acc + v })
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
	keys := avl.Fold(tr, []int(nil), func(acc []int, k, v int) []int {
		return append(acc, k)
	})
	if !slices.IsSorted(keys) {
		t.Fatal("fold did not visit keys in ascending order")
	}
}

func TestMapValues(t *testing.T) {
	var tr *avl.Tree[int, int]
	for i := 0; i < 100; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	strs := avl.MapValues(tr, func(k, v int) string {
		return strconv.Itoa(v * 2)
	})
	if !strs.Valid(compareInt) {
		t.Fatal("mapped tree is not valid")
	}
	if got := strs.At(compareInt, 21); got != "42" {
		t.Fatalf("expected %q, got %q", "42", got)
	}
	if strs.Len() != tr.Len() || strs.Height() != tr.Height() {
		t.Fatal("mapping values changed the tree shape")
	}
}

func TestFilter(t *testing.T) {
	var tr *avl.Tree[int, int]
	for i := 0; i < 1000; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	even := tr.Filter(func(k, v int) bool { return k%2 == 0 })
	if !even.Valid(compareInt) {
		t.Fatal("filtered tree is not valid")
	}
	if even.Len() != 500 {
		t.Fatalf("expected 500 entries, got %d", even.Len())
	}
	if all := tr.Filter(func(k, v int) bool { return true }); all != tr {
		t.Fatal("expected filtering nothing out to return the same tree")
	}
}

func TestIteratorEmpty(t *testing.T) {
	var tr *avl.Tree[int, int]
	iter := tr.Iterator()
	var count int
	for iter.HasNext() {
		count++
		iter.Next()
	}
	if count > 0 {
		t.Fatal("iterator over empty tree had next")
	}
}

func TestIterator(t *testing.T) {
	var tr *avl.Tree[int, int]
	var sum int
	for i := 0; i < 100000; i++ {
		tr = tr.Add(compareInt, i, i)
		sum += i
	}
	var got int
	iter := tr.Iterator()
	for iter.HasNext() {
		_, v := iter.Next()
		got += v
	}
	if sum != got {
		t.Fatalf("didn't get expected value from iteration: got %v expected %v", got, sum)
	}
}

func TestIteratorFrom(t *testing.T) {
	var froms = []int{-10, 0, 99997, 100000, 100001}
	var tr *avl.Tree[int, int]
	for i := 0; i < 100000; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	for _, from := range froms {
		var want int
		for i := 0; i < 100000; i++ {
			if i >= from {
				want += i
			}
		}
		var got int
		iter := tr.IteratorFrom(compareInt, from)
		for iter.HasNext() {
			_, v := iter.Next()
			got += v
		}
		if want != got {
			t.Fatalf("from %d: didn't get expected value from iteration: got %v expected %v", from, got, want)
		}
	}
}

func TestAll(t *testing.T) {
	var tr *avl.Tree[int, int]
	for i := 0; i < 1000; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	next := 0
	for k, v := range tr.All() {
		if k != next || v != next {
			t.Fatalf("expected (%d, %d), got (%d, %d)", next, next, k, v)
		}
		next++
	}
	if next != 1000 {
		t.Fatalf("expected 1000 entries, saw %d", next)
	}
}

func BenchmarkAdd(b *testing.B) {
	var tr *avl.Tree[int, int]
	for i := 0; i < b.N; i++ {
		tr = tr.Add(compareInt, i, i)
	}
}

func BenchmarkRemove(b *testing.B) {
	var tr *avl.Tree[int, int]
	for i := 0; i < b.N; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr = tr.Remove(compareInt, i)
	}
}

func BenchmarkFind(b *testing.B) {
	var tr *avl.Tree[int, int]
	for i := 0; i < b.N; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Find(compareInt, i)
	}
}

func BenchmarkIter(b *testing.B) {
	var tr *avl.Tree[int, int]
	for i := 0; i < b.N; i++ {
		tr = tr.Add(compareInt, i, i)
	}
	b.ResetTimer()
	iter := tr.Iterator()
	for iter.HasNext() {
		iter.Next()
	}
}

func BenchmarkBuiltinMapAdd(b *testing.B) {
	m := make(map[int]int)
	for i := 0; i < b.N; i++ {
		m[i] = i
	}
}

func BenchmarkBuiltinMapDelete(b *testing.B) {
	m := make(map[int]int)
	for i := 0; i < b.N; i++ {
		m[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		delete(m, i)
	}
}

type rtree struct {
	entries []string
	t       *avl.Tree[string, int]
}

func (t *rtree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{ entries:%v, t: %v }", t.entries, t.t)
	return b.String()
}

func makeRandomTree(entries []string) *rtree {
	var m *avl.Tree[string, int]
	for _, k := range entries {
		m = m.Add(compareString, k, len(k))
	}
	return &rtree{
		entries: entries,
		t:       m,
	}
}

func unmakeRandomTree(r *rtree) []string {
	return r.entries
}

var genRandomTree = gopter.DeriveGen(makeRandomTree, unmakeRandomTree,
	gen.SliceOf(gen.Identifier()),
)

type ltree struct {
	num int
	k   string
	t   *avl.Tree[string, int]
}

func (t *ltree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{ num:%v, k:%s, t: %v }", t.num, t.k, t.t)
	return b.String()
}

func makeLargeTree(num int, k string) *ltree {
	var m *avl.Tree[string, int]
	for i := 0; i < num; i++ {
		m = m.Add(compareString, k+strconv.Itoa(i), i)
	}
	return &ltree{
		num: num,
		k:   k,
		t:   m,
	}
}

func unmakeLargeTree(lt *ltree) (num int, k string) {
	return lt.num, lt.k
}

var genLargeTree = gopter.DeriveGen(makeLargeTree, unmakeLargeTree,
	gen.IntRange(10000, 20000),
	gen.Identifier(),
)
