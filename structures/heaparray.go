package structures

import (
	"github.com/katalvlaran/lvbound/candidate"
	"github.com/katalvlaran/lvbound/finitization"
	"github.com/katalvlaran/lvbound/statespace"
)

// HeapArraySpace bounds array-backed heaps to capacity n: size in [0, n] and
// one int[] of fixed length n with values in [0, n).
func HeapArraySpace(n int) (*statespace.StateSpace, error) {
	f := finitization.New("HeapArray", "size", "array")
	arr := f.Array("int[]", 1, finitization.Ints(0, int64(n-1)), n, finitization.FixedLength())
	f.Set("HeapArray", "size", finitization.Ints(0, int64(n)))
	f.Set("HeapArray", "array", arr)

	return f.Build()
}

// HeapArrayRepOK accepts max-heaps: size fits the array, every element below
// size is at most its parent, and unused cells hold 0.
func HeapArrayRepOK(v *candidate.View) bool {
	size := int(v.Int(v.Root(), "size"))
	arr := v.Ref(v.Root(), "array")
	if arr == candidate.Nil {
		return size == 0
	}
	length := v.Len(arr)
	if size > length {
		return false
	}
	for i := 1; i < size; i++ {
		if v.ElemInt(arr, i) > v.ElemInt(arr, (i-1)/2) {
			return false
		}
	}
	for i := size; i < length; i++ {
		if v.ElemInt(arr, i) != 0 {
			return false
		}
	}

	return true
}
