package stitch

// Each calls fn once for every entity holding an A.
//
// fn must not create or destroy entities or add or remove components; collect
// the changes and apply them after Each returns.
func Each[A any](w *World, fn func(Entity, *A)) {
	f := NewFilter[A](w)
	for f.Next() {
		fn(f.Entity(), f.Get())
	}
}

// Each2 calls fn once for every entity holding an A and a B.
func Each2[A, B any](w *World, fn func(Entity, *A, *B)) {
	f := NewFilter2[A, B](w)
	for f.Next() {
		a, b := f.Get()
		fn(f.Entity(), a, b)
	}
}

// Each3 calls fn once for every entity holding an A, a B and a C.
func Each3[A, B, C any](w *World, fn func(Entity, *A, *B, *C)) {
	f := NewFilter3[A, B, C](w)
	for f.Next() {
		a, b, c := f.Get()
		fn(f.Entity(), a, b, c)
	}
}
