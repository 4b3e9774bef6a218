package cuckoofilter

// put stores fp in the first empty slot. It reports false, leaving the
// bucket untouched, when every slot is taken.
func (b *bucket[T]) put(fp T) bool {
	for i := range b {
		if isEmpty(b[i]) {
			b[i] = fp
			return true
		}
	}
	return false
}

func (b *bucket[T]) get(fp T) bool {
	for i := range b {
		if b[i] == fp {
			return true
		}
	}
	return false
}

// remove empties the first slot holding fp. Duplicates are removed one per
// call.
func (b *bucket[T]) remove(fp T) bool {
	for i := range b {
		if b[i] == fp {
			b[i] = 0
			return true
		}
	}
	return false
}

// swap stores fp in slot i and returns the previous occupant.
func (b *bucket[T]) swap(i int, fp T) T {
	b[i], fp = fp, b[i]
	return fp
}

func (b *bucket[T]) count() int {
	n := 0
	for i := range b {
		if !isEmpty(b[i]) {
			n++
		}
	}
	return n
}

func (b *bucket[T]) reset() {
	*b = bucket[T]{}
}
