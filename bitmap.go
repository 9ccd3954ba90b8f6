package longsparse

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// KeyBitmap returns the key set as a roaring bitmap. Keys map to bit
// positions by two's-complement conversion, so negative keys land in the
// upper half of the uint64 range; the bitmap is a set, not an ordering.
func (s *Store[V]) KeyBitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	for i := 0; i < s.size; i++ {
		bm.Add(uint64(s.keys[i]))
	}
	return bm
}

// DeleteBitmap removes every entry whose key is present in bm.
func (s *Store[V]) DeleteBitmap(bm *roaring64.Bitmap) {
	if s.size == 0 || bm == nil || bm.IsEmpty() {
		return
	}

	it := bm.Iterator()
	for it.HasNext() {
		s.Delete(int64(it.Next()))
	}
}
