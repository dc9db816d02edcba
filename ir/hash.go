package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value held by n. Nodes that are Equal
// hash the same within one process; the seed changes between runs.
func (n *Node) Hash() uint64 {
	return Visit[uint64](n, hashVisitor{})
}

type hashVisitor struct{}

func newHash(t Type) *maphash.Hash {
	h := &maphash.Hash{}
	h.SetSeed(seed)
	h.WriteByte(byte(t))
	return h
}

func writeUint64(h *maphash.Hash, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func (hashVisitor) Empty() uint64 {
	return newHash(EmptyType).Sum64()
}

func (hashVisitor) Bool(v bool) uint64 {
	h := newHash(BoolType)
	if v {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
	return h.Sum64()
}

func (hashVisitor) Integer(v int64) uint64 {
	h := newHash(IntegerType)
	writeUint64(h, uint64(v))
	return h.Sum64()
}

func (hashVisitor) Double(v float64) uint64 {
	h := newHash(DoubleType)
	switch {
	case math.IsNaN(v):
		v = math.NaN()
	case v == 0:
		// -0 is Equal to 0
		v = 0
	}
	writeUint64(h, math.Float64bits(v))
	return h.Sum64()
}

func (hashVisitor) String(v string) uint64 {
	h := newHash(StringType)
	h.WriteString(v)
	return h.Sum64()
}

func (hashVisitor) Map(m *Map, recurse func(*Node) uint64) uint64 {
	h := newHash(MapType)
	for k, child := range m.All() {
		h.WriteString(k)
		h.WriteByte(0)
		writeUint64(h, recurse(child))
	}
	return h.Sum64()
}

func (hashVisitor) Array(a *Array, recurse func(*Node) uint64) uint64 {
	h := newHash(ArrayType)
	for _, child := range a.All() {
		writeUint64(h, recurse(child))
	}
	return h.Sum64()
}
