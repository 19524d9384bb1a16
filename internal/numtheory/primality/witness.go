package primality

// BaseSet is one tier of the witness base table. Bases must be treated as
// read-only; the slices are shared by every Oracle.
type BaseSet struct {
	// MaxBits is the largest operand bit length this tier covers.
	MaxBits int
	// Bases are the Miller-Rabin witnesses, applied in order.
	Bases []uint64
	// Deterministic reports whether no composite of at most MaxBits bits
	// passes every base.
	Deterministic bool
}

var baseTable = []BaseSet{
	{
		MaxBits:       32,
		Bases:         []uint64{2, 7, 61},
		Deterministic: true,
	},
	{
		MaxBits:       64,
		Bases:         []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022},
		Deterministic: true,
	},
	{
		// psi_13 = 3317044064679887385961981 > 2^81
		MaxBits:       81,
		Bases:         []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41},
		Deterministic: true,
	},
	{
		MaxBits:       128,
		Bases:         []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47},
		Deterministic: false,
	},
}

// SelectBases returns the tier for an operand of the given bit length.
// Operands wider than the last tier reuse its bases.
func SelectBases(bitLen int) BaseSet {
	for _, set := range baseTable {
		if bitLen <= set.MaxBits {
			return set
		}
	}
	return baseTable[len(baseTable)-1]
}

// Table returns a copy of the witness base table, narrowest tier first.
func Table() []BaseSet {
	out := make([]BaseSet, len(baseTable))
	copy(out, baseTable)
	return out
}
