package argon2

// block is the fundamental 1024-byte Argon2 working-memory unit, viewed as
// 128 little-endian 64-bit words (spec §3).
type block [128]uint64

func (b *block) xorWith(other *block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// fillBlock computes G(X, Y) and stores it into dst, optionally XORing the
// result into dst's existing contents first (spec §4.3.3, the version
// 0x13 "XOR into the previous-pass value" rule).
func fillBlock(dst, x, y *block, xorPrevious bool) {
	var r, z block
	r = *x
	r.xorWith(y)
	z = r

	// 8 row-groups, then 8 column-groups, per spec §4.3.2.
	for i := 0; i < 8; i++ {
		blake2Round(&z, i*16, 1)
	}
	for i := 0; i < 8; i++ {
		blake2Round(&z, i*2, 16)
	}

	z.xorWith(&r)

	if xorPrevious {
		dst.xorWith(&z)
	} else {
		*dst = z
	}
}

// blake2Round applies the permutation P to one 16-word group of z. For the
// row pass the 16 words are contiguous (stride 1, base = 16i); for the
// column pass they are the doubly-strided set
// {2i, 2i+1, 2i+16, 2i+17, ..., 2i+112, 2i+113} (stride 16 between pairs,
// base advancing by 2 between groups).
func blake2Round(z *block, base, stride int) {
	var v [16]uint64
	idx := groupIndices(base, stride)
	for i, j := range idx {
		v[i] = z[j]
	}
	p(&v)
	for i, j := range idx {
		z[j] = v[i]
	}
}

func groupIndices(base, stride int) [16]int {
	var idx [16]int
	if stride == 1 {
		for i := 0; i < 16; i++ {
			idx[i] = base + i
		}
		return idx
	}
	// Column pass: pairs of adjacent words spaced 16 apart, per spec
	// §4.3.2's "Z[2i, 2i+1, 2i+16, 2i+17, 2i+32, ...]".
	for i := 0; i < 8; i++ {
		idx[2*i] = base + 16*i
		idx[2*i+1] = base + 16*i + 1
	}
	return idx
}

// p is the BLAKE2 round function: GB on columns, then GB on diagonals.
func p(v *[16]uint64) {
	gb(v, 0, 4, 8, 12)
	gb(v, 1, 5, 9, 13)
	gb(v, 2, 6, 10, 14)
	gb(v, 3, 7, 11, 15)
	gb(v, 0, 5, 10, 15)
	gb(v, 1, 6, 11, 12)
	gb(v, 2, 7, 8, 13)
	gb(v, 3, 4, 9, 14)
}

// gb is the Argon2 BlaMka quarter-round: a,b,c,d are indices into v. The
// nonlinear term 2*lo32(a)*lo32(b) is what differentiates this from
// BLAKE2b's plain additive G (spec §4.3.2, "GB").
func gb(v *[16]uint64, a, b, c, d int) {
	va, vb, vc, vd := v[a], v[b], v[c], v[d]

	va = blamka(va, vb)
	vd = rotr64(vd^va, 32)
	vc = blamka(vc, vd)
	vb = rotr64(vb^vc, 24)
	va = blamka(va, vb)
	vd = rotr64(vd^va, 16)
	vc = blamka(vc, vd)
	vb = rotr64(vb^vc, 63)

	v[a], v[b], v[c], v[d] = va, vb, vc, vd
}

func blamka(x, y uint64) uint64 {
	const mask = 0xFFFFFFFF
	xl, yl := x&mask, y&mask
	return x + y + 2*xl*yl
}

func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}
