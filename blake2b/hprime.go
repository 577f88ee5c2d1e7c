package blake2b

import "encoding/binary"

// HPrime computes Argon2's variable-length hash H′(x, τ) as specified in
// the Argon2 paper §3.4: a single BLAKE2b call when τ fits in one digest,
// otherwise a chain of 64-byte BLAKE2b calls, each contributing its first
// 32 bytes to the output except the last, which contributes everything it
// has left.
//
// HPrime always returns exactly length bytes; length must be at least 1.
func HPrime(x []byte, length int) ([]byte, error) {
	if length < 1 {
		return nil, errDigestSize
	}

	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(length))

	if length <= Size {
		d, err := New(length)
		if err != nil {
			return nil, err
		}
		d.Update(lenPrefix[:])
		d.Update(x)
		return d.Finalize(nil), nil
	}

	out := make([]byte, length)

	d, err := New(Size)
	if err != nil {
		return nil, err
	}
	d.Update(lenPrefix[:])
	d.Update(x)
	v := d.Finalize(nil) // V_1

	r := (length+31)/32 - 2
	pos := 0
	copy(out[pos:], v[:32])
	pos += 32
	for i := 2; i <= r; i++ {
		v = Sum64(v) // V_i = BLAKE2b_64(V_{i-1})
		copy(out[pos:], v[:32])
		pos += 32
	}

	// V_{r+1} = BLAKE2b_{τ−32r}(V_r); v currently holds V_r.
	tail, err := hashOf(length-pos, v)
	if err != nil {
		return nil, err
	}
	copy(out[pos:], tail)
	return out, nil
}

// Sum64 returns the 64-byte BLAKE2b digest of in, used to chain successive
// V_i blocks in HPrime.
func Sum64(in []byte) []byte {
	d, _ := New(Size)
	d.Update(in)
	return d.Finalize(nil)
}

func hashOf(size int, in []byte) ([]byte, error) {
	d, err := New(size)
	if err != nil {
		return nil, err
	}
	d.Update(in)
	return d.Finalize(nil), nil
}
