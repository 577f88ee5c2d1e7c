package argon2

import (
	"encoding/binary"

	"github.com/coredkdf/argon2/blake2b"
)

// computeH0 builds the 64-byte seed hash H0 from which every lane's first
// two columns are derived (spec §4.3.1).
func computeH0(p *Params, g geometry) ([]byte, error) {
	d, err := blake2b.New(blake2b.Size)
	if err != nil {
		return nil, err
	}

	var u32 [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		d.Update(u32[:])
	}
	writeField := func(b []byte) {
		putU32(uint32(len(b)))
		d.Update(b)
	}

	putU32(p.Parallelism)
	putU32(p.TagLength)
	putU32(p.MemoryKiB)
	putU32(p.Time)
	putU32(uint32(p.Version))
	putU32(uint32(p.Variant))
	writeField(p.Password)
	writeField(p.Salt)
	writeField(p.Secret)
	writeField(p.AD)

	return d.Finalize(nil), nil
}

// seedLanes computes B[l][0] and B[l][1] for every lane from H0, per spec
// §4.3.1.
func seedLanes(h0 []byte, b []block, g geometry) error {
	buf := make([]byte, len(h0)+8)
	copy(buf, h0)

	for lane := uint32(0); lane < g.lanes; lane++ {
		binary.LittleEndian.PutUint32(buf[len(h0)+4:], lane)

		binary.LittleEndian.PutUint32(buf[len(h0):], 0)
		if err := hashBlock(&b[lane*g.laneLength+0], buf); err != nil {
			return err
		}

		binary.LittleEndian.PutUint32(buf[len(h0):], 1)
		if err := hashBlock(&b[lane*g.laneLength+1], buf); err != nil {
			return err
		}
	}
	return nil
}

func hashBlock(dst *block, input []byte) error {
	out, err := blake2b.HPrime(input, 1024)
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(out[i*8:])
	}
	return nil
}
