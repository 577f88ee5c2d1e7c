package argon2

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/coredkdf/argon2/blake2b"
)

const minTagLength = 4

// validate checks Params against the legal ranges from spec §3/§7 without
// touching any working memory.
func (p *Params) validate() error {
	if p.Time < 1 {
		return invalidParam("time must be >= 1, got %d", p.Time)
	}
	if p.Parallelism < 1 {
		return invalidParam("parallelism must be >= 1, got %d", p.Parallelism)
	}
	if p.TagLength < minTagLength {
		return invalidParam("tag length must be >= %d, got %d", minTagLength, p.TagLength)
	}
	switch p.Version {
	case Version10, Version13:
	default:
		return invalidParam("unsupported version 0x%x", uint32(p.Version))
	}
	switch p.Variant {
	case VariantD, VariantI, VariantID:
	default:
		return invalidParam("unsupported variant %d", uint32(p.Variant))
	}
	if len(p.Password) > int(^uint32(0)) {
		return invalidParam("password too long")
	}
	return nil
}

// Hash runs one full Argon2 computation and returns a tag of
// p.TagLength bytes, per spec §4.3 and §6. The context is consulted at
// every slice barrier; cancelling it zeroizes the working memory and
// returns ErrCancelled.
func Hash(ctx context.Context, p Params) ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	// state progresses Created -> Seeded -> Filling -> Finalized, collapsing
	// to Zeroed on any error below; b is zeroized on every exit path
	// regardless of which state we collapsed from.
	g := deriveGeometry(&p)

	b, err := allocateBlocks(g.memoryBlocks)
	if err != nil {
		return nil, err
	}
	defer zeroizeBlocks(b)

	h0, err := computeH0(&p, g)
	if err != nil {
		return nil, err
	}
	defer zeroizeBytes(h0)

	if err := seedLanes(h0, b, g); err != nil {
		return nil, err
	}

	if err := fillMemory(ctx, b, &p, g); err != nil {
		return nil, err
	}

	return finalize(b, g, p.TagLength)
}

// finalize XORs the last column across all lanes and compresses it through
// H′ to the requested tag length, per spec §4.3.4.
func finalize(b []block, g geometry, tagLength uint32) ([]byte, error) {
	var c block
	for lane := uint32(0); lane < g.lanes; lane++ {
		c.xorWith(&b[lane*g.laneLength+g.laneLength-1])
	}

	var serialized [1024]byte
	for i, v := range c {
		binary.LittleEndian.PutUint64(serialized[i*8:], v)
	}

	return blake2b.HPrime(serialized[:], int(tagLength))
}

// allocateBlocks allocates the working memory, converting an out-of-memory
// panic into ErrAllocationFailure per spec §7.
func allocateBlocks(n uint32) (b []block, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()
	b = make([]block, n)
	return b, nil
}

func zeroizeBlocks(b []block) {
	for i := range b {
		b[i] = block{}
	}
}

func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
