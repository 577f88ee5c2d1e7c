package argon2

// Variant selects Argon2's addressing mode.
type Variant uint32

const (
	// VariantD uses data-dependent memory addressing. Faster, but
	// unsuitable for hashing secrets subject to side-channel attacks.
	VariantD Variant = 0
	// VariantI uses data-independent memory addressing. Slower, but
	// side-channel resistant; the right choice for password hashing.
	VariantI Variant = 1
	// VariantID is a hybrid: data-independent for half of the first pass,
	// data-dependent for the rest.
	VariantID Variant = 2
)

// Version selects which RFC 9106 revision's fill semantics to use.
type Version uint32

const (
	// Version10 is the original 0x10 Argon2 revision: every pass
	// overwrites the block at its position, never XORing into it.
	Version10 Version = 0x10
	// Version13 is the current 0x13 revision: passes after the first XOR
	// the new block into whatever occupied that position previously.
	Version13 Version = 0x13
)

const syncPoints = 4

// Params bundles one Argon2 computation's inputs. Once passed to Hash the
// values are treated as immutable for the lifetime of the call.
type Params struct {
	Password []byte
	Salt     []byte
	Secret   []byte // optional pepper
	AD       []byte // optional associated data

	Time        uint32 // t, number of passes, >= 1
	MemoryKiB   uint32 // m, in KiB
	Parallelism uint32 // p, lanes, >= 1
	TagLength   uint32 // τ, output length in bytes, >= 4

	Variant Variant
	Version Version
}

// geometry is the derived, validated layout of the working memory for one
// computation (spec §3 "Derived geometry").
type geometry struct {
	memoryBlocks  uint32
	segmentLength uint32
	laneLength    uint32
	lanes         uint32
}

func deriveGeometry(p *Params) geometry {
	lanes := p.Parallelism
	m := p.MemoryKiB
	minBlocks := 2 * syncPoints * lanes
	if m < minBlocks {
		m = minBlocks
	}
	m = m / (syncPoints * lanes) * (syncPoints * lanes)

	segmentLength := m / (lanes * syncPoints)
	laneLength := syncPoints * segmentLength
	memoryBlocks := lanes * laneLength

	return geometry{
		memoryBlocks:  memoryBlocks,
		segmentLength: segmentLength,
		laneLength:    laneLength,
		lanes:         lanes,
	}
}
