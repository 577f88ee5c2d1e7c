package argon2

import (
	"bytes"
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// rfc9106Vector is one of the official RFC 9106 §7.3/7.4/7.5 test vectors:
// password/salt/secret/ad are all fixed, t=3, m=32 (KiB), p=4, τ=32.
type rfc9106Vector struct {
	name    string
	variant Variant
	tag     string
}

func rfc9106Params(variant Variant) Params {
	return Params{
		Password:    bytes.Repeat([]byte{0x01}, 32),
		Salt:        bytes.Repeat([]byte{0x02}, 16),
		Secret:      bytes.Repeat([]byte{0x03}, 8),
		AD:          bytes.Repeat([]byte{0x04}, 12),
		Time:        3,
		MemoryKiB:   32,
		Parallelism: 4,
		TagLength:   32,
		Variant:     variant,
		Version:     Version13,
	}
}

func TestArgon2RFC9106Vectors(t *testing.T) {
	vectors := []rfc9106Vector{
		{
			name:    "argon2d",
			variant: VariantD,
			tag:     "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb",
		},
		{
			name:    "argon2i",
			variant: VariantI,
			tag:     "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8",
		},
		{
			name:    "argon2id",
			variant: VariantID,
			tag:     "0d640df58d78766c08c037a34a8b53c9d01ef0452d75b65eb52520e96b01e659",
		},
	}

	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			want, err := hex.DecodeString(v.tag)
			require.NoError(t, err)

			got, err := Hash(context.Background(), rfc9106Params(v.variant))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestArgon2Determinism(t *testing.T) {
	p := rfc9106Params(VariantID)
	a, err := Hash(context.Background(), p)
	require.NoError(t, err)
	b, err := Hash(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestArgon2ParallelismChangesTag(t *testing.T) {
	p1 := rfc9106Params(VariantID)
	p1.Parallelism = 1
	p1.MemoryKiB = 8

	p2 := rfc9106Params(VariantID)
	p2.Parallelism = 2
	p2.MemoryKiB = 8

	a, err := Hash(context.Background(), p1)
	require.NoError(t, err)
	b, err := Hash(context.Background(), p2)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestArgon2VersionAffectsTag(t *testing.T) {
	p10 := rfc9106Params(VariantID)
	p10.Version = Version10

	p13 := rfc9106Params(VariantID)
	p13.Version = Version13

	a, err := Hash(context.Background(), p10)
	require.NoError(t, err)
	b, err := Hash(context.Background(), p13)
	require.NoError(t, err)
	require.NotEqual(t, a, b, "version 0x10 never XORs into existing blocks, version 0x13 does after the first pass")
}

func TestDeriveGeometryRoundsMemoryUp(t *testing.T) {
	p := Params{Parallelism: 4}
	g := deriveGeometry(&p)
	// m below 8p blocks must round up to 8p, per spec boundary behavior.
	require.Equal(t, uint32(32), g.memoryBlocks)
	require.Equal(t, uint32(2), g.segmentLength)
	require.Equal(t, uint32(8), g.laneLength)
}

func TestDeriveGeometryRoundsDownToMultipleOf4P(t *testing.T) {
	p := Params{Parallelism: 2, MemoryKiB: 17}
	g := deriveGeometry(&p)
	require.Equal(t, uint32(0), g.memoryBlocks%(4*p.Parallelism))
}
