package argon2

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var ones = [8]byte{1, 1, 1, 1, 1, 1, 1, 1}

// Fake salt function for the example; real callers should use a
// cryptographically secure random source (out of scope for this core, per
// spec §1).
func randomSalt() []byte {
	return ones[:8]
}

func ExampleIDKey() {
	pw := []byte("hunter2")
	salt := randomSalt()

	key, err := IDKey(pw, salt, 3, 8192, 1, 32)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%x\n", key)
}

var keyErrTests = []struct {
	name        string
	time        uint32
	parallelism uint32
	keyLen      uint32
	want        string
}{
	{"zero time", 0, 1, 32, "time must be >= 1"},
	{"zero parallelism", 3, 0, 32, "parallelism must be >= 1"},
	{"tag too short", 3, 1, 3, "tag length must be >= 4"},
}

func TestKeyErr(t *testing.T) {
	pw := make([]byte, 16)
	salt := ones[:]

	for _, tt := range keyErrTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Key(pw, salt, tt.time, 8192, tt.parallelism, tt.keyLen)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidParameter)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDKeyMatchesGeneralHashVariantD(t *testing.T) {
	pw := []byte("hunter2")
	salt := randomSalt()

	viaConvenience, err := DKey(pw, salt, 2, 8192, 1, 32)
	require.NoError(t, err)
	require.Len(t, viaConvenience, 32)

	viaHash, err := Hash(context.Background(), Params{
		Password:    pw,
		Salt:        salt,
		Time:        2,
		MemoryKiB:   8192,
		Parallelism: 1,
		TagLength:   32,
		Variant:     VariantD,
		Version:     Version13,
	})
	require.NoError(t, err)
	require.Equal(t, viaHash, viaConvenience)
}
