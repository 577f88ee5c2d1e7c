package argon2

import "context"

const (
	// DefaultParallelism is RFC 9106's recommended thread count. The
	// convenience wrappers below take parallelism as an argument and do not
	// read this constant.
	DefaultParallelism = 4
)

// Key derives a key from password and salt using Argon2i, mirroring the
// teacher's original Key(output, password, salt, n, m, p) signature but
// generalized to the full RFC 9106 parameter surface via Params/Hash. time
// is the number of passes, memoryKiB the working-set size in KiB,
// parallelism the lane count, and keyLen the desired output length.
//
// Key passes no secret or associated data, per spec §1 ("the public
// wrapper passes none").
func Key(password, salt []byte, time, memoryKiB, parallelism, keyLen uint32) ([]byte, error) {
	return Hash(context.Background(), Params{
		Password:    password,
		Salt:        salt,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: parallelism,
		TagLength:   keyLen,
		Variant:     VariantI,
		Version:     Version13,
	})
}

// IDKey derives a key from password and salt using Argon2id, the variant
// RFC 9106 recommends when there's no specific reason to prefer Argon2i or
// Argon2d.
func IDKey(password, salt []byte, time, memoryKiB, parallelism, keyLen uint32) ([]byte, error) {
	return Hash(context.Background(), Params{
		Password:    password,
		Salt:        salt,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: parallelism,
		TagLength:   keyLen,
		Variant:     VariantID,
		Version:     Version13,
	})
}

// DKey derives a key from password and salt using Argon2d. Argon2d's
// data-dependent addressing makes it faster than Argon2i and Argon2id but
// exposes it to side-channel attacks; it is not recommended for hashing
// secrets such as passwords (spec §1), but is offered for completeness and
// for non-secret uses such as cryptocurrency proof-of-work.
func DKey(password, salt []byte, time, memoryKiB, parallelism, keyLen uint32) ([]byte, error) {
	return Hash(context.Background(), Params{
		Password:    password,
		Salt:        salt,
		Time:        time,
		MemoryKiB:   memoryKiB,
		Parallelism: parallelism,
		TagLength:   keyLen,
		Variant:     VariantD,
		Version:     Version13,
	})
}
