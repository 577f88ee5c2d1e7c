package argon2

// addressGen produces the pseudo-random words used for Argon2i/id's
// data-independent addressing (spec §4.3.3). It holds the "input" block
// that identifies the current (pass, lane, slice) and a refresh counter,
// and the "address" block refreshed from it every 128 words consumed.
type addressGen struct {
	input   block
	address block
}

func (a *addressGen) init(pass, lane, slice, totalBlocks, iterations uint32, variant Variant) {
	a.input = block{}
	a.input[0] = uint64(pass)
	a.input[1] = uint64(lane)
	a.input[2] = uint64(slice)
	a.input[3] = uint64(totalBlocks)
	a.input[4] = uint64(iterations)
	a.input[5] = uint64(variant)
}

// refresh advances the counter word and recomputes the address block as
// G(0, G(0, input)), per spec §4.3.3.
func (a *addressGen) refresh() {
	a.input[6]++
	var zero block
	var tmp block
	fillBlock(&tmp, &zero, &a.input, false)
	fillBlock(&a.address, &zero, &tmp, false)
}

// word returns the i-th pseudo-random word (0 <= i < 128) from the most
// recently refreshed address block.
func (a *addressGen) word(i uint32) uint64 {
	return a.address[i]
}
