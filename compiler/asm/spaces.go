package asm

type (
	spaceSet uint64
)

func newSpaces(skip ...byte) (ss spaceSet) {
	for _, q := range skip {
		if q >= 64 {
			panic("too high char code")
		}

		ss |= 1 << q
	}

	return
}

func (s spaceSet) has(c byte) bool {
	return c < 64 && s&(1<<c) != 0
}

func (s spaceSet) skip(b []byte, st int) (i int) {
	i = st

	for i < len(b) && s.has(b[i]) {
		i++
	}

	return
}
