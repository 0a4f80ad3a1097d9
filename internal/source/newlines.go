package source

import "golang.org/x/text/transform"

// newlines converts CRLF, CR and LF line endings to LF. A CR at the end of
// one chunk and an LF at the start of the next still count as one break.
type newlines struct {
	prevCR bool
}

// Newlines returns a transformer that rewrites every line ending to LF.
func Newlines() transform.Transformer {
	return &newlines{}
}

func (n *newlines) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c == '\n' && n.prevCR {
			// хвост CRLF: перевод строки уже записан
			n.prevCR = false
			nSrc++
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		n.prevCR = c == '\r'
		if n.prevCR {
			c = '\n'
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

func (n *newlines) Reset() {
	n.prevCR = false
}
