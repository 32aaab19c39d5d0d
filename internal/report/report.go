package report

import (
	"fmt"
	"io"

	"github.com/magooey2/Generate-Prime-Pair/internal/keygen"
)

// Printer writes generation results as literal text. Results go to Out,
// warnings to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Seed echoes the seed in use, so time-derived runs can be reproduced.
func (p *Printer) Seed(seed int64) {
	fmt.Fprintf(p.Out, "\t Random seed:  %d\n\n", seed)
}

// Result prints the exponent e, both primes in decimal and binary, and the
// exponent d, in that order, then any warning about an undersized d.
func (p *Printer) Result(kp *keygen.KeyPair) {
	fmt.Fprintf(p.Out, "  The exponent e is: %s\n", kp.E.Text(10))

	fmt.Fprintf(p.Out, "  The first pseudo-prime is:  %s\n", kp.P.Text(10))
	fmt.Fprintf(p.Out, "  In binary it is:     %s\n", kp.P.Text(2))

	fmt.Fprintf(p.Out, "  The second pseudo-prime is: %s\n", kp.Q.Text(10))
	fmt.Fprintf(p.Out, "  In binary it is:     %s\n", kp.Q.Text(2))

	fmt.Fprintf(p.Out, "  The exponent d is:          %s\n", kp.D.Text(10))

	if kp.DUndersized {
		fmt.Fprintf(p.Err, "   ### WARNING: Exponent too small\n\n")
	}
}
