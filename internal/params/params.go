package params

// Interactive console prompts for the three generation parameters. Kept
// separate from the generation core; the core never reads input itself.

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"
)

// Source prompts the operator for the key length, the random seed and the
// public exponent. Input comes from an injected reader so the whole
// sequence can be scripted in tests.
type Source struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a source reading prompts' answers from in and writing prompt
// text to out.
func New(in io.Reader, out io.Writer) *Source {
	return &Source{in: bufio.NewReader(in), out: out}
}

// KeyLength asks for the modulus bit length nlen. Beyond integer parsing
// the value is passed through unvalidated.
func (s *Source) KeyLength() (int, error) {
	fmt.Fprintln(s.out, "Recommended key sizes are 2048 or 3072 for pseudo primes")
	fmt.Fprint(s.out, "Enter an even key size (nlen): ")

	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	var nlen int
	if _, err := fmt.Sscanf(line, "%d", &nlen); err != nil {
		return 0, fmt.Errorf("key size: %w", err)
	}
	return nlen, nil
}

// Seed asks whether to type a seed or derive one from the wall clock.
// Anything other than Y selects the clock.
func (s *Source) Seed() (int64, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "  --> Options for the random seed. <--")
	fmt.Fprintln(s.out, "      Choose Y to type an integer")
	fmt.Fprint(s.out, "      or N to use the current time: ")

	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	if !isYes(line) {
		return time.Now().Unix(), nil
	}

	fmt.Fprint(s.out, "\t Enter the seed: ")
	line, err = s.readLine()
	if err != nil {
		return 0, err
	}
	var seed int64
	if _, err := fmt.Sscanf(line, "%d", &seed); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return seed, nil
}

// Exponent asks for a fixed exponent value or the directive to sample one.
// A typed value is accepted as-is apart from a positivity check: no parity
// or size validation, matching the permissive original behavior. The
// second return is true when a random exponent should be sampled instead.
func (s *Source) Exponent() (*big.Int, bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "  --> Options for the exponent e. <--")
	fmt.Fprintln(s.out, "      Choose Y to type an integer")
	fmt.Fprint(s.out, "      or N to calculate a random number: ")

	line, err := s.readLine()
	if err != nil {
		return nil, false, err
	}
	if !isYes(line) {
		return nil, true, nil
	}

	fmt.Fprint(s.out, "\t Enter the value of e (often used are 3, 5, 17, 257, 65537): ")
	line, err = s.readLine()
	if err != nil {
		return nil, false, err
	}
	e, ok := new(big.Int).SetString(strings.TrimSpace(line), 10)
	if !ok || e.Sign() <= 0 {
		return nil, false, fmt.Errorf("exponent: %q is not a positive integer", strings.TrimSpace(line))
	}
	return e, false, nil
}

// readLine tolerates a missing trailing newline on the last line of
// scripted input.
func (s *Source) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

func isYes(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "Y") || strings.HasPrefix(line, "y")
}
