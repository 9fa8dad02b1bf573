package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrInvalidRounds is returned when the round count cannot be read as an integer.
var ErrInvalidRounds = errors.New("invalid number of updates")

// Welcome prints the banner shown before anything else.
func Welcome(w io.Writer) {
	fmt.Fprintln(w, "Welcome to the Stock Tracker!")
}

// ReadRounds prompts on w and reads one integer token from r.
// Negative counts are returned as 0.
func ReadRounds(r io.Reader, w io.Writer) (int, error) {
	fmt.Fprint(w, "Enter number of simulated updates: ")

	var token string
	if _, err := fmt.Fscan(r, &token); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRounds, err)
	}

	rounds, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidRounds, err)
	}

	if rounds < 0 {
		return 0, nil
	}
	return rounds, nil
}
