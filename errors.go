package pathcases

import (
	"errors"
	"fmt"
)

var ErrInvalidGrammar = errors.New("invalid grammar")

var ErrTooManyCandidates = fmt.Errorf("%w: too many candidates", ErrInvalidGrammar)
