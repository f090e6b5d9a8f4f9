package money

import "errors"

// ErrAmountOutOfBounds is returned when a parsed or constructed amount is
// negative or exceeds Max.
var ErrAmountOutOfBounds = errors.New("money: amount out of bounds")
