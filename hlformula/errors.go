package hlformula

import "errors"

// ErrZeroFactor indicates a Mul or Mod node carried a zero constant factor:
// scaling by zero and reducing modulo zero are both semantic
// ill-formedness (a division-by-zero equivalent).
var ErrZeroFactor = errors.New("hlformula: zero factor in Mul or Mod")
