package decycle

import "github.com/roach88/cyclejson/internal/ir"

// coerce turns a *ir.BigInt that reached the callback into its decimal
// string. A BigInt with a conversion hook never gets here: the encoder
// applies the hook first and its result passes through untouched.
func coerce(value ir.Value) ir.Value {
	if b, ok := value.(*ir.BigInt); ok {
		return ir.String(b.String())
	}
	return value
}
