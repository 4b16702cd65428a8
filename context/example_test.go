package context_test

import (
	"fmt"

	"github.com/db47h/hugefloat"
	"github.com/db47h/hugefloat/context"
	"github.com/pkg/errors"
)

// balance sums a ledger of signed amounts using ctx's rounding mode and
// precision. Overflowing entries may produce infinities of both signs, whose
// sum is undefined, so we need to check errors.
func balance(ctx *context.Context, amounts ...*hugefloat.Float) (*hugefloat.Float, error) {
	sum := ctx.New()
	for _, a := range amounts {
		ctx.Add(sum, sum, a)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "error computing balance")
	}
	return sum, nil
}

// Example demonstrates various features of Contexts.
func Example() {
	ctx := context.New(64, hugefloat.ToNearestEven)
	a, b, c := ctx.NewInt64(1200), ctx.NewFloat64(-0.25), ctx.NewUint64(18446744073709551615)
	sum, err := balance(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to balance %v %v %v: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("balance of %v %v %v: %v\n", a, b, c, sum)

	a, b = new(hugefloat.Float).SetInf(false), new(hugefloat.Float).SetInf(true)
	sum, err = balance(ctx, a, b, c)
	if err != nil {
		fmt.Printf("failed to balance %v %v %v: %v\n", a, b, c, err)
		return
	}
	fmt.Printf("balance of %v %v %v: %v\n", a, b, c, sum)
	//
	// Output:
	// balance of 0.12@4 -0.25@0 0.18446744073709551615@20: 0.18446744073709552814@20
	// failed to balance +Inf -Inf 0.18446744073709551615@20: error computing balance: addition of infinities with opposite signs
}
