package bus

import (
	"math/big"
)

type Checker interface {
	AddCustody(*big.Int)
	AddStake(*big.Int)
}
