package scval

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
)

const limbBits = 64

func (c *codec) encodeLimbs(writer io.Writer, limbs ...uint64) error {
	for _, limb := range limbs {
		err := c.encodeNumber(writer, limb)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *codec) decodeLimbs(reader *bytes.Reader, count int) ([]uint64, error) {
	limbs := make([]uint64, count)
	for i := range limbs {
		limb, err := decodeNumber[uint64](reader)
		if err != nil {
			return nil, err
		}

		limbs[i] = limb
	}

	return limbs, nil
}

func (c *codec) decodeBigNumber(reader *bytes.Reader, kind Kind) (Value, error) {
	switch kind {
	case KindU128:
		limbs, err := c.decodeLimbs(reader, 2)
		if err != nil {
			return nil, err
		}

		return U128Value{Hi: limbs[0], Lo: limbs[1]}, nil
	case KindI128:
		limbs, err := c.decodeLimbs(reader, 2)
		if err != nil {
			return nil, err
		}

		return I128Value{Hi: int64(limbs[0]), Lo: limbs[1]}, nil
	case KindU256:
		limbs, err := c.decodeLimbs(reader, 4)
		if err != nil {
			return nil, err
		}

		return U256Value{HiHi: limbs[0], HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
	case KindI256:
		limbs, err := c.decodeLimbs(reader, 4)
		if err != nil {
			return nil, err
		}

		return I256Value{HiHi: int64(limbs[0]), HiLo: limbs[1], LoHi: limbs[2], LoLo: limbs[3]}, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a big number kind", ErrTypeMismatch, kind)
	}
}

// limbsToBig assembles most-significant-first limbs into a big.Int, reading them as two's complement when signed
func limbsToBig(signed bool, limbs ...uint64) *big.Int {
	n := new(big.Int)
	for _, limb := range limbs {
		n.Lsh(n, limbBits)
		n.Or(n, new(big.Int).SetUint64(limb))
	}

	if signed && len(limbs) > 0 && limbs[0]>>(limbBits-1) == 1 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(limbBits*len(limbs)))
		n.Sub(n, modulus)
	}

	return n
}

// bigToLimbs splits n into count most-significant-first limbs, using two's complement for negative numbers
func bigToLimbs(n *big.Int, count int, signed bool) ([]uint64, error) {
	if n == nil {
		return nil, ErrNilValue
	}

	bits := uint(limbBits * count)
	modulus := new(big.Int).Lsh(big.NewInt(1), bits)

	minValue := big.NewInt(0)
	maxValue := new(big.Int).Sub(modulus, big.NewInt(1))
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), bits-1)
		minValue = new(big.Int).Neg(half)
		maxValue = new(big.Int).Sub(half, big.NewInt(1))
	}

	if n.Cmp(minValue) < 0 || n.Cmp(maxValue) > 0 {
		return nil, fmt.Errorf("%w: %s does not fit in %d bits", ErrNumberOutOfRange, n.String(), bits)
	}

	unsigned := new(big.Int).Set(n)
	if unsigned.Sign() < 0 {
		unsigned.Add(unsigned, modulus)
	}

	mask := new(big.Int).SetUint64(^uint64(0))
	limbs := make([]uint64, count)
	for i := count - 1; i >= 0; i-- {
		limbs[i] = new(big.Int).And(unsigned, mask).Uint64()
		unsigned.Rsh(unsigned, limbBits)
	}

	return limbs, nil
}
