package adoption

import "errors"

// FreeAdoptionReference is recorded as the payment reference when a
// zero-price adoption settles without going through the gateway.
const FreeAdoptionReference = "FREE-ADOPTION"

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
