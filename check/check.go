package check

// Check measures one feature of a candidate of type C and grades it.
//
// Low and High bound the interpolation ramp. Covariant checks reward
// large values (value ≥ High grades 1, value < Low vetoes); contravariant
// checks reward small ones (value ≤ Low grades 1, value > High vetoes).
// Weight scales the check's share in the suite mean; weight 0 makes the
// check a pure veto guard.
type Check[C any] struct {
	Name        string
	Description string
	Low         float64
	High        float64
	Covariant   bool
	Weight      float64
	Failure     Failure
	Value       func(C) float64
}

// validate reports the first construction error of the check.
func (c Check[C]) validate() error {
	if c.Low >= c.High {
		return ErrBadBounds
	}
	if c.Weight < 0 {
		return ErrBadWeight
	}
	if c.Value == nil {
		return ErrNilValue
	}

	return nil
}

// grade maps a raw value into [0, 1] and reports whether it fell in the
// veto zone. Exactly hitting the worst bound grades 0 without vetoing.
func (c Check[C]) grade(value float64) (float64, bool) {
	span := c.High - c.Low
	if c.Covariant {
		switch {
		case value < c.Low:
			return 0, true
		case value >= c.High:
			return 1, false
		default:
			return (value - c.Low) / span, false
		}
	}
	switch {
	case value > c.High:
		return 0, true
	case value <= c.Low:
		return 1, false
	default:
		return (c.High - value) / span, false
	}
}
