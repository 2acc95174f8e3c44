package common

type Statuser interface {
	Status() Status
}

// CheckStatus checks the status of a variadic
// number of statusers and returns the first non-Continue result
func CheckStatus(cs ...Statuser) Status {
	for _, val := range cs {
		c := val.Status()
		if c != Continue {
			return c
		}
	}
	return Continue
}

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[StepConverged] = "StepConverged"
	statusStrings[ResidualConverged] = "ResidualConverged"
	statusStrings[ExactRoot] = "ExactRoot"

	statusStrings[MaximumIterations] = "MaximumIterations"
	statusStrings[InvalidBracket] = "InvalidBracket"
	statusStrings[DerivativeFault] = "DerivativeFault"
}

// Status is a type for expressing how a root search ended.
// Zero signifies neither convergence nor failure so the solver should continue.
// Positive values indicate a successfully located root,
// negative values express failure in some way
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

const (
	Continue Status = iota
	// StepConverged means the change between successive iterates dropped to
	// the tolerance. Newton-Raphson converges this way; it says nothing about
	// the size of the residual at the final iterate.
	StepConverged
	// ResidualConverged means |f(x)| dropped to the tolerance.
	ResidualConverged
	// ExactRoot means f(x) evaluated to exactly zero.
	ExactRoot
)

const (
	_                        = iota
	MaximumIterations Status = -1 * iota
	InvalidBracket
	DerivativeFault
)

var lastStatus Status = 256
