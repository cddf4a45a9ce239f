package normalize

import "errors"

// Error taxonomy for the construction/normalization boundary. The core
// solver itself never returns an error; every error a caller can observe
// originates here.
var (
	ErrVarNotBinary             = errors.New("normalize: variable is not restricted to {0,1}")
	ErrNoVars                   = errors.New("normalize: problem has no variables")
	ErrProblemSenseNotMinimize  = errors.New("normalize: unable to convert problem to minimization")
	ErrNoObjective              = errors.New("normalize: objective is missing")
	ErrUnexpectedConstraintType = errors.New("normalize: constraint has no recognized sense")
	ErrFileRead                 = errors.New("normalize: failed to read input file")
	ErrParse                    = errors.New("normalize: failed to parse input")
)
