// Simulation entry point: validates the algorithm selector and parameters,
// then dispatches to the selected policy.

package sim

import "fmt"

// Algorithm selector strings accepted by Simulate.
const (
	AlgorithmFCFS  = "fcfs"
	AlgorithmSSTF  = "sstf"
	AlgorithmSCAN  = "scan"
	AlgorithmCSCAN = "c_scan"
	AlgorithmLOOK  = "look"
	AlgorithmCLOOK = "c_look"
)

// DefaultDiskSize is the addressable track count assumed when the caller does
// not supply one; tracks then range over [0, 199].
const DefaultDiskSize = 200

// validAlgorithms maps accepted algorithm selector strings.
var validAlgorithms = map[string]bool{
	AlgorithmFCFS:  true,
	AlgorithmSSTF:  true,
	AlgorithmSCAN:  true,
	AlgorithmCSCAN: true,
	AlgorithmLOOK:  true,
	AlgorithmCLOOK: true,
}

// Algorithms returns the accepted selector strings in presentation order.
func Algorithms() []string {
	return []string{AlgorithmFCFS, AlgorithmSSTF, AlgorithmSCAN, AlgorithmCSCAN, AlgorithmLOOK, AlgorithmCLOOK}
}

// IsValidAlgorithm returns true if name is a recognized algorithm selector.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[name]
}

// NeedsDirection returns true for the policies that require an initial sweep
// direction.
func NeedsDirection(name string) bool {
	return name == AlgorithmSCAN || name == AlgorithmLOOK
}

// Simulate runs one policy over the supplied request set and returns its
// trace, seek total, and statistics. The request slice is never mutated; each
// run works on private copies, so the same set can be re-simulated under
// another policy. An empty request set is a defined no-op success. dir is
// consulted only by scan and look.
func Simulate(algorithm string, reqs []Request, initialHead, diskSize int, dir Direction) (Result, error) {
	if !IsValidAlgorithm(algorithm) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	if diskSize <= 0 {
		diskSize = DefaultDiskSize
	}
	if initialHead < 0 || initialHead >= diskSize {
		return Result{}, fmt.Errorf("%w: %d not in [0, %d)", ErrHeadOutOfRange, initialHead, diskSize)
	}
	if NeedsDirection(algorithm) {
		if dir != DirectionUp && dir != DirectionDown {
			return Result{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(dir))
		}
	}

	switch algorithm {
	case AlgorithmFCFS:
		return FCFS(reqs, initialHead), nil
	case AlgorithmSSTF:
		return SSTF(reqs, initialHead), nil
	case AlgorithmSCAN:
		return SCAN(reqs, initialHead, diskSize, dir), nil
	case AlgorithmCSCAN:
		return CSCAN(reqs, initialHead, diskSize), nil
	case AlgorithmLOOK:
		return LOOK(reqs, initialHead, dir), nil
	case AlgorithmCLOOK:
		return CLOOK(reqs, initialHead), nil
	default:
		panic(fmt.Sprintf("unhandled algorithm %q", algorithm))
	}
}
