// Direction bookkeeping shared by the elevator-style policies (SCAN, C-SCAN,
// LOOK, C-LOOK). The sweep is an explicit two-state machine with a single
// transition rule: no eligible candidate on the current side of the head
// implies a flip.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Direction is the head's travel direction for elevator-style policies.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection validates a direction selector string.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == DirectionUp {
		return DirectionDown
	}
	return DirectionUp
}

// sweep holds the mutable direction state of a SCAN/LOOK run.
type sweep struct {
	dir Direction
}

// next selects the request the head services next from a non-empty eligible
// set. Moving up it takes the nearest track at or above the head; when that
// side is exhausted it flips and takes the farthest track below the head
// (symmetrically for down). Because the eligible set is non-empty, a flip
// always finds a candidate on the other side.
func (s *sweep) next(elig []*Request, head int) *Request {
	if s.dir == DirectionUp {
		if r := lowestAtOrAbove(elig, head); r != nil {
			return r
		}
		s.flip(head)
		return highestBelow(elig, head)
	}
	if r := highestAtOrBelow(elig, head); r != nil {
		return r
	}
	s.flip(head)
	return lowestAbove(elig, head)
}

func (s *sweep) flip(head int) {
	logrus.Debugf("sweep exhausted %s of head %d, reversing to %s", s.dir, head, s.dir.Flip())
	s.dir = s.dir.Flip()
}

// The candidate selectors below all break track ties by working-set order:
// the first request reaching the extreme wins, keeping runs deterministic.

func lowestAtOrAbove(reqs []*Request, head int) *Request {
	var best *Request
	for _, r := range reqs {
		if r.Track < head {
			continue
		}
		if best == nil || r.Track < best.Track {
			best = r
		}
	}
	return best
}

func lowestAbove(reqs []*Request, head int) *Request {
	var best *Request
	for _, r := range reqs {
		if r.Track <= head {
			continue
		}
		if best == nil || r.Track < best.Track {
			best = r
		}
	}
	return best
}

func highestAtOrBelow(reqs []*Request, head int) *Request {
	var best *Request
	for _, r := range reqs {
		if r.Track > head {
			continue
		}
		if best == nil || r.Track > best.Track {
			best = r
		}
	}
	return best
}

func highestBelow(reqs []*Request, head int) *Request {
	var best *Request
	for _, r := range reqs {
		if r.Track >= head {
			continue
		}
		if best == nil || r.Track > best.Track {
			best = r
		}
	}
	return best
}
