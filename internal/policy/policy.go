// Package policy holds the content-visibility and consensus-filtering rules.
// Everything here is pure: callers supply the viewer's verification state and
// a freet's flags/counters, and get a decision back. The freet service applies
// CanView as the filter for both feed queries; the reaction repository calls
// ConsensusFiltered inside the same transaction that mutates the counters.
package policy

import (
	"strconv"

	"fritter/internal/models"
)

const (
	// AdultAge is the minimum declared age that unlocks age-restricted content.
	AdultAge = 18

	// consensusMinVotes is the reaction volume a freet must exceed before the
	// community consensus rule can hide it.
	consensusMinVotes = 5
)

// Viewer is the slice of a user's state the visibility predicate needs.
// The zero value is an anonymous viewer.
type Viewer struct {
	ID       uint
	Verified bool
	Age      string
}

// ViewerFor builds a Viewer from a user record. A nil user is anonymous.
func ViewerFor(user *models.User) Viewer {
	if user == nil {
		return Viewer{}
	}
	return Viewer{ID: user.ID, Verified: user.Verified, Age: user.Age}
}

// IsAdult reports whether a declared age string counts as a verified adult
// age. The "unknown" sentinel and anything that does not parse as an integer
// are treated as not-adult.
func IsAdult(age string) bool {
	if age == models.AgeUnknown {
		return false
	}
	n, err := strconv.Atoi(age)
	if err != nil {
		return false
	}
	return n >= AdultAge
}

// Adult reports whether the viewer is age-verified with a declared age of at
// least AdultAge.
func (v Viewer) Adult() bool {
	return v.Verified && IsAdult(v.Age)
}

// CanView decides whether the viewer may see the freet in a list view.
// Consensus-filtered freets are invisible to everyone, including the author.
// Verified adults see everything else; other viewers only see freets that are
// not age-restricted, or that they authored themselves.
func CanView(viewer Viewer, freet *models.Freet) bool {
	if freet.ConsensusFiltered {
		return false
	}
	if viewer.Adult() {
		return true
	}
	return !freet.AgeRestrictedViewing || freet.AuthorID == viewer.ID
}

// ConsensusFiltered recomputes the community-consensus flag from the current
// counters: hidden iff more than consensusMinVotes reactions exist and
// dislikes hold a strict majority. The flag is not sticky; it clears as soon
// as either condition stops holding.
func ConsensusFiltered(likes, dislikes int) bool {
	total := likes + dislikes
	return total > consensusMinVotes && 2*dislikes > total
}
