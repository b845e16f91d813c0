package handoff

import (
	"fmt"
	"strings"

	"terra-assistant-be/pkg/rag/intent"
	"terra-assistant-be/pkg/store"

	"github.com/google/uuid"
)

// OfferThreshold is the user-message count at which the assistant offers a
// human consultant once per session.
const OfferThreshold = 6

// Decision is the policy outcome for one turn.
type Decision struct {
	// Immediate short-circuits the turn: no primary completion is made and
	// the fixed handoff message is emitted instead.
	Immediate bool

	// DelayedOffer appends the consultant offer after a normally generated
	// answer. Fires at most once per session.
	DelayedOffer bool

	// BookingRef accompanies an immediate handoff so the visitor can quote
	// it when the callback happens.
	BookingRef string
}

// Triggered reports whether the session transitioned to HandoffOffered.
func (d Decision) Triggered() bool {
	return d.Immediate || d.DelayedOffer
}

// Evaluate applies the Answering -> HandoffOffered transition rules and
// marks the session flag when either trigger fires.
func Evaluate(session *store.Session, classified intent.Intent) Decision {
	var d Decision

	if classified == intent.IntentHandoff {
		d.Immediate = true
		d.BookingRef = newBookingRef()
	} else if session.UserMessageCount >= OfferThreshold && !session.HandoffOfferShown {
		d.DelayedOffer = true
	}

	if d.Triggered() {
		session.HandoffOfferShown = true
	}
	return d
}

// Message returns the fixed handoff text for an immediate handoff.
func Message(bookingRef string) string {
	return fmt.Sprintf(
		"Of course - I'll arrange for a TerraPeak consultant to call you back within 1 working day. "+
			"Your booking reference is %s. For immediate needs you can reach us at +6580619479, "+
			"or email connect@terrapeakgroup.com.",
		bookingRef,
	)
}

// OfferSuffix is appended after a generated answer when the threshold
// trigger fires.
const OfferSuffix = "\n\nBy the way, if you'd prefer to go through this with a human consultant, " +
	"just say so and I'll arrange a callback within 1 working day."

func newBookingRef() string {
	id := strings.ToUpper(uuid.New().String())
	return "TP-" + id[:8]
}
