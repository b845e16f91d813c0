package response

// User-safe fallback strings. The visitor never sees a raw error code or
// stack trace.
const (
	// RateLimitApology is returned on rate-limit-class failures. The caller
	// may prompt the user to resend; we never retry within the turn.
	RateLimitApology = "I'm receiving a lot of questions right now. Please give me a moment and send your message again."

	// ServiceErrorApology covers every other completion failure.
	ServiceErrorApology = "Sorry, something went wrong on my end while preparing your answer. Please try again in a moment."
)
