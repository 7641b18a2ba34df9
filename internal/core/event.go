package core

// Event is a discrete effect notification emitted by a game during a tick.
// Events carry no simulation authority: they exist for the platform's audio
// and visual feedback and can be dropped without changing game outcomes.
type Event int

const (
	EventNone        Event = iota
	EventLanded            // Body landed on a platform
	EventBoosted           // Landed on a boost platform (super jump)
	EventDoubleJumped      // Mid-air double jump consumed
	EventPoweredUp         // Double-jump charge collected
	EventBroke             // Breakable platform destroyed by landing
	EventKnocked           // Knocked back by a drifting hazard
	EventDestroyed         // Destroyed by a singularity core
	EventRunOver           // Run ended (fell off-screen or destroyed)
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventLanded:
		return "Landed"
	case EventBoosted:
		return "Boosted"
	case EventDoubleJumped:
		return "DoubleJumped"
	case EventPoweredUp:
		return "PoweredUp"
	case EventBroke:
		return "Broke"
	case EventKnocked:
		return "Knocked"
	case EventDestroyed:
		return "Destroyed"
	case EventRunOver:
		return "RunOver"
	default:
		return "None"
	}
}
