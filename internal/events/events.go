package events

import "auction-engine/utils"

// Event names emitted by the engine.
const (
	BidAdmitted     = "bid_admitted"
	AuctionClosed   = "auction_closed"
	PacketActivated = "packet_activated"
)

// Sink is the notification/audit collaborator. Emission is fire-and-forget:
// the engine never waits on delivery and never fails a command because a
// sink did.
type Sink interface {
	Emit(event string, fields map[string]any)
}

// LogSink writes events to the structured log. It stands in for the external
// notification pipeline in a single-process deployment.
type LogSink struct{}

// Emit logs the event with its fields at info level.
func (LogSink) Emit(event string, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["event"] = event
	utils.Info("engine event", fields)
}
