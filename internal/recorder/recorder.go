package recorder

import "GoldSentinel/internal/model"

// Recorder appends analyzed signals to the session log.
type Recorder interface {
	RecordSignal(sig *model.CompositeSignal) error
	Close() error
}
