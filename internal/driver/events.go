package driver

import "time"

// Status captures the progress state of one file.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being lexed and parsed.
	StatusWorking Status = "working"
	// StatusDone indicates the tree is ready.
	StatusDone Status = "done"
	// StatusError indicates the file could not be loaded.
	StatusError Status = "error"
)

// Event reports progress for a single file.
type Event struct {
	File    string
	Status  Status
	Cached  bool
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. ParseDir calls OnEvent from
// several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}
