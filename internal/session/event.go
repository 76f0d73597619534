package session

import (
	"time"

	"github.com/tarusov/etwkernel/internal/provider"
	"github.com/tarusov/etwkernel/value"
)

// Names of the fields of Event.Header.
const (
	OperationField       = "operation"
	CategoryField        = "category"
	ProcessIDField       = "process_id"
	ThreadIDField        = "thread_id"
	ProcessorNumberField = "processor_number"
)

// Event is a single decoded kernel event. Header and Payload are built
// fresh for every event; callbacks may keep them.
type Event struct {
	Timestamp time.Time     `json:"ts"`
	Header    *value.Struct `json:"header"`
	Payload   *value.Struct `json:"payload"`
	Source    EventHeader   `json:"source"`
}

// Operation returns the decoded operation name, e.g. "Start".
func (e *Event) Operation() string {
	v, _ := e.Header.Get(OperationField)
	s, _ := value.Text(v)
	return s
}

// Category returns the decoded category name, e.g. "Process".
func (e *Event) Category() string {
	v, _ := e.Header.Get(CategoryField)
	s, _ := value.Text(v)
	return s
}

// EventHeader contains the record header as it was captured.
//
// EventHeader fields is self-descriptive. If you need more info refer to the
// original struct docs:
// https://docs.microsoft.com/en-us/windows/win32/api/evntcons/ns-evntcons-event_header
type EventHeader struct {
	Descriptor EventDescriptor `json:"descriptor"`

	ThreadID        uint32        `json:"thread_id"`
	ProcessID       uint32        `json:"process_id"`
	ProcessorNumber uint8         `json:"processor_number"`
	RawTimeStamp    uint64        `json:"raw_ts"`
	ProviderID      provider.GUID `json:"provider_guid"`
	Flags           uint16        `json:"flags"`
}

// EventDescriptor holds the part of EVENT_DESCRIPTOR kernel events are
// dispatched on.
type EventDescriptor struct {
	Version uint8 `json:"version"`
	OpCode  uint8 `json:"op_code"`
}

func newHeader(operation, category string, h *EventHeader) *value.Struct {
	return value.NewStruct(
		value.Field{Name: OperationField, Value: value.String(operation)},
		value.Field{Name: CategoryField, Value: value.String(category)},
		value.Field{Name: ProcessIDField, Value: value.ULong(h.ProcessID)},
		value.Field{Name: ThreadIDField, Value: value.ULong(h.ThreadID)},
		value.Field{Name: ProcessorNumberField, Value: value.UChar(h.ProcessorNumber)},
	)
}
