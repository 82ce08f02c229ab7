package event_bus

// Events published by the stores. The projection cache subscribes to
// both; the core itself stays a pure function of entries + settings.
const (
	EntriesChanged  EventType = "entries.changed"
	SettingsChanged EventType = "settings.changed"
)
