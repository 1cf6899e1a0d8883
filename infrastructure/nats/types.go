package nats

// DefaultSubjectPrefix - subject จริงคือ <prefix>.<event type> เช่น todo.events.created
const DefaultSubjectPrefix = "todo.events"

// subjectFor สร้าง subject ของ event
func subjectFor(prefix, eventType string) string {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return prefix + "." + eventType
}
