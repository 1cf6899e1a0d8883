package nats

import "testing"

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		prefix    string
		eventType string
		want      string
	}{
		{"", "created", "todo.events.created"},
		{"todo.events", "deleted", "todo.events.deleted"},
		{"staging.todo", "status_updated", "staging.todo.status_updated"},
	}

	for _, tt := range tests {
		if got := subjectFor(tt.prefix, tt.eventType); got != tt.want {
			t.Errorf("subjectFor(%q, %q) = %q, want %q", tt.prefix, tt.eventType, got, tt.want)
		}
	}
}
