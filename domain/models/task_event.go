package models

import "time"

// TaskEventType ชนิดของ event ที่ส่งออกหลังจาก task เปลี่ยนแปลง
type TaskEventType string

const (
	TaskEventCreated       TaskEventType = "created"
	TaskEventStatusUpdated TaskEventType = "status_updated"
	TaskEventDeleted       TaskEventType = "deleted"
)

// TaskEvent - snapshot ของ task ณ ตอนที่เกิด event
type TaskEvent struct {
	Type           TaskEventType
	Task           Task
	PreviousStatus TaskStatus // เฉพาะ status_updated
	Remaining      int        // จำนวน task ที่เหลือหลังลบ (เฉพาะ deleted)
	OccurredAt     time.Time
}
