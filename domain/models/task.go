package models

import "time"

// TaskStatus สถานะของ task ที่เก็บไว้ใน store
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusLate    TaskStatus = "LATE"
	TaskStatusDone    TaskStatus = "DONE"
)

// ValidTaskStatuses ค่า status ที่ update ได้
var ValidTaskStatuses = []TaskStatus{TaskStatusPending, TaskStatusLate, TaskStatusDone}

// IsValid ตรวจสอบว่าเป็น status ที่รู้จัก (case-sensitive)
func (s TaskStatus) IsValid() bool {
	for _, v := range ValidTaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Task - ID, Title, Content, DueDate ไม่เปลี่ยนหลังสร้าง มีแค่ Status ที่แก้ได้
type Task struct {
	ID      int
	Title   string
	Content string
	DueDate time.Time
	Status  TaskStatus
}

// NewTask สร้าง task ใหม่ที่ยังไม่มี ID (store เป็นคนกำหนด)
func NewTask(title, content string, dueDate time.Time) *Task {
	return &Task{
		Title:   title,
		Content: content,
		DueDate: dueDate,
		Status:  TaskStatusPending,
	}
}

// IsLate true ถ้า due date ผ่านไปแล้วเมื่อเทียบกับ now
func (t *Task) IsLate(now time.Time) bool {
	return t.DueDate.Before(now)
}
