package models

// TaskFilter ตัวกรองสำหรับ /todo/size และ /todo/content
type TaskFilter string

const (
	TaskFilterAll     TaskFilter = "ALL"
	TaskFilterPending TaskFilter = "PENDING"
	TaskFilterLate    TaskFilter = "LATE"
	TaskFilterDone    TaskFilter = "DONE"
)

func (f TaskFilter) IsValid() bool {
	switch f {
	case TaskFilterAll, TaskFilterPending, TaskFilterLate, TaskFilterDone:
		return true
	}
	return false
}

// TaskSortField ฟิลด์ที่ใช้เรียงผลลัพธ์
type TaskSortField string

const (
	TaskSortByID      TaskSortField = "ID"
	TaskSortByDueDate TaskSortField = "DUE_DATE"
	TaskSortByTitle   TaskSortField = "TITLE"
)

func (f TaskSortField) IsValid() bool {
	switch f {
	case TaskSortByID, TaskSortByDueDate, TaskSortByTitle:
		return true
	}
	return false
}
