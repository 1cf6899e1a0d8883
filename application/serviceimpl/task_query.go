package serviceimpl

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"todo-service/domain/models"
)

// filterTasks - LATE คิดจาก due date ณ เวลาที่ query ไม่ได้ดูจาก status ที่เก็บไว้
// ใช้กติกาเดียวกันทั้ง /todo/content และ /todo/size
func filterTasks(tasks []models.Task, filter models.TaskFilter, now time.Time) []models.Task {
	if filter == models.TaskFilterAll {
		return tasks
	}

	filtered := make([]models.Task, 0, len(tasks))
	for i := range tasks {
		if matchesFilter(&tasks[i], filter, now) {
			filtered = append(filtered, tasks[i])
		}
	}
	return filtered
}

func matchesFilter(task *models.Task, filter models.TaskFilter, now time.Time) bool {
	switch filter {
	case models.TaskFilterAll:
		return true
	case models.TaskFilterLate:
		return task.IsLate(now)
	default:
		return string(task.Status) == string(filter)
	}
}

// sortTasks เรียงแบบ stable ค่าเท่ากันคงลำดับเดิม (ลำดับที่ insert)
func sortTasks(tasks []models.Task, sortBy models.TaskSortField) {
	switch sortBy {
	case models.TaskSortByDueDate:
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return a.DueDate.Compare(b.DueDate)
		})
	case models.TaskSortByTitle:
		// Collator ไม่ thread-safe สร้างใหม่ทุกครั้ง
		c := collate.New(language.English)
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return c.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(tasks, func(a, b models.Task) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}
}

// countByFilter นับจำนวน task ของทุก filter ในรอบเดียว
func countByFilter(tasks []models.Task, now time.Time) map[models.TaskFilter]int {
	counts := map[models.TaskFilter]int{
		models.TaskFilterAll:     len(tasks),
		models.TaskFilterPending: 0,
		models.TaskFilterLate:    0,
		models.TaskFilterDone:    0,
	}
	for i := range tasks {
		for _, f := range []models.TaskFilter{models.TaskFilterPending, models.TaskFilterLate, models.TaskFilterDone} {
			if matchesFilter(&tasks[i], f, now) {
				counts[f]++
			}
		}
	}
	return counts
}
