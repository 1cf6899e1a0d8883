package serviceimpl

import (
	"context"
	"fmt"

	"todo-service/domain/models"
	"todo-service/domain/ports"
	"todo-service/domain/services"
)

// TaskStatsJobID ID ของ job ใน scheduler
const TaskStatsJobID = "todo-stats"

// TaskStatsJob สรุปจำนวน task ลง todo logger (debug) อ่านอย่างเดียว
type TaskStatsJob struct {
	taskService services.TaskService
	log         ports.LoggerPort
}

func NewTaskStatsJob(taskService services.TaskService, log ports.LoggerPort) *TaskStatsJob {
	return &TaskStatsJob{
		taskService: taskService,
		log:         log,
	}
}

func (j *TaskStatsJob) Run(ctx context.Context) {
	counts, err := j.taskService.GetStatusCounts(ctx)
	if err != nil {
		j.log.Error(ctx, fmt.Sprintf("Failed to collect TODO stats: %v", err))
		return
	}

	j.log.Debug(ctx, fmt.Sprintf("TODO stats: total %d | PENDING %d | LATE %d | DONE %d",
		counts[models.TaskFilterAll],
		counts[models.TaskFilterPending],
		counts[models.TaskFilterLate],
		counts[models.TaskFilterDone],
	))
}
