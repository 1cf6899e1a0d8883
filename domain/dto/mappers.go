package dto

import (
	"todo-service/domain/models"
)

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:      task.ID,
		Title:   task.Title,
		Content: task.Content,
		Status:  string(task.Status),
		DueDate: task.DueDate.UnixMilli(),
	}
}

func TasksToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *TaskToTaskResponse(&tasks[i])
	}
	return responses
}

func CreateTaskRequestToTask(req *CreateTaskRequest) *models.Task {
	return models.NewTask(req.Title, req.Content, req.DueDate.Time)
}

func TaskEventToMessage(event *models.TaskEvent) *TaskEventMessage {
	msg := &TaskEventMessage{
		Type:           string(event.Type),
		Task:           *TaskToTaskResponse(&event.Task),
		PreviousStatus: string(event.PreviousStatus),
		OccurredAt:     event.OccurredAt.UnixMilli(),
	}
	if event.Type == models.TaskEventDeleted {
		remaining := event.Remaining
		msg.Remaining = &remaining
	}
	return msg
}
