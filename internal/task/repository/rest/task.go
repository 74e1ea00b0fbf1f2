package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/task/repository"
	pkgLog "conversational-task-assistant/pkg/log"
)

type store struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Store backed by the task store REST API.
func New(client *Client, l pkgLog.Logger) repository.Store {
	return &store{client: client, l: l}
}

func (s *store) Create(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	req := createTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Recurrence:  opt.Recurrence,
	}

	var payload taskPayload
	path := fmt.Sprintf("/api/%s/tasks", url.PathEscape(sc.UserID))
	if err := s.client.doJSON(ctx, http.MethodPost, path, req, &payload); err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return toModel(payload), nil
}

func (s *store) List(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	q := url.Values{}
	if opt.Status != "" {
		q.Set("status", opt.Status)
	}
	if opt.Priority != 0 {
		q.Set("priority", strconv.Itoa(opt.Priority))
	}
	if opt.Keyword != "" {
		q.Set("keyword", opt.Keyword)
	}

	path := fmt.Sprintf("/api/%s/tasks", url.PathEscape(sc.UserID))
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	var payloads []taskPayload
	if err := s.client.doJSON(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(payloads))
	for _, p := range payloads {
		tasks = append(tasks, toModel(p))
	}
	return tasks, nil
}

func (s *store) SetCompleted(ctx context.Context, sc model.Scope, taskID string, completed bool) (model.Task, error) {
	var payload taskPayload
	path := fmt.Sprintf("/api/%s/tasks/%s/complete", url.PathEscape(sc.UserID), url.PathEscape(taskID))
	if err := s.client.doJSON(ctx, http.MethodPatch, path, completeTaskRequest{Completed: completed}, &payload); err != nil {
		return model.Task{}, fmt.Errorf("set task completion: %w", err)
	}
	return toModel(payload), nil
}

func (s *store) Update(ctx context.Context, sc model.Scope, taskID string, opt repository.UpdateTaskOptions) (model.Task, error) {
	req := updateTaskRequest{
		Title:       opt.Title,
		Description: opt.Description,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		Recurrence:  opt.Recurrence,
	}

	var payload taskPayload
	path := fmt.Sprintf("/api/%s/tasks/%s", url.PathEscape(sc.UserID), url.PathEscape(taskID))
	if err := s.client.doJSON(ctx, http.MethodPut, path, req, &payload); err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	return toModel(payload), nil
}

func (s *store) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	path := fmt.Sprintf("/api/%s/tasks/%s", url.PathEscape(sc.UserID), url.PathEscape(taskID))
	if err := s.client.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *store) SetRecurrence(ctx context.Context, sc model.Scope, taskID string, pattern string) (model.Task, error) {
	var payload taskPayload
	path := fmt.Sprintf("/api/%s/tasks/%s/recurrence", url.PathEscape(sc.UserID), url.PathEscape(taskID))
	if err := s.client.doJSON(ctx, http.MethodPut, path, recurrenceRequest{Pattern: pattern}, &payload); err != nil {
		return model.Task{}, fmt.Errorf("set task recurrence: %w", err)
	}
	return toModel(payload), nil
}

func toModel(p taskPayload) model.Task {
	return model.Task{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Priority:    p.Priority,
		DueDate:     p.DueDate,
		Completed:   p.Completed,
		Recurrence:  model.Recurrence(p.Recurrence),
	}
}
