package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-task-tracker/internal/adapter"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

const tasksPath = "/v1/tasks"

type taskService struct {
	gateway adapter.Gateway
	prefs   PreferenceService
	log     *logger.Logger

	mu      sync.RWMutex
	tasks   []models.Task
	view    models.ViewPreferences
	derived []models.Task
	dirty   bool
}

// NewTaskService builds the write-through task cache. The cache starts empty;
// call ApplyPreferences with restored preferences and then Load.
func NewTaskService(gateway adapter.Gateway, prefs PreferenceService, log *logger.Logger) TaskService {
	return &taskService{
		gateway: gateway,
		prefs:   prefs,
		log:     log,
		view:    models.DefaultViewPreferences(),
		dirty:   true,
	}
}

func (t *taskService) Load(ctx context.Context) ([]models.Task, error) {
	body, err := t.gateway.Get(ctx, tasksPath)
	if err != nil {
		t.replaceAll(nil)
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	var tasks []models.Task
	if err = json.Unmarshal(body, &tasks); err != nil {
		t.replaceAll(nil)
		return nil, fmt.Errorf("decode tasks response: %w", err)
	}

	t.replaceAll(tasks)
	t.log.Debug().Int("count", len(tasks)).Msg("task cache loaded")

	return t.Tasks(), nil
}

func (t *taskService) Tasks() []models.Task {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tasks := make([]models.Task, len(t.tasks))
	copy(tasks, t.tasks)
	return tasks
}

func (t *taskService) View() []models.Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.dirty {
		t.derived = deriveView(t.tasks, t.view)
		t.dirty = false
	}

	view := make([]models.Task, len(t.derived))
	copy(view, t.derived)
	return view
}

func (t *taskService) Preferences() models.ViewPreferences {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.view
}

func (t *taskService) Create(ctx context.Context, draft models.CreateTaskRequest) (models.Task, error) {
	body, err := t.gateway.Post(ctx, tasksPath, draft)
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	var created models.Task
	if err = json.Unmarshal(body, &created); err != nil {
		return models.Task{}, fmt.Errorf("decode created task: %w", err)
	}

	t.mu.Lock()
	t.tasks = append([]models.Task{created}, t.tasks...)
	t.dirty = true
	t.mu.Unlock()

	t.log.Debug().Str("task_id", created.ID).Msg("task created")

	return created, nil
}

func (t *taskService) Update(ctx context.Context, taskID string, updates models.UpdateTaskRequest) (models.Task, error) {
	body, err := t.gateway.Put(ctx, tasksPath+"/"+url.PathEscape(taskID), updates)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s: %w", taskID, err)
	}

	return t.applyServerCopy(taskID, body)
}

func (t *taskService) SetStatus(ctx context.Context, taskID string, status models.TaskStatus) (models.Task, error) {
	path := fmt.Sprintf("%s/%s/status?status=%s", tasksPath, url.PathEscape(taskID), status)
	body, err := t.gateway.Patch(ctx, path, nil)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task %s status: %w", taskID, err)
	}

	return t.applyServerCopy(taskID, body)
}

func (t *taskService) Delete(ctx context.Context, taskID string) error {
	if _, err := t.gateway.Delete(ctx, tasksPath+"/"+url.PathEscape(taskID)); err != nil {
		return fmt.Errorf("delete task %s: %w", taskID, err)
	}

	t.mu.Lock()
	kept := t.tasks[:0]
	for _, task := range t.tasks {
		if task.ID != taskID {
			kept = append(kept, task)
		}
	}
	t.tasks = kept
	t.dirty = true
	t.mu.Unlock()

	t.log.Debug().Str("task_id", taskID).Msg("task deleted")

	return nil
}

func (t *taskService) ApplyPreferences(prefs models.ViewPreferences) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Search is session-only; a restore never carries one.
	prefs.SearchQuery = t.view.SearchQuery
	t.view = prefs
	t.dirty = true
}

func (t *taskService) SetFilterStatus(ctx context.Context, filter models.FilterStatus) {
	t.mu.Lock()
	t.view.FilterStatus = filter
	t.dirty = true
	t.mu.Unlock()

	if err := t.prefs.SaveFilterStatus(ctx, filter); err != nil {
		t.log.Warn().Err(err).Msg("failed to persist status filter")
	}
}

func (t *taskService) SetFilterPriority(ctx context.Context, filter models.FilterPriority) {
	t.mu.Lock()
	t.view.FilterPriority = filter
	t.dirty = true
	t.mu.Unlock()

	if err := t.prefs.SaveFilterPriority(ctx, filter); err != nil {
		t.log.Warn().Err(err).Msg("failed to persist priority filter")
	}
}

func (t *taskService) SetSort(ctx context.Context, sort models.SortOrder) {
	t.mu.Lock()
	t.view.Sort = sort
	t.dirty = true
	t.mu.Unlock()

	if err := t.prefs.SaveSort(ctx, sort); err != nil {
		t.log.Warn().Err(err).Msg("failed to persist sort order")
	}
}

func (t *taskService) SetSearchQuery(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.view.SearchQuery = query
	t.dirty = true
}

func (t *taskService) replaceAll(tasks []models.Task) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tasks = tasks
	t.dirty = true
}

// applyServerCopy replaces the cached task matching taskID with the full
// object the server returned. Replacement is by identity, not by merging:
// the server copy supersedes the cached one entirely. Responses for
// concurrent mutations of the same id apply in completion order.
func (t *taskService) applyServerCopy(taskID string, body []byte) (models.Task, error) {
	var updated models.Task
	if err := json.Unmarshal(body, &updated); err != nil {
		return models.Task{}, fmt.Errorf("decode updated task: %w", err)
	}

	t.mu.Lock()
	for i := range t.tasks {
		if t.tasks[i].ID == taskID {
			t.tasks[i] = updated
			break
		}
	}
	t.dirty = true
	t.mu.Unlock()

	t.log.Debug().Str("task_id", taskID).Msg("task updated")

	return updated, nil
}
