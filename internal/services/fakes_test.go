package services

import (
	"context"
	"sync"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]models.Task

	updateCalls int
	findCalls   int

	searchResults []models.Task
	searchErr     error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[int64]models.Task{}}
}

func (r *fakeTaskRepo) Store(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id int64) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	t, ok := r.tasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) FindByIDs(_ context.Context, ids []int64) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Task{}
	for _, id := range ids {
		if t, ok := r.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) FindAll(_ context.Context, filter models.TaskFilter) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Task{}
	for id := int64(1); id <= r.nextID; id++ {
		t, ok := r.tasks[id]
		if !ok {
			continue
		}
		if filter.ProjectID != nil && (t.ProjectID == nil || *t.ProjectID != *filter.ProjectID) {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		if filter.AssignedTo != nil && (t.AssignedTo == nil || *t.AssignedTo != *filter.AssignedTo) {
			continue
		}
		if filter.CreatedBy != nil && t.CreatedBy != *filter.CreatedBy {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if _, ok := r.tasks[task.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) Search(_ context.Context, _ string, _ int) ([]models.Task, error) {
	return r.searchResults, r.searchErr
}

func (r *fakeTaskRepo) ListDueForReminder(_ context.Context, _ int) ([]models.Task, error) {
	return nil, nil
}

func (r *fakeTaskRepo) SetReminderFired(_ context.Context, _ int64) error { return nil }

type fakeActivityRepo struct {
	mu       sync.Mutex
	entries  []models.TaskActivity
	storeErr error
}

func (r *fakeActivityRepo) Store(_ context.Context, entry *models.TaskActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.storeErr != nil {
		return r.storeErr
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActivityRepo) FindByTaskID(_ context.Context, taskID int64) ([]models.TaskActivity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.TaskActivity{}
	for _, e := range r.entries {
		if e.TaskID == taskID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) DeleteComment(_ context.Context, id string, createdBy int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.ID == id && e.Type == models.ActivityComment && e.CreatedBy == createdBy {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeActivityRepo) byType(typ models.ActivityType) []models.TaskActivity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.TaskActivity{}
	for _, e := range r.entries {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

type fakeSubtaskRepo struct {
	mu       sync.Mutex
	order    []string
	subtasks map[string]models.Subtask
}

func newFakeSubtaskRepo() *fakeSubtaskRepo {
	return &fakeSubtaskRepo{subtasks: map[string]models.Subtask{}}
}

func (r *fakeSubtaskRepo) Store(_ context.Context, subtask *models.Subtask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, subtask.ID)
	r.subtasks[subtask.ID] = *subtask
	return nil
}

func (r *fakeSubtaskRepo) FindByID(_ context.Context, id string) (*models.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.subtasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &st, nil
}

func (r *fakeSubtaskRepo) FindByTaskID(_ context.Context, taskID int64) ([]models.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Subtask{}
	for _, id := range r.order {
		if st, ok := r.subtasks[id]; ok && st.TaskID == taskID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *fakeSubtaskRepo) SetComplete(_ context.Context, id string, complete bool) (*models.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.subtasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	st.IsComplete = complete
	r.subtasks[id] = st
	return &st, nil
}

func (r *fakeSubtaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subtasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.subtasks, id)
	return nil
}

type fakeRelatedRepo struct {
	mu    sync.Mutex
	edges map[[2]int64]bool

	existsErr  error
	relatedErr error
	linkCalls  int
}

func newFakeRelatedRepo() *fakeRelatedRepo {
	return &fakeRelatedRepo{edges: map[[2]int64]bool{}}
}

func edgeKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

func (r *fakeRelatedRepo) Exists(_ context.Context, taskID, relatedTaskID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	return r.edges[edgeKey(taskID, relatedTaskID)], nil
}

func (r *fakeRelatedRepo) RelatedIDs(_ context.Context, taskID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.relatedErr != nil {
		return nil, r.relatedErr
	}
	out := []int64{}
	for key, ok := range r.edges {
		if !ok {
			continue
		}
		if key[0] == taskID {
			out = append(out, key[1])
		} else if key[1] == taskID {
			out = append(out, key[0])
		}
	}
	return out, nil
}

func (r *fakeRelatedRepo) Link(_ context.Context, taskID, relatedTaskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.linkCalls++
	r.edges[edgeKey(taskID, relatedTaskID)] = true
	return nil
}

func (r *fakeRelatedRepo) Unlink(_ context.Context, taskID, relatedTaskID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.edges, edgeKey(taskID, relatedTaskID))
	return nil
}

type fakeProjectRepo struct {
	projects      []models.Project
	searchResults []models.Project
	searchErr     error
}

func (r *fakeProjectRepo) Store(_ context.Context, p *models.Project) error {
	p.ID = int64(len(r.projects) + 1)
	r.projects = append(r.projects, *p)
	return nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id int64) (*models.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeProjectRepo) FindAll(_ context.Context) ([]models.Project, error) {
	return r.projects, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *models.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = *p
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeProjectRepo) Search(_ context.Context, _ string, _ int) ([]models.Project, error) {
	return r.searchResults, r.searchErr
}

type fakePromptRepo struct {
	searchResults []models.Prompt
	searchErr     error
}

func (r *fakePromptRepo) Store(_ context.Context, _ *models.Prompt) error { return nil }
func (r *fakePromptRepo) FindByID(_ context.Context, _ int64) (*models.Prompt, error) {
	return nil, repositories.ErrNotFound
}
func (r *fakePromptRepo) FindAll(_ context.Context) ([]models.Prompt, error) { return nil, nil }
func (r *fakePromptRepo) Update(_ context.Context, _ *models.Prompt) error   { return nil }
func (r *fakePromptRepo) Delete(_ context.Context, _ int64) error            { return nil }
func (r *fakePromptRepo) Search(_ context.Context, _ string, _ int) ([]models.Prompt, error) {
	return r.searchResults, r.searchErr
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]models.Account

	searchResults []models.Account
	searchErr     error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[int64]models.Account{}}
}

func (r *fakeAccountRepo) Store(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = r.nextID
	r.accounts[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id int64) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Account{}
	for id := int64(1); id <= r.nextID; id++ {
		if a, ok := r.accounts[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.accounts[a.ID] = *a
	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *fakeAccountRepo) Search(_ context.Context, _ string, _ int) ([]models.Account, error) {
	return r.searchResults, r.searchErr
}
