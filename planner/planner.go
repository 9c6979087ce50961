package planner

import (
	"context"
	"sync"

	"family-planner/domain/dto"
	"family-planner/domain/models"
	"family-planner/pkg/logger"
)

// FilterMode selects which tasks the board shows.
type FilterMode string

const (
	FilterAll  FilterMode = "all"
	FilterMine FilterMode = "mine"
	FilterOpen FilterMode = "open"
)

// AvatarByRole is the board's avatar for each household role.
var AvatarByRole = map[models.Role]string{
	models.RoleMom:         "👩‍🦰",
	models.RoleDad:         "👨",
	models.RoleChildMale:   "🧒",
	models.RoleChildFemale: "👧",
}

// Notification is a transient user-visible message; Err marks failures.
type Notification struct {
	Title   string
	Message string
	Err     bool
}

type NotifyFunc func(Notification)

// DayGroup is one weekday column of the board with its progress counts.
type DayGroup struct {
	Day       models.Weekday
	Tasks     []dto.TaskResponse
	Completed int
	Total     int
}

// Planner holds the board's client-side state: the loaded task and user
// lists, the current filter, and per-task in-flight flags used to disable
// buttons while a request is pending. The current user is an explicit field,
// never ambient state. All mutations wait for server confirmation before
// touching local state.
type Planner struct {
	client *Client
	user   dto.UserResponse
	notify NotifyFunc

	mu         sync.Mutex
	tasks      []dto.TaskResponse
	users      []dto.UserResponse
	filter     FilterMode
	statusBusy map[uint]bool
	claimBusy  map[uint]bool
}

func NewPlanner(client *Client, user dto.UserResponse, notify NotifyFunc) *Planner {
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Planner{
		client:     client,
		user:       user,
		notify:     notify,
		filter:     FilterAll,
		statusBusy: make(map[uint]bool),
		claimBusy:  make(map[uint]bool),
	}
}

// Load fetches the bootstrap payload once and fills both lists. A failure
// is only logged; the board stays in its empty default state.
func (p *Planner) Load(ctx context.Context) {
	resp, err := p.client.Bootstrap(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Bootstrap load failed", "error", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.tasks = resp.Tasks
	p.users = resp.Users
}

func (p *Planner) User() dto.UserResponse {
	return p.user
}

func (p *Planner) Users() []dto.UserResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]dto.UserResponse(nil), p.users...)
}

func (p *Planner) Tasks() []dto.TaskResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]dto.TaskResponse(nil), p.tasks...)
}

func (p *Planner) SetFilter(mode FilterMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = mode
}

func (p *Planner) Filter() FilterMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Visible applies the current filter over the loaded list. It never
// re-fetches.
func (p *Planner) Visible() []dto.TaskResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleLocked()
}

func (p *Planner) visibleLocked() []dto.TaskResponse {
	out := make([]dto.TaskResponse, 0, len(p.tasks))
	for _, t := range p.tasks {
		switch p.filter {
		case FilterMine:
			if t.AssignedToUserID != nil && *t.AssignedToUserID == p.user.ID {
				out = append(out, t)
			}
		case FilterOpen:
			if t.Open() {
				out = append(out, t)
			}
		default:
			out = append(out, t)
		}
	}
	return out
}

// Week partitions the visible tasks into the seven weekday columns, each
// with its own completed/total progress.
func (p *Planner) Week() [7]DayGroup {
	p.mu.Lock()
	defer p.mu.Unlock()

	var week [7]DayGroup
	index := make(map[models.Weekday]int, 7)
	for i, day := range models.Weekdays {
		week[i].Day = day
		index[day] = i
	}

	for _, t := range p.visibleLocked() {
		i, ok := index[models.Weekday(t.DueDay)]
		if !ok {
			continue
		}
		week[i].Tasks = append(week[i].Tasks, t)
		week[i].Total++
		if t.Status == string(models.StatusDone) {
			week[i].Completed++
		}
	}
	return week
}

// WeekProgress is the percentage of all loaded tasks that are done.
func (p *Planner) WeekProgress() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.tasks {
		if t.Status == string(models.StatusDone) {
			done++
		}
	}
	return int(float64(done)/float64(len(p.tasks))*100 + 0.5)
}

// AddTask creates a task on the server and appends it to the list.
func (p *Planner) AddTask(ctx context.Context, req *dto.CreateTaskRequest) error {
	created, err := p.client.CreateTask(ctx, req)
	if err != nil {
		p.notify(Notification{Title: "Add failed", Message: err.Error(), Err: true})
		return err
	}

	p.mu.Lock()
	p.tasks = append(p.tasks, *created)
	p.mu.Unlock()

	p.notify(Notification{
		Title:   "Task added",
		Message: "Added \"" + created.Title + "\" to " + created.DueDay,
	})
	return nil
}

// EditTask applies a partial patch and swaps in the returned task.
func (p *Planner) EditTask(ctx context.Context, id uint, patch *dto.UpdateTaskRequest) error {
	updated, err := p.client.UpdateTask(ctx, id, patch)
	if err != nil {
		p.notify(Notification{Title: "Update failed", Message: err.Error(), Err: true})
		return err
	}

	p.replaceTask(*updated)
	p.notify(Notification{Title: "Task updated", Message: "Updated \"" + updated.Title + "\""})
	return nil
}

// ChangeStatus moves a task between todo/doing/done. While the request is
// in flight the task's status button stays disabled via StatusBusy.
func (p *Planner) ChangeStatus(ctx context.Context, id uint, status models.Status) error {
	if !p.begin(p.statusBusy, id) {
		return nil
	}
	defer p.end(p.statusBusy, id)

	updated, err := p.client.SetStatus(ctx, id, string(status))
	if err != nil {
		p.notify(Notification{Title: "Update failed", Message: err.Error(), Err: true})
		return err
	}

	p.replaceTask(*updated)

	if status == models.StatusDone {
		p.notify(Notification{
			Title:   "Task completed!",
			Message: "Great job! One less thing to worry about.",
		})
	}
	return nil
}

// Claim assigns an open task to the current user.
func (p *Planner) Claim(ctx context.Context, id uint) error {
	if !p.begin(p.claimBusy, id) {
		return nil
	}
	defer p.end(p.claimBusy, id)

	userID := p.user.ID
	updated, err := p.client.SetAssignee(ctx, id, &userID)
	if err != nil {
		p.notify(Notification{Title: "Claim failed", Message: err.Error(), Err: true})
		return err
	}

	p.replaceTask(*updated)
	p.notify(Notification{
		Title:   "Task claimed!",
		Message: "Thanks for stepping up! The family appreciates it.",
	})
	return nil
}

// Release clears the assignment so the task is open again.
func (p *Planner) Release(ctx context.Context, id uint) error {
	if !p.begin(p.claimBusy, id) {
		return nil
	}
	defer p.end(p.claimBusy, id)

	updated, err := p.client.SetAssignee(ctx, id, nil)
	if err != nil {
		p.notify(Notification{Title: "Update failed", Message: err.Error(), Err: true})
		return err
	}

	p.replaceTask(*updated)
	return nil
}

// Delete removes the task on the server, then drops it from the list.
func (p *Planner) Delete(ctx context.Context, id uint) error {
	if err := p.client.DeleteTask(ctx, id); err != nil {
		p.notify(Notification{Title: "Delete failed", Message: err.Error(), Err: true})
		return err
	}

	p.mu.Lock()
	for i, t := range p.tasks {
		if t.ID == id {
			p.tasks = append(p.tasks[:i], p.tasks[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	return nil
}

// Avatar is the emoji shown on a task card for its assignee. Open tasks
// and unknown users get an empty string.
func (p *Planner) Avatar(userID *uint) string {
	if userID == nil {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, u := range p.users {
		if u.ID == *userID {
			return AvatarByRole[models.Role(u.Role)]
		}
	}
	return ""
}

func (p *Planner) StatusBusy(id uint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.statusBusy[id]
}

func (p *Planner) ClaimBusy(id uint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claimBusy[id]
}

// replaceTask swaps in the confirmed task by id; the rest of the list is
// untouched.
func (p *Planner) replaceTask(updated dto.TaskResponse) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, t := range p.tasks {
		if t.ID == updated.ID {
			p.tasks[i] = updated
			return
		}
	}
}

func (p *Planner) begin(busy map[uint]bool, id uint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if busy[id] {
		return false
	}
	busy[id] = true
	return true
}

func (p *Planner) end(busy map[uint]bool, id uint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(busy, id)
}
