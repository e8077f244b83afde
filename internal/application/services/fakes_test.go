package services

import (
	"context"
	"strings"
	"time"

	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/domain/repositories"
)

// In-memory repositories backing the service tests. They follow the same
// not-found convention as the real implementations: (nil, nil) for a miss.

type fakeUserRepo struct {
	users  map[uint]*entities.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	u := *user.GetUser()
	// The real repository hashes on write; callers rely on that.
	if err := u.HashPassword(); err != nil {
		return nil, err
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = &u
	out := u
	return &out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SearchByEmail(_ context.Context, emailQuery string, limit int) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range r.users {
		if strings.Contains(u.Email, strings.ToLower(emailQuery)) {
			copied := *u
			out = append(out, &copied)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*entities.User, error) {
	out := make([]*entities.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	u := *user.GetUser()
	r.users[u.ID] = &u
	out := u
	return &out, nil
}

type fakeTaskRepo struct {
	tasks  map[uint]*entities.Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*entities.Task), nextID: 1}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entities.Task) (*entities.Task, error) {
	t := *task
	t.ID = r.nextID
	r.nextID++
	r.tasks[t.ID] = &t
	out := t
	return &out, nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id, userID uint) (*entities.Task, error) {
	if t, ok := r.tasks[id]; ok && t.AssignedUserID == userID {
		out := *t
		return &out, nil
	}
	return nil, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID uint, skip, limit int) ([]*entities.Task, error) {
	var all []*entities.Task
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.AssignedUserID == userID {
			copied := *t
			all = append(all, &copied)
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entities.Task) (*entities.Task, error) {
	t := *task
	r.tasks[t.ID] = &t
	out := t
	return &out, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id, userID uint) (bool, error) {
	if t, ok := r.tasks[id]; ok && t.AssignedUserID == userID {
		delete(r.tasks, id)
		return true, nil
	}
	return false, nil
}

func (r *fakeTaskRepo) CountByProject(_ context.Context, projectID uint) (int64, error) {
	var n int64
	for _, t := range r.tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

type fakeProjectRepo struct {
	projects map[uint]*entities.Project
	teams    *fakeTeamRepo
	nextID   uint
}

func newFakeProjectRepo(teams *fakeTeamRepo) *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uint]*entities.Project), teams: teams, nextID: 1}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *entities.Project) (*entities.Project, error) {
	p := *project
	p.ID = r.nextID
	r.nextID++
	r.projects[p.ID] = &p
	out := p
	return &out, nil
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id uint) (*entities.Project, error) {
	if p, ok := r.projects[id]; ok {
		out := *p
		return &out, nil
	}
	return nil, nil
}

func (r *fakeProjectRepo) ListForUser(ctx context.Context, userID uint, skip, limit int) ([]*entities.Project, error) {
	var all []*entities.Project
	for id := uint(1); id < r.nextID; id++ {
		p, ok := r.projects[id]
		if !ok {
			continue
		}
		member, _ := r.teams.Find(ctx, p.ID, userID)
		if p.OwnerID == userID || member != nil {
			copied := *p
			all = append(all, &copied)
		}
	}
	if skip >= len(all) {
		return nil, nil
	}
	all = all[skip:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeProjectRepo) ListAll(_ context.Context) ([]*entities.Project, error) {
	out := make([]*entities.Project, 0, len(r.projects))
	for id := uint(1); id < r.nextID; id++ {
		if p, ok := r.projects[id]; ok {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *entities.Project) (*entities.Project, error) {
	p := *project
	r.projects[p.ID] = &p
	out := p
	return &out, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id, ownerID uint) (bool, error) {
	if p, ok := r.projects[id]; ok && p.OwnerID == ownerID {
		delete(r.projects, id)
		return true, nil
	}
	return false, nil
}

type fakeTeamRepo struct {
	members []*entities.TeamMember
	nextID  uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{nextID: 1}
}

func (r *fakeTeamRepo) Add(_ context.Context, member *entities.TeamMember) (*entities.TeamMember, error) {
	m := *member
	m.ID = r.nextID
	r.nextID++
	r.members = append(r.members, &m)
	out := m
	return &out, nil
}

func (r *fakeTeamRepo) Find(_ context.Context, projectID, userID uint) (*entities.TeamMember, error) {
	for _, m := range r.members {
		if m.ProjectID == projectID && m.UserID == userID {
			out := *m
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeTeamRepo) ListByProject(_ context.Context, projectID uint) ([]*entities.TeamMember, error) {
	var out []*entities.TeamMember
	for _, m := range r.members {
		if m.ProjectID == projectID {
			copied := *m
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Remove(_ context.Context, projectID, userID uint) (bool, error) {
	for i, m := range r.members {
		if m.ProjectID == projectID && m.UserID == userID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTeamRepo) CountByProject(_ context.Context, projectID uint) (int64, error) {
	var n int64
	for _, m := range r.members {
		if m.ProjectID == projectID {
			n++
		}
	}
	return n, nil
}

// fakeReportRepo derives aggregates from the same stores the other fakes use,
// so report tests exercise real data instead of canned numbers.
type fakeReportRepo struct {
	users    *fakeUserRepo
	projects *fakeProjectRepo
	tasks    *fakeTaskRepo
}

func (r *fakeReportRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(r.users.users)), nil
}

func (r *fakeReportRepo) CountProjects(_ context.Context) (int64, error) {
	return int64(len(r.projects.projects)), nil
}

func (r *fakeReportRepo) GlobalTaskCounts(_ context.Context) (repositories.TaskCounts, error) {
	return r.counts(func(*entities.Task) bool { return true }), nil
}

func (r *fakeReportRepo) TaskCountsForUser(_ context.Context, userID uint) (repositories.TaskCounts, error) {
	return r.counts(func(t *entities.Task) bool { return t.AssignedUserID == userID }), nil
}

func (r *fakeReportRepo) TaskCountsForProject(_ context.Context, projectID uint) (repositories.TaskCounts, error) {
	return r.counts(func(t *entities.Task) bool { return t.ProjectID != nil && *t.ProjectID == projectID }), nil
}

func (r *fakeReportRepo) CountTasksByPriority(_ context.Context, priority entities.TaskPriority) (int64, error) {
	var n int64
	for _, t := range r.tasks.tasks {
		if t.Priority == priority {
			n++
		}
	}
	return n, nil
}

func (r *fakeReportRepo) CountRecentTasks(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, t := range r.tasks.tasks {
		if t.CreatedAt.After(since) || t.UpdatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeReportRepo) counts(match func(*entities.Task) bool) repositories.TaskCounts {
	var c repositories.TaskCounts
	for _, t := range r.tasks.tasks {
		if !match(t) {
			continue
		}
		c.Total++
		switch t.Status {
		case entities.TaskCompleted:
			c.Completed++
		case entities.TaskInProgress:
			c.InProgress++
		case entities.TaskPending:
			c.Pending++
		case entities.TaskCancelled:
			c.Cancelled++
		}
	}
	return c
}

type fakeIdempotencyRepo struct {
	records map[string]*entities.IdempotencyRecord
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{records: make(map[string]*entities.IdempotencyRecord)}
}

func (r *fakeIdempotencyRepo) FindByKey(_ context.Context, key string) (*entities.IdempotencyRecord, error) {
	if rec, ok := r.records[key]; ok {
		out := *rec
		return &out, nil
	}
	return nil, nil
}

func (r *fakeIdempotencyRepo) Create(_ context.Context, record *entities.IdempotencyRecord) (*entities.IdempotencyRecord, error) {
	rec := *record
	r.records[rec.Key] = &rec
	out := rec
	return &out, nil
}
