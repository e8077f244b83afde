package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"workflowpro-api/internal/application/command"
	"workflowpro-api/internal/domain/entities"
	"workflowpro-api/internal/infrastructure"
	"workflowpro-api/internal/messaging"
)

type projectFixture struct {
	svc      *ProjectService
	users    *fakeUserRepo
	projects *fakeProjectRepo
	teams    *fakeTeamRepo
	tasks    *fakeTaskRepo
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	logger := zap.NewNop()
	users := newFakeUserRepo()
	teams := newFakeTeamRepo()
	projects := newFakeProjectRepo(teams)
	tasks := newFakeTaskRepo()

	svc := NewProjectService(
		projects,
		teams,
		tasks,
		users,
		newFakeIdempotencyRepo(),
		infrastructure.NewMailer("", "", logger),
		messaging.NewPublisher("", logger),
		logger,
	)
	return &projectFixture{svc: svc, users: users, projects: projects, teams: teams, tasks: tasks}
}

func (f *projectFixture) addUser(t *testing.T, email, username string) *entities.User {
	t.Helper()
	user := entities.NewUser(email, username, "", "secret123")
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	created, err := f.users.Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func (f *projectFixture) createProject(t *testing.T, ownerID uint, name string) uint {
	t.Helper()
	result, err := f.svc.Create(context.Background(), ownerID, &command.CreateProjectCommand{Name: name})
	require.NoError(t, err)
	return result.Result.ID
}

func TestCreateProjectAddsOwnerMembership(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")

	projectID := f.createProject(t, owner.ID, "Website revamp")

	member, err := f.teams.Find(context.Background(), projectID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, entities.RoleOwner, member.Role)
}

func TestListProjectsIncludesMemberships(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")

	projectID := f.createProject(t, owner.ID, "Website revamp")
	f.createProject(t, owner.ID, "Internal tools")

	_, err := f.svc.AddTeamMember(context.Background(), owner.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    member.ID,
		Role:      entities.RoleMember,
	})
	require.NoError(t, err)

	ownerProjects, err := f.svc.List(context.Background(), owner.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, ownerProjects, 2)

	memberProjects, err := f.svc.List(context.Background(), member.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, memberProjects, 1)
	assert.Equal(t, "Website revamp", memberProjects[0].Name)
}

func TestGetWithTeam(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	task := entities.NewTask("landing page", "", owner.ID)
	task.ProjectID = &projectID
	_, err := f.tasks.Create(context.Background(), task)
	require.NoError(t, err)

	detail, err := f.svc.GetWithTeam(context.Background(), owner.ID, projectID)
	require.NoError(t, err)

	assert.Equal(t, "Website revamp", detail.Name)
	assert.Equal(t, int64(1), detail.TasksCount)
	require.Len(t, detail.TeamMembers, 1)
	require.NotNil(t, detail.TeamMembers[0].User)
	assert.Equal(t, "owner@example.com", detail.TeamMembers[0].User.Email)
}

func TestGetWithTeamDeniedForOutsider(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	outsider := f.addUser(t, "outsider@example.com", "outsider")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	_, err := f.svc.GetWithTeam(context.Background(), outsider.ID, projectID)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.Status)
	assert.Equal(t, "Project not found", svcErr.Message)
}

func TestUpdateProjectOwnerOnly(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	other := f.addUser(t, "other@example.com", "other")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	name := "Website revamp v2"
	result, err := f.svc.Update(context.Background(), owner.ID, projectID, &command.UpdateProjectCommand{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Website revamp v2", result.Result.Name)

	_, err = f.svc.Update(context.Background(), other.ID, projectID, &command.UpdateProjectCommand{Name: &name})
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.Status)
}

func TestDeleteProjectOwnerOnly(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	other := f.addUser(t, "other@example.com", "other")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	err := f.svc.Delete(context.Background(), other.ID, projectID)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.Status)

	require.NoError(t, f.svc.Delete(context.Background(), owner.ID, projectID))
}

func TestAddTeamMember(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	result, err := f.svc.AddTeamMember(context.Background(), owner.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    member.ID,
		Role:      entities.RoleAdmin,
	})
	require.NoError(t, err)

	assert.Equal(t, entities.RoleAdmin, result.Result.Role)
	require.NotNil(t, result.Result.User)
	assert.Equal(t, "member@example.com", result.Result.User.Email)
}

func TestAddTeamMemberRequiresManagementRole(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")
	outsider := f.addUser(t, "outsider@example.com", "outsider")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	_, err := f.svc.AddTeamMember(context.Background(), outsider.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    member.ID,
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
	assert.Equal(t, "Cannot add team member. User may already be in the team or you don't have permission.", svcErr.Message)
}

func TestAddTeamMemberDuplicate(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	cmd := &command.AddTeamMemberCommand{ProjectID: projectID, UserID: member.ID}
	_, err := f.svc.AddTeamMember(context.Background(), owner.ID, cmd)
	require.NoError(t, err)

	_, err = f.svc.AddTeamMember(context.Background(), owner.ID, cmd)
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
}

func TestAddTeamMemberUnknownUser(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	_, err := f.svc.AddTeamMember(context.Background(), owner.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    999,
	})

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
	assert.Equal(t, "User does not exist", svcErr.Message)
}

func TestRemoveTeamMember(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	_, err := f.svc.AddTeamMember(context.Background(), owner.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    member.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveTeamMember(context.Background(), owner.ID, projectID, member.ID))

	gone, err := f.teams.Find(context.Background(), projectID, member.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRemoveTeamMemberOwnerIsProtected(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	err := f.svc.RemoveTeamMember(context.Background(), owner.ID, projectID, owner.ID)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.Status)
	assert.Equal(t, "Cannot remove team member. User may not exist or you don't have permission.", svcErr.Message)
}

func TestListTeamAccessDenied(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	outsider := f.addUser(t, "outsider@example.com", "outsider")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	_, err := f.svc.ListTeam(context.Background(), outsider.ID, projectID)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.Status)
	assert.Equal(t, "Project not found or access denied", svcErr.Message)
}

func TestProjectIdempotencyReplay(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")

	cmd := &command.CreateProjectCommand{Name: "Website revamp", IdempotencyKey: "key-1"}
	first, err := f.svc.Create(context.Background(), owner.ID, cmd)
	require.NoError(t, err)
	second, err := f.svc.Create(context.Background(), owner.ID, cmd)
	require.NoError(t, err)

	assert.Equal(t, first.Result.ID, second.Result.ID)
	assert.Len(t, f.projects.projects, 1)
}

func TestAddTeamMemberJoinedAtSet(t *testing.T) {
	f := newProjectFixture(t)
	owner := f.addUser(t, "owner@example.com", "owner")
	member := f.addUser(t, "member@example.com", "member")
	projectID := f.createProject(t, owner.ID, "Website revamp")

	result, err := f.svc.AddTeamMember(context.Background(), owner.ID, &command.AddTeamMemberCommand{
		ProjectID: projectID,
		UserID:    member.ID,
	})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), result.Result.JoinedAt, time.Minute)
}
