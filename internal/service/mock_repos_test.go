package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/skybrisk/intern-service/internal/models"
)

// Мок-репозитории повторяют семантику SQL-слоя в памяти.

type mockInternRepo struct {
	interns []models.Intern
	err     error
}

func (m *mockInternRepo) GetAll(_ context.Context) ([]models.Intern, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.interns, nil
}

func (m *mockInternRepo) GetByEmail(_ context.Context, email string) (*models.Intern, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.interns {
		if m.interns[i].Email == email {
			intern := m.interns[i]
			return &intern, nil
		}
	}
	return nil, nil
}

type mockTaskRepo struct {
	tasks  []models.Task
	nextID int
	err    error
}

func (m *mockTaskRepo) newID() string {
	m.nextID++
	return "task-" + strconv.Itoa(m.nextID)
}

func (m *mockTaskRepo) GetByEmail(_ context.Context, email string) ([]models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Task
	for _, t := range m.tasks {
		if t.Email == email {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TaskNumber < result[j].TaskNumber })
	return result, nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.tasks {
		if m.tasks[i].TaskID == id {
			task := m.tasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

func (m *mockTaskRepo) Upsert(_ context.Context, id, email string, taskNumber int, repoLink string) (*models.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	link := repoLink
	for i := range m.tasks {
		if m.tasks[i].Email == email && m.tasks[i].TaskNumber == taskNumber {
			m.tasks[i].GithubRepoLink = &link
			m.tasks[i].Status = "pending"
			m.tasks[i].ApprovalFlag = 0
			task := m.tasks[i]
			return &task, nil
		}
	}
	task := models.Task{
		TaskID:         id,
		Email:          email,
		TaskNumber:     taskNumber,
		TaskType:       "weekly",
		GithubRepoLink: &link,
		Status:         "pending",
		ApprovalFlag:   0,
	}
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockTaskRepo) UpdateReview(_ context.Context, id string, approvalFlag int, status string, reviewedBy, feedback *string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for i := range m.tasks {
		if m.tasks[i].TaskID == id {
			m.tasks[i].ApprovalFlag = approvalFlag
			m.tasks[i].Status = status
			m.tasks[i].ReviewedBy = reviewedBy
			m.tasks[i].Feedback = feedback
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTaskRepo) InitializeBatch(_ context.Context, email string, count int, taskType string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	for _, t := range m.tasks {
		if t.Email == email {
			return 0, nil
		}
	}
	for n := 1; n <= count; n++ {
		m.tasks = append(m.tasks, models.Task{
			TaskID:       m.newID(),
			Email:        email,
			TaskNumber:   n,
			TaskType:     taskType,
			Status:       "pending",
			ApprovalFlag: 0,
		})
	}
	return count, nil
}

func (m *mockTaskRepo) GetStats(_ context.Context, email string) (*models.TaskStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	stats := &models.TaskStats{}
	for _, t := range m.tasks {
		if t.Email != email {
			continue
		}
		stats.TotalTasks++
		if t.Status == "pending" {
			stats.PendingTasks++
		}
		if t.Status == "completed" {
			stats.CompletedTasks++
		}
		if t.ApprovalFlag == 1 {
			stats.ApprovedTasks++
		}
		if t.ApprovalFlag == 0 && t.GithubRepoLink != nil {
			stats.SubmittedPendingApproval++
		}
	}
	return stats, nil
}
