package model

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, StatusTodo.Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("SOMEDAY").Valid())
	assert.False(t, TaskStatus("todo").Valid())
}

func TestTaskToResponse_FieldMapping(t *testing.T) {
	created := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	task := Task{
		ID:          7,
		Title:       "Write report",
		Description: sql.NullString{String: "quarterly numbers", Valid: true},
		DueDate:     NewDate(2024, time.February, 1),
		Status:      StatusInProgress,
		UserID:      3,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}

	resp := TaskToResponse(&task)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Write report", resp.Title)
	assert.Equal(t, "quarterly numbers", resp.Description)
	assert.Equal(t, "2024-02-01", resp.DueDate.String())
	assert.Equal(t, StatusInProgress, resp.Status)
	assert.Equal(t, int64(3), resp.UserID)
	assert.Equal(t, created, resp.CreatedAt)
	assert.Equal(t, updated, resp.UpdatedAt)
}

func TestTaskToResponse_NullDescription(t *testing.T) {
	task := Task{ID: 1, Title: "T", Status: StatusTodo}
	resp := TaskToResponse(&task)
	assert.Empty(t, resp.Description)
}

func TestTasksToResponse_EmptySlice(t *testing.T) {
	result := TasksToResponse(nil)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
}
