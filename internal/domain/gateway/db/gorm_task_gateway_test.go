package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"todo-tracker/internal/domain/entity"
)

var taskColumns = []string{"id", "name", "priority", "state_id", "todo_id"}

func TestGormTaskGateway(t *testing.T) {
	t.Run("Save updates the task row without touching states", func(t *testing.T) {
		gormDB, mock := newGormMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "tasks" SET "name"=\$1,"priority"=\$2,"state_id"=\$3,"todo_id"=\$4 WHERE "id" = \$5`).
			WithArgs("Buy oat milk", "LOW", 6, 3, 6).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE "tasks"."id" = \$1 ORDER BY "tasks"."id" LIMIT \$2`).
			WithArgs(6, 1).
			WillReturnRows(sqlmock.NewRows(taskColumns).AddRow(6, "Buy oat milk", "LOW", 6, 3))
		mock.ExpectQuery(`SELECT \* FROM "states" WHERE "states"."id" = \$1`).
			WithArgs(6).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(6, "Done"))

		task, err := NewGormTaskGateway(gormDB).Save(entity.Task{
			ID:       6,
			Name:     "Buy oat milk",
			Priority: entity.PriorityLow,
			StateID:  6,
			State:    entity.State{ID: 6, Name: "Done"},
			TodoID:   3,
		})
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, "Done", task.State.Name)
		assert.Equal(t, uint(3), task.TodoID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByTodoID loads the state of each task", func(t *testing.T) {
		gormDB, mock := newGormMock(t)

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE todo_id = \$1 ORDER BY id`).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows(taskColumns).AddRow(10, "Buy milk", "HIGH", 1, 3))
		mock.ExpectQuery(`SELECT \* FROM "states" WHERE "states"."id" = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "New"))

		tasks, err := NewGormTaskGateway(gormDB).FindByTodoID(3)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "New", tasks[0].State.Name)
		assert.Equal(t, entity.PriorityHigh, tasks[0].Priority)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByStateID on unused state returns empty slice", func(t *testing.T) {
		gormDB, mock := newGormMock(t)

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE state_id = \$1 ORDER BY id`).
			WithArgs(4).
			WillReturnRows(sqlmock.NewRows(taskColumns))

		tasks, err := NewGormTaskGateway(gormDB).FindByStateID(4)
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteOrphans removes tasks of missing lists", func(t *testing.T) {
		gormDB, mock := newGormMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "tasks" WHERE todo_id NOT IN \(SELECT "id" FROM "todos"\)`).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		removed, err := NewGormTaskGateway(gormDB).DeleteOrphans()
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
