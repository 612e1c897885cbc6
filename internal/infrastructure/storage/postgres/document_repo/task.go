package document_repo

import (
	"protheo/internal/domain/documents/task"
	"protheo/internal/infrastructure/storage/postgres"
)

const taskTable = "doc_tasks"

// TaskRepo implements task.Repository.
type TaskRepo struct {
	*postgres.Repo[*task.Task]
}

// NewTaskRepo creates a new task repository.
func NewTaskRepo(txm *postgres.TxManager) *TaskRepo {
	return &TaskRepo{
		Repo: postgres.NewRepo(txm, postgres.RepoConfig[*task.Task]{
			Table:   taskTable,
			Columns: postgres.ExtractDBColumns[task.Task](),
			OrderBy: "due_date ASC, created_at ASC",
			New:     func() *task.Task { return &task.Task{} },
		}),
	}
}
