package job

import (
	"encoding/json"
	"time"

	"github.com/deppfellow/acm/internal/model"
	"github.com/hibiken/asynq"
)

// TaskModulesChanged is emitted after an employee's module access changed.
const TaskModulesChanged = "employee:modules_changed"

// ModulesChangedPayload is the JSON body of a TaskModulesChanged task.
type ModulesChangedPayload struct {
	EmployeeID   int64    `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Granted      []string `json:"granted"`
	Revoked      []string `json:"revoked"`
}

// NewModulesChangedTask builds the task for an access change. Revocations
// caused by a deletion are still delivered, so the task goes on the default
// queue with a few retries.
func NewModulesChangedTask(change model.AccessChange) (*asynq.Task, error) {
	payload, err := json.Marshal(ModulesChangedPayload{
		EmployeeID:   change.EmployeeID,
		EmployeeName: change.EmployeeName,
		Granted:      moduleNames(change.Added),
		Revoked:      moduleNames(change.Removed),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TaskModulesChanged, payload,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second)), nil
}

func moduleNames(modules []model.Module) []string {
	names := make([]string, 0, len(modules))
	for _, m := range modules {
		names = append(names, m.Name)
	}
	return names
}
