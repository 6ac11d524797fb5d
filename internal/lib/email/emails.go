package email

import (
	"fmt"
	"strings"
)

// ModuleAccessData describes an access change in display form.
type ModuleAccessData struct {
	EmployeeID   int64
	EmployeeName string
	Granted      []string
	Revoked      []string
}

func (d ModuleAccessData) templateData() map[string]string {
	return map[string]string{
		"EmployeeID":   fmt.Sprintf("%d", d.EmployeeID),
		"EmployeeName": d.EmployeeName,
		"Granted":      joinOrNone(d.Granted),
		"Revoked":      joinOrNone(d.Revoked),
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// SendModuleAccessEmail tells the notification address which modules an
// employee gained or lost.
func (c *Client) SendModuleAccessEmail(to string, data ModuleAccessData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("Module access changed for %s", data.EmployeeName),
		TemplateModuleAccess,
		data.templateData(),
	)
}
