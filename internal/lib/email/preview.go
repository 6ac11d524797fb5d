package email

// PreviewData holds sample template data for local previews, keyed by
// template name.
var PreviewData = map[string]map[string]string{
	string(TemplateModuleAccess): ModuleAccessData{
		EmployeeID:   1,
		EmployeeName: "Aditya",
		Granted:      []string{"Library", "Dashboard"},
		Revoked:      []string{"Reports"},
	}.templateData(),
}

// Preview renders a template with its preview data.
func Preview(templateName Template) (string, error) {
	return render(templateName, PreviewData[string(templateName)])
}
