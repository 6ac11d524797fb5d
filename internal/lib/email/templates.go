package email

// Template names an embedded HTML template.
type Template string

const (
	// TemplateModuleAccess corresponds to templates/module_access.html
	TemplateModuleAccess Template = "module_access"
)
