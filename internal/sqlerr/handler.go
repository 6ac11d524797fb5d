package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/acm/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyConstraint = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

var titleCase = cases.Title(language.English)

// entities names the rows of each table the way clients see them.
var entities = map[string]string{
	"employees":        "employee",
	"modules":          "module",
	"employee_modules": "employee_module",
}

// violation describes how one class of constraint violation reaches clients.
type violation struct {
	action   string
	override bool
	message  func(e *Error) string
}

var violations = map[Code]violation{
	ForeignKeyViolation: {
		action: "NOT_FOUND",
		message: func(e *Error) string {
			return fmt.Sprintf("The referenced %s does not exist", entityName(e.TableName, e.ColumnName))
		},
	},
	UniqueViolation: {
		action:   "ALREADY_EXISTS",
		override: true,
		message: func(e *Error) string {
			what := "identifier"
			if column := extractColumnForUniqueViolation(e.ConstraintName); column != "" {
				what = humanize(column)
			}
			return fmt.Sprintf("A %s with this %s already exists", entityName(e.TableName, ""), what)
		},
	},
	NotNullViolation: {
		action:   "REQUIRED",
		override: true,
		message: func(e *Error) string {
			field := humanize(e.ColumnName)
			if field == "" {
				field = "field"
			}
			return fmt.Sprintf("The %s is required", field)
		},
	},
	CheckViolation: {
		action:   "INVALID",
		override: true,
		message: func(e *Error) string {
			if field := humanize(e.ColumnName); field != "" {
				return fmt.Sprintf("The %s value does not meet required conditions", field)
			}
			return "One or more values do not meet required conditions"
		},
	},
}

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw PostgreSQL error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// entityKey returns the snake_case entity stored in table.
func entityKey(table string) string {
	if entity, ok := entities[table]; ok {
		return entity
	}
	if table == "" {
		return "record"
	}
	return strings.TrimSuffix(table, "s")
}

// entityName prefers a "<entity>_id" column over the table's entity.
func entityName(table, column string) string {
	column = strings.ToLower(column)
	if strings.HasSuffix(column, "_id") {
		return humanize(strings.TrimSuffix(column, "_id"))
	}
	return humanize(entityKey(table))
}

func humanize(text string) string {
	return titleCase.String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation understands "unique_<table>_<column>" and
// "<table>_<column>_key" constraint names.
func extractColumnForUniqueViolation(constraintName string) string {
	if strings.HasPrefix(constraintName, "unique_") {
		if parts := strings.Split(constraintName, "_"); len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyConstraint.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

func fromConstraint(sqlErr *Error) error {
	v, ok := violations[sqlErr.Code]
	if !ok {
		return errs.NewInternalServerError()
	}

	code := strings.ToUpper(entityKey(sqlErr.TableName)) + "_" + v.action

	var fieldErrors []errs.FieldError
	if sqlErr.Code == NotNullViolation && sqlErr.ColumnName != "" {
		fieldErrors = []errs.FieldError{{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"}}
	}

	return errs.NewBadRequestError(v.message(sqlErr), v.override, &code, fieldErrors, nil)
}

// HandleError converts a low-level database error into an application error.
// Errors that already carry an HTTP mapping are returned unchanged, constraint
// violations become 400s, a missing row becomes a 404 and anything else a 500.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var notFound errs.EntityNotFoundError
	if errors.As(err, &notFound) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return fromConstraint(ConvertPgError(pgerr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
