package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/Aryansh1520/mario-emp-mgmt/internal/employee/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// SQLite reports the violated index in the error text.
	errMsg := err.Error()
	if strings.Contains(errMsg, "UNIQUE constraint failed") &&
		strings.Contains(errMsg, "emp_code") {
		return employeeerrors.ErrEmployeeCodeExists
	}

	return err
}
