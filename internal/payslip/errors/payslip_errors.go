package paysliperrors

import (
	"net/http"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipFileMissing = apperror.New(
		apperror.CodeNotFound,
		"Payslip file is no longer on disk",
		http.StatusNotFound,
	)
	ErrPayPeriodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Pay period is required",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payslip ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

// WrapRender marks a document-assembly failure as internal.
func WrapRender(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Failed to render payslip document",
		http.StatusInternalServerError,
	)
}

// WrapWrite carries the underlying OS reason for an unwritable output.
func WrapWrite(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeInternalError,
		"Failed to write payslip file",
		http.StatusInternalServerError,
	)
}
