package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/employee"
	employeeerrors "github.com/Aryansh1520/mario-emp-mgmt/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn         func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn         func(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error)
	getOptionsFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getStatsFn       func(ctx context.Context) (employee.StatsResponse, error)
	getDepartmentsFn func(ctx context.Context) ([]string, error)
	getByIDFn        func(ctx context.Context, id uint) (employee.EmployeeResponse, error)
	updateFn         func(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn         func(ctx context.Context, id uint) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getOptionsFn(ctx)
}

func (f *fakeEmployeeService) GetStats(ctx context.Context) (employee.StatsResponse, error) {
	return f.getStatsFn(ctx)
}

func (f *fakeEmployeeService) GetDepartments(ctx context.Context) ([]string, error) {
	return f.getDepartmentsFn(ctx)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id uint) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) Update(ctx context.Context, id uint, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeHandler_Create(t *testing.T) {
	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "EMP001", req.EmpCode)
			assert.Equal(t, "Priya Sharma", req.Name)
			return employee.EmployeeResponse{ID: 1, EmpCode: req.EmpCode, Name: req.Name, Status: employee.StatusActive}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"emp_code":"EMP001","name":"Priya Sharma","basic":30000}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}

func TestEmployeeHandler_Create_MissingName(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"emp_code":"EMP001"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestEmployeeHandler_Create_DuplicateCode(t *testing.T) {
	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeCodeExists
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"emp_code":"EMP001","name":"Priya Sharma"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestEmployeeHandler_GetAll_StatusFilter(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, employee.StatusActive, filter.Status)
			return []employee.EmployeeResponse{{ID: 1, Status: employee.StatusActive}}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?status=Active", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEmployeeHandler_GetAll_InvalidStatus(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?status=Retired", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeHandler_GetStats(t *testing.T) {
	svc := &fakeEmployeeService{
		getStatsFn: func(ctx context.Context) (employee.StatsResponse, error) {
			return employee.StatsResponse{TotalEmployees: 3, ActiveEmployees: 2, TotalNetPayroll: 61500, TotalDepartments: 2}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/stats", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var stats employee.StatsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2), stats.ActiveEmployees)
}

func TestEmployeeHandler_GetById_BadID(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/abc", nil)
	c.Params = []gin.Param{{Key: "id", Value: "abc"}}

	h.GetById(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeHandler_Update_InvalidStatus(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"emp_code":"EMP001","name":"Priya Sharma","status":"Retired"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/employees/1", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, id uint) error {
			assert.Equal(t, uint(4), id)
			return nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees/4", nil)
	c.Params = []gin.Param{{Key: "id", Value: "4"}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
