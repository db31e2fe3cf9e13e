package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmployeeOptionsKey = "employees:options"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeResponse, error)
	GetStats(ctx context.Context) (StatsResponse, error)
	GetDepartments(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
	Update(ctx context.Context, id uint, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("emp_code", req.EmpCode),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// Compensation is validated once at this boundary so the payslip
	// pipeline never sees unusable amounts.
	comp := finance.Compensation{
		Basic:            req.Basic,
		HRA:              req.HRA,
		LTA:              req.LTA,
		SpecialAllowance: req.SpecialAllowance,
		IncomeTax:        req.IncomeTax,
	}
	if err := finance.Validate(comp); err != nil {
		s.logger.Warn("create employee invalid compensation", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		EmpCode:          req.EmpCode,
		Name:             req.Name,
		Designation:      req.Designation,
		Department:       req.Department,
		BankAccount:      req.BankAccount,
		IFSC:             req.IFSC,
		PAN:              req.PAN,
		JoiningDate:      req.JoiningDate,
		Notes:            req.Notes,
		Status:           StatusActive, // new records are always Active
		Basic:            req.Basic,
		HRA:              req.HRA,
		LTA:              req.LTA,
		SpecialAllowance: req.SpecialAllowance,
		IncomeTax:        req.IncomeTax,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter GetEmployeesFilterRequest,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("status", filter.Status))
	empls, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeResponse, error) {
	// 1. Redis first
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight collapses concurrent misses onto one query
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		empls, err := s.repo.FindActive(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		// 3. Master data changes rarely; an hour of TTL is plenty
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, EmployeeOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	empls, err := s.repo.FindAll(ctx, GetEmployeesFilterRequest{})
	if err != nil {
		s.logger.Error("get stats failed", zap.Error(err))
		return StatsResponse{}, mapRepositoryError(err)
	}

	stats := StatsResponse{TotalEmployees: int64(len(empls))}
	departments := make(map[string]struct{})
	for _, empl := range empls {
		if empl.Department != "" {
			departments[empl.Department] = struct{}{}
		}
		if empl.Status != StatusActive {
			continue
		}
		stats.ActiveEmployees++
		// Same calculator as payslips, so the dashboard total can never
		// disagree with a generated document.
		stats.TotalNetPayroll += finance.Compute(empl.Compensation()).Net
	}
	stats.TotalDepartments = len(departments)

	return stats, nil
}

func (s *service) GetDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.repo.FindDepartments(ctx)
	if err != nil {
		s.logger.Error("get departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return departments, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id uint,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	comp := finance.Compensation{
		Basic:            req.Basic,
		HRA:              req.HRA,
		LTA:              req.LTA,
		SpecialAllowance: req.SpecialAllowance,
		IncomeTax:        req.IncomeTax,
	}
	if err := finance.Validate(comp); err != nil {
		s.logger.Warn("update employee invalid compensation", zap.Error(err))
		return EmployeeResponse{}, err
	}

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.EmpCode = req.EmpCode
	empl.Name = req.Name
	empl.Designation = req.Designation
	empl.Department = req.Department
	empl.BankAccount = req.BankAccount
	empl.IFSC = req.IFSC
	empl.PAN = req.PAN
	empl.JoiningDate = req.JoiningDate
	empl.Notes = req.Notes
	empl.Status = req.Status
	empl.Basic = req.Basic
	empl.HRA = req.HRA
	empl.LTA = req.LTA
	empl.SpecialAllowance = req.SpecialAllowance
	empl.IncomeTax = req.IncomeTax

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.Uint("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	s.logger.Debug("delete employee requested", zap.Uint("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("delete employee success", zap.Uint("employee_id", id))
	return nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmployeeOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", EmployeeOptionsKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	sum := finance.Compute(empl.Compensation())
	return EmployeeResponse{
		ID:               empl.ID,
		EmpCode:          empl.EmpCode,
		Name:             empl.Name,
		Designation:      empl.Designation,
		Department:       empl.Department,
		BankAccount:      empl.BankAccount,
		IFSC:             empl.IFSC,
		PAN:              empl.PAN,
		JoiningDate:      empl.JoiningDate,
		Notes:            empl.Notes,
		Status:           empl.Status,
		Basic:            empl.Basic,
		HRA:              empl.HRA,
		LTA:              empl.LTA,
		SpecialAllowance: empl.SpecialAllowance,
		IncomeTax:        empl.IncomeTax,
		Gross:            sum.Gross,
		Net:              sum.Net,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
