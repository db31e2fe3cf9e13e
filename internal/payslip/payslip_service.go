package payslip

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Aryansh1520/mario-emp-mgmt/internal/employee"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/finance"
	paysliperrors "github.com/Aryansh1520/mario-emp-mgmt/internal/payslip/errors"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/payslip/pdf"
	"github.com/Aryansh1520/mario-emp-mgmt/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeReader is the slice of the employee store the pipeline needs;
// the payslip module never creates, updates, or deletes employees.
type EmployeeReader interface {
	FindByID(ctx context.Context, id uint) (*employee.Employee, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
	Preview(ctx context.Context, employeeID uint) (PreviewResponse, error)
	GetAll(ctx context.Context, filter ListPayslipsFilterRequest) ([]PayslipResponse, error)
	GetByID(ctx context.Context, id uint) (PayslipResponse, error)
	Lookup(ctx context.Context, req LookupPayslipRequest) (PayslipResponse, error)
	DownloadPath(ctx context.Context, id uint) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeReader
	composer  *pdf.Composer
	outputDir string
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeReader,
	composer *pdf.Composer,
	outputDir string,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		composer:  composer,
		outputDir: outputDir,
		logger:    l,
	}
}

// Generate runs the whole pipeline synchronously: lookup → validate →
// compute → compose → write file → record snapshot. The returned path
// points at the written PDF; the snapshot row exists only if the file
// does.
func (s *service) Generate(
	ctx context.Context,
	req GeneratePayslipRequest,
) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslip requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.String("pay_period", req.PayPeriod),
	)

	payPeriod := strings.TrimSpace(req.PayPeriod)
	if payPeriod == "" {
		return PayslipResponse{}, paysliperrors.ErrPayPeriodRequired
	}

	empl, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, paysliperrors.ErrEmployeeNotFound
		}
		s.logger.Error("generate payslip employee lookup failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	comp := empl.Compensation()
	if err := finance.Validate(comp); err != nil {
		s.logger.Warn("generate payslip rejected compensation",
			zap.Uint("employee_id", empl.ID), zap.Error(err))
		return PayslipResponse{}, err
	}
	sum := finance.Compute(comp)

	// The words line is decorative; its failure never blocks the slip.
	words, err := finance.AmountToWords(sum.Net)
	if err != nil {
		s.logger.Warn("amount in words unavailable, section omitted",
			zap.Float64("net", sum.Net), zap.Error(err))
		words = ""
	}

	doc := pdf.Document{
		EmployeeName:  empl.Name,
		EmpCode:       empl.EmpCode,
		Designation:   empl.Designation,
		PAN:           empl.PAN,
		PayPeriod:     payPeriod,
		Summary:       sum,
		AmountInWords: words,
	}

	// Render fully in memory so a failed assembly never leaves a
	// partial file behind.
	var buf bytes.Buffer
	if err := s.composer.Generate(doc, &buf); err != nil {
		s.logger.Error("generate payslip render failed", zap.Error(err))
		return PayslipResponse{}, paysliperrors.WrapRender(err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		s.logger.Error("generate payslip output dir failed",
			zap.String("dir", s.outputDir), zap.Error(err))
		return PayslipResponse{}, paysliperrors.WrapWrite(err)
	}

	// Same employee+period overwrites the previous file; names are
	// deterministic on purpose.
	path := filepath.Join(s.outputDir, FileName(empl.EmpCode, empl.ID, payPeriod))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		os.Remove(path)
		s.logger.Error("generate payslip write failed",
			zap.String("path", path), zap.Error(err))
		return PayslipResponse{}, paysliperrors.WrapWrite(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		os.Remove(path)
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	slip := snapshotFrom(sum)
	slip.EmployeeID = empl.ID
	slip.PayPeriod = payPeriod
	slip.Notes = req.Notes
	slip.FilePath = path
	slip.GeneratedAt = time.Now().UTC()

	if err := qtx.Create(ctx, &slip); err != nil {
		os.Remove(path)
		s.logger.Error("generate payslip persist failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		os.Remove(path)
		s.logger.Error("generate payslip commit failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	s.logger.Info("generate payslip success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.String("pay_period", payPeriod),
		zap.String("path", path),
	)

	return mapToResponse(slip), nil
}

// Preview computes the financial summary without touching disk, for
// showing figures before committing to a generation.
func (s *service) Preview(ctx context.Context, employeeID uint) (PreviewResponse, error) {
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PreviewResponse{}, paysliperrors.ErrEmployeeNotFound
		}
		return PreviewResponse{}, err
	}

	comp := empl.Compensation()
	if err := finance.Validate(comp); err != nil {
		return PreviewResponse{}, err
	}
	sum := finance.Compute(comp)

	words, err := finance.AmountToWords(sum.Net)
	if err != nil {
		words = ""
	}

	return PreviewResponse{
		EmployeeID:       empl.ID,
		EmpCode:          empl.EmpCode,
		EmployeeName:     empl.Name,
		Basic:            sum.Basic,
		HRA:              sum.HRA,
		LTA:              sum.LTA,
		SpecialAllowance: sum.SpecialAllowance,
		IncomeTax:        sum.IncomeTax,
		Gross:            sum.Gross,
		Net:              sum.Net,
		AmountInWords:    words,
	}, nil
}

func (s *service) GetAll(ctx context.Context, filter ListPayslipsFilterRequest) ([]PayslipResponse, error) {
	var (
		slips []Payslip
		err   error
	)
	if filter.EmployeeID != 0 {
		slips, err = s.repo.FindByEmployee(ctx, filter.EmployeeID)
	} else {
		slips, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("list payslips failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(slips), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (PayslipResponse, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
		}
		return PayslipResponse{}, err
	}
	return mapToResponse(*slip), nil
}

func (s *service) Lookup(ctx context.Context, req LookupPayslipRequest) (PayslipResponse, error) {
	slip, err := s.repo.FindByEmployeeAndPeriod(ctx, req.EmployeeID, strings.TrimSpace(req.PayPeriod))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayslipResponse{}, paysliperrors.ErrPayslipNotFound
		}
		return PayslipResponse{}, err
	}
	return mapToResponse(*slip), nil
}

// DownloadPath resolves a payslip id to its file, verifying the file
// still exists before the handler streams it.
func (s *service) DownloadPath(ctx context.Context, id uint) (string, error) {
	slip, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", paysliperrors.ErrPayslipNotFound
		}
		return "", err
	}

	if _, err := os.Stat(slip.FilePath); err != nil {
		s.logger.Warn("payslip file missing on disk",
			zap.Uint("payslip_id", slip.ID), zap.String("path", slip.FilePath))
		return "", paysliperrors.ErrPayslipFileMissing
	}

	return slip.FilePath, nil
}

func mapToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		PayPeriod:        p.PayPeriod,
		Notes:            p.Notes,
		Basic:            p.Basic,
		HRA:              p.HRA,
		LTA:              p.LTA,
		SpecialAllowance: p.SpecialAllowance,
		IncomeTax:        p.IncomeTax,
		Gross:            p.Gross,
		Net:              p.Net,
		FilePath:         p.FilePath,
		GeneratedAt:      p.GeneratedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(slips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(slips))
	for i, p := range slips {
		resp[i] = mapToResponse(p)
	}
	return resp
}
