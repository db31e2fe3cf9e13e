package payslip

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payslip) error
	FindByID(ctx context.Context, id uint) (*Payslip, error)
	FindByEmployee(ctx context.Context, employeeID uint) ([]Payslip, error)
	FindAll(ctx context.Context) ([]Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID uint, payPeriod string) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uint) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindAll(ctx context.Context) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Order("generated_at DESC").
		Find(&slips).Error
	return slips, err
}

// FindByEmployeeAndPeriod returns the most recent slip for the pair;
// the pair is not unique, regeneration simply appends.
func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID uint, payPeriod string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND pay_period = ?", employeeID, payPeriod).
		Order("generated_at DESC").
		First(&p).Error
	return &p, err
}
