package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a worker profile. Provisioning and editing happen in the
// back-office app; payroll only reads profiles.
type Employee struct {
	ID                 string
	IndustryID         string
	FullName           string
	PhoneNumber        *string
	Address            *string
	JoiningDate        time.Time
	Department         *string
	Designation        *string
	SalaryPerDay       decimal.Decimal
	PFAmount           decimal.Decimal
	RegularExpenseRate decimal.Decimal
	FoodExpenseRate    decimal.Decimal
	WorkType           *string
	ManagerName        *string
	BankAccountNumber  *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Rate is the payroll-relevant slice of a profile.
type Rate struct {
	RatePerDay      decimal.Decimal
	DailyOtherRate  decimal.Decimal
	DailyFoodRate   decimal.Decimal
	MonthlyPFAmount decimal.Decimal
}

func (e Employee) Rate() Rate {
	return Rate{
		RatePerDay:      e.SalaryPerDay,
		DailyOtherRate:  e.RegularExpenseRate,
		DailyFoodRate:   e.FoodExpenseRate,
		MonthlyPFAmount: e.PFAmount,
	}
}
