package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID                 string          `json:"id"`
	FullName           string          `json:"full_name"`
	PhoneNumber        *string         `json:"phone_number,omitempty"`
	Address            *string         `json:"address,omitempty"`
	JoiningDate        string          `json:"joining_date"`
	Department         *string         `json:"department,omitempty"`
	Designation        *string         `json:"designation,omitempty"`
	SalaryPerDay       decimal.Decimal `json:"salary_per_day"`
	PFAmount           decimal.Decimal `json:"pf_amount"`
	RegularExpenseRate decimal.Decimal `json:"regular_expense_rate"`
	FoodExpenseRate    decimal.Decimal `json:"food_expense_rate"`
	WorkType           *string         `json:"work_type,omitempty"`
	ManagerName        *string         `json:"manager_name,omitempty"`
	BankAccountNumber  *string         `json:"bank_account_number,omitempty"`
}
