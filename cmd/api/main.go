package main

import (
	"fmt"
	"net/http"

	"github.com/wagedesk/payroll-backend-go/internal/config"
	appHTTP "github.com/wagedesk/payroll-backend-go/internal/handler/http"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/database"
	"github.com/wagedesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/wagedesk/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wagedesk/payroll-backend-go/internal/service/attendance"
	calendarService "github.com/wagedesk/payroll-backend-go/internal/service/calendar"
	employeeService "github.com/wagedesk/payroll-backend-go/internal/service/employee"
	ledgerService "github.com/wagedesk/payroll-backend-go/internal/service/ledger"
	payrollService "github.com/wagedesk/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	calendarSvc := calendarService.NewCalendarService(calendarRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, calendarSvc)
	loanSvc := ledgerService.NewLoanService(loanRepo, employeeRepo)
	advanceSvc := ledgerService.NewAdvanceService(advanceRepo, employeeRepo)
	ledgerSvc := ledgerService.NewLedgerService(loanRepo, advanceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceSvc, ledgerSvc, db)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	loanHandler := appHTTP.NewLoanHandler(loanSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		employeeHandler,
		calendarHandler,
		attendanceHandler,
		loanHandler,
		advanceHandler,
		payrollHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
