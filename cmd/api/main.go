package main

import (
	"fmt"
	"net/http"

	"github.com/studiopayroll/payroll-engine-go/internal/config"
	appHTTP "github.com/studiopayroll/payroll-engine-go/internal/handler/http"
	payrollService "github.com/studiopayroll/payroll-engine-go/internal/service/payroll"
	sheetService "github.com/studiopayroll/payroll-engine-go/internal/service/sheet"
	timecardService "github.com/studiopayroll/payroll-engine-go/internal/service/timecard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	payrollSvc := payrollService.NewPayrollService(cfg.Rates())
	timecardSvc := timecardService.NewTimecardService(cfg.WorkSchedule())
	sheetSvc := sheetService.NewSheetService()

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	timecardHandler := appHTTP.NewTimecardHandler(timecardSvc, sheetSvc)

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.AllowedOrigins, payrollHandler, timecardHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
