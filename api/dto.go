/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the calculator endpoints. Request DTOs deliberately
  carry raw strings for wages, counts, and dates: the whole point of the
  calculators is tolerance to messy form input, so normalization happens
  server-side through calc's normalizer, never through JSON type errors.

NAMING CONVENTION:
  - *Request: request bodies from clients
  - *DTO: response types returned to clients

SEE ALSO:
  - handlers.go: Uses these types
  - calc/normalize.go: The tolerance contract
*/
package api

import (
	"github.com/shootingstar112/startup-hr-sub000/parental"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// =============================================================================
// PARENTAL ("6+6") CALCULATOR
// =============================================================================

// PlanRequest is one parent's leave declaration, raw form values.
type PlanRequest struct {
	StartMonth  string `json:"start_month"`  // "2025-04"
	Months      string `json:"months"`       // "6"
	MonthlyWage string `json:"monthly_wage"` // "3,500,000"
	Kind        string `json:"kind,omitempty"`
}

// ParentalRequest is the dual-plan calculation request.
type ParentalRequest struct {
	PlanA     PlanRequest `json:"plan_a"`
	PlanB     PlanRequest `json:"plan_b"`
	BirthDate string      `json:"birth_date"` // "2025-03-15"
	Year      int         `json:"statute_year,omitempty"`
}

// PaymentRowDTO is one payable line.
type PaymentRowDTO struct {
	Period     string `json:"period"`
	Payer      string `json:"payer"`
	Amount     int64  `json:"amount"`
	TopUp      int64  `json:"top_up"`
	MonthIndex int    `json:"month_index"` // 0 marks a retroactive row
}

// ParentalResponse is the full allocation breakdown.
type ParentalResponse struct {
	CalculationID  string          `json:"calculation_id"`
	StatuteYear    int             `json:"statute_year"`
	SpecialApplied bool            `json:"special_applied"`
	OverlapMonths  int             `json:"overlap_months"`
	LaterPayer     string          `json:"later_payer,omitempty"`
	Rows           []PaymentRowDTO `json:"rows"`
	Total          int64           `json:"total"`
	TotalByPayer   map[string]int64 `json:"total_by_payer"`
	TotalTopUps    int64           `json:"total_top_ups"`
}

func toParentalResponse(id string, year int, res parental.Result) ParentalResponse {
	rows := make([]PaymentRowDTO, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = PaymentRowDTO{
			Period:     r.Period.String(),
			Payer:      string(r.Payer),
			Amount:     r.Amount.Int64(),
			TopUp:      r.TopUp.Int64(),
			MonthIndex: r.MonthIndex,
		}
	}
	return ParentalResponse{
		CalculationID:  id,
		StatuteYear:    year,
		SpecialApplied: res.SpecialApplied,
		OverlapMonths:  res.OverlapMonths,
		LaterPayer:     string(res.Later),
		Rows:           rows,
		Total:          res.Totals.Total.Int64(),
		TotalByPayer: map[string]int64{
			string(parental.PayerA): res.Totals.ByPayer[parental.PayerA].Int64(),
			string(parental.PayerB): res.Totals.ByPayer[parental.PayerB].Int64(),
		},
		TotalTopUps: res.Totals.TopUps.Int64(),
	}
}

// =============================================================================
// SIBLING CALCULATORS
// =============================================================================

// SeveranceRequest is the severance calculation request.
type SeveranceRequest struct {
	HireDate             string `json:"hire_date"`
	SeparationDate       string `json:"separation_date"`
	FinalThreeMonthWages string `json:"final_three_month_wages"`
	AnnualBonus          string `json:"annual_bonus,omitempty"`
	AnnualLeaveAllowance string `json:"annual_leave_allowance,omitempty"`
}

// SeveranceResponse is the severance breakdown.
type SeveranceResponse struct {
	CalculationID string `json:"calculation_id"`
	ServiceDays   int    `json:"service_days"`
	WindowDays    int    `json:"window_days"`
	AverageDaily  int64  `json:"average_daily_wage"`
	Severance     int64  `json:"severance"`
}

// AnnualLeaveRequest is the annual-leave calculation request.
type AnnualLeaveRequest struct {
	HireDate    string `json:"hire_date"`
	AsOf        string `json:"as_of"`
	MonthlyWage string `json:"monthly_wage"`
	UnusedDays  string `json:"unused_days,omitempty"`
}

// AnnualLeaveResponse is the accrual/payout breakdown.
type AnnualLeaveResponse struct {
	CalculationID string `json:"calculation_id"`
	ServiceYears  int    `json:"service_years"`
	ServiceMonths int    `json:"service_months"`
	AccruedDays   int    `json:"accrued_days"`
	PayoutDays    int    `json:"payout_days"`
	HourlyWage    int64  `json:"hourly_wage"`
	DailyWage     int64  `json:"daily_wage"`
	Payout        int64  `json:"payout"`
}

// WeeklyPayRequest is the weekly holiday pay request.
type WeeklyPayRequest struct {
	HourlyWage  string `json:"hourly_wage"`
	WeeklyHours string `json:"weekly_hours"`
}

// WeeklyPayResponse is the weekly holiday pay breakdown.
type WeeklyPayResponse struct {
	CalculationID string `json:"calculation_id"`
	Eligible      bool   `json:"eligible"`
	CountedHours  int    `json:"counted_hours"`
	WeeklyPay     int64  `json:"weekly_pay"`
}

// =============================================================================
// STATUTE TABLES
// =============================================================================

// BandRuleDTO publishes one band rule.
type BandRuleDTO struct {
	FromIndex int    `json:"from_index"`
	ToIndex   int    `json:"to_index"`
	Rate      string `json:"rate"`
	Cap       int64  `json:"cap"`
}

// StatuteTableDTO publishes one statutory year's figures.
type StatuteTableDTO struct {
	Year  int                      `json:"year"`
	Floor int64                    `json:"floor"`
	Bands map[string][]BandRuleDTO `json:"bands"`
}

func toStatuteTableDTO(t statute.Table) StatuteTableDTO {
	dto := StatuteTableDTO{
		Year:  t.Year,
		Floor: t.Floor.Int64(),
		Bands: make(map[string][]BandRuleDTO, len(t.Bands)),
	}
	for kind, bands := range t.Bands {
		rules := make([]BandRuleDTO, len(bands))
		for i, b := range bands {
			rules[i] = BandRuleDTO{
				FromIndex: b.FromIndex,
				ToIndex:   b.ToIndex,
				Rate:      b.Rate.String(),
				Cap:       b.Cap.Int64(),
			}
		}
		dto.Bands[string(kind)] = rules
	}
	return dto
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
