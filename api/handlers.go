/*
handlers.go - HTTP handlers for the statutory calculators

PURPOSE:
  Exposes the calculators over REST. Handlers parse the request DTO, run the
  raw values through the normalizer, call the pure computation, and serialize
  the breakdown.

ENDPOINTS:
  POST /api/calc/parental      The "6+6" dual-plan allocator
  POST /api/calc/severance     Severance pay
  POST /api/calc/annual-leave  Annual leave accrual + payout
  POST /api/calc/weekly-pay    Weekly holiday pay
  GET  /api/statute/years      Published statutory years
  GET  /api/statute/{year}     One year's rate/cap/floor tables

ERROR HANDLING:
  Malformed calculator VALUES never fail a request: wages clamp to zero,
  dates degrade to generic mode, counts clamp into range. That is the
  product contract (an estimate tool must not crash on half-typed input).
  Only an undecodable JSON body is a 400, an unknown statute year on the
  statute endpoints is a 404, and a catalog failure is a 500.

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router and middleware
*/
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shootingstar112/startup-hr-sub000/annualleave"
	"github.com/shootingstar112/startup-hr-sub000/calc"
	"github.com/shootingstar112/startup-hr-sub000/parental"
	"github.com/shootingstar112/startup-hr-sub000/severance"
	"github.com/shootingstar112/startup-hr-sub000/statute"
	"github.com/shootingstar112/startup-hr-sub000/weeklypay"
)

// Handler holds the handler dependencies.
type Handler struct {
	Catalog statute.Catalog
	Log     zerolog.Logger
}

// NewHandler creates a handler over the given statute catalog.
func NewHandler(catalog statute.Catalog, log zerolog.Logger) *Handler {
	return &Handler{Catalog: catalog, Log: log}
}

// tableFor resolves the statute table for a calculation request. Zero or
// unknown years degrade to the default year; only infrastructure failures
// surface as errors.
func (h *Handler) tableFor(year int) (statute.Table, error) {
	if year == 0 {
		year = statute.DefaultYear
	}
	table, err := h.Catalog.TableFor(year)
	if errors.Is(err, statute.ErrYearNotFound) && year != statute.DefaultYear {
		h.Log.Debug().Int("year", year).Msg("unknown statute year, using default")
		return h.Catalog.TableFor(statute.DefaultYear)
	}
	return table, err
}

// =============================================================================
// CALCULATOR HANDLERS
// =============================================================================

// CalcParental runs the dual-plan "6+6" allocation.
func (h *Handler) CalcParental(w http.ResponseWriter, r *http.Request) {
	var req ParentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	table, err := h.tableFor(req.Year)
	if err != nil {
		h.Log.Error().Err(err).Msg("statute catalog unavailable")
		writeError(w, http.StatusInternalServerError, "statute catalog unavailable")
		return
	}

	ref := parental.NewReferenceEvent(req.BirthDate)

	// A plan whose start month did not parse still needs a spot on the
	// timeline; the reference month (or the current month) stands in.
	fallback := calc.MonthOf(time.Now())
	if ref.Valid {
		fallback = ref.Period()
	}

	res := parental.Compute(parental.Input{
		PlanA:     parental.NormalizeWorkPlan(req.PlanA.StartMonth, req.PlanA.Months, req.PlanA.MonthlyWage, req.PlanA.Kind, fallback),
		PlanB:     parental.NormalizeWorkPlan(req.PlanB.StartMonth, req.PlanB.Months, req.PlanB.MonthlyWage, req.PlanB.Kind, fallback),
		Reference: ref,
		Table:     table,
	})

	id := uuid.NewString()
	h.Log.Debug().Str("calculation_id", id).Bool("special", res.SpecialApplied).Int("rows", len(res.Rows)).Msg("parental calculation")
	writeJSON(w, http.StatusOK, toParentalResponse(id, table.Year, res))
}

// CalcSeverance runs the severance pay calculation.
func (h *Handler) CalcSeverance(w http.ResponseWriter, r *http.Request) {
	var req SeveranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := severance.Compute(severance.Normalize(
		req.HireDate, req.SeparationDate,
		req.FinalThreeMonthWages, req.AnnualBonus, req.AnnualLeaveAllowance,
	))

	writeJSON(w, http.StatusOK, SeveranceResponse{
		CalculationID: uuid.NewString(),
		ServiceDays:   res.ServiceDays,
		WindowDays:    res.WindowDays,
		AverageDaily:  res.AverageDaily.Int64(),
		Severance:     res.Severance.Int64(),
	})
}

// CalcAnnualLeave runs the annual leave accrual/payout calculation.
func (h *Handler) CalcAnnualLeave(w http.ResponseWriter, r *http.Request) {
	var req AnnualLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := annualleave.Compute(annualleave.Normalize(
		req.HireDate, req.AsOf, req.MonthlyWage, req.UnusedDays,
	))

	writeJSON(w, http.StatusOK, AnnualLeaveResponse{
		CalculationID: uuid.NewString(),
		ServiceYears:  res.ServiceYears,
		ServiceMonths: res.ServiceMonths,
		AccruedDays:   res.AccruedDays,
		PayoutDays:    res.PayoutDays,
		HourlyWage:    res.HourlyWage.Int64(),
		DailyWage:     res.DailyWage.Int64(),
		Payout:        res.Payout.Int64(),
	})
}

// CalcWeeklyPay runs the weekly holiday pay calculation.
func (h *Handler) CalcWeeklyPay(w http.ResponseWriter, r *http.Request) {
	var req WeeklyPayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := weeklypay.Compute(weeklypay.Normalize(req.HourlyWage, req.WeeklyHours))

	writeJSON(w, http.StatusOK, WeeklyPayResponse{
		CalculationID: uuid.NewString(),
		Eligible:      res.Eligible,
		CountedHours:  res.CountedHours,
		WeeklyPay:     res.WeeklyPay.Int64(),
	})
}

// =============================================================================
// STATUTE HANDLERS
// =============================================================================

// ListStatuteYears returns the published statutory years.
func (h *Handler) ListStatuteYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.Catalog.Years()
	if err != nil {
		h.Log.Error().Err(err).Msg("statute catalog unavailable")
		writeError(w, http.StatusInternalServerError, "statute catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"years":        years,
		"default_year": statute.DefaultYear,
	})
}

// GetStatuteTable returns one year's rate/cap/floor tables.
func (h *Handler) GetStatuteTable(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be numeric")
		return
	}

	table, err := h.Catalog.TableFor(year)
	if errors.Is(err, statute.ErrYearNotFound) {
		writeError(w, http.StatusNotFound, "no table for year")
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Int("year", year).Msg("statute catalog unavailable")
		writeError(w, http.StatusInternalServerError, "statute catalog unavailable")
		return
	}

	writeJSON(w, http.StatusOK, toStatuteTableDTO(table))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
