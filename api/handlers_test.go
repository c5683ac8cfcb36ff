package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shootingstar112/startup-hr-sub000/api"
	"github.com/shootingstar112/startup-hr-sub000/statute"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := api.NewHandler(statute.BuiltinCatalog{}, zerolog.Nop())
	srv := httptest.NewServer(api.NewRouter(h))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// =============================================================================
// PARENTAL CALCULATOR
// =============================================================================

func TestCalcParental_SpecialBanding(t *testing.T) {
	srv := newTestServer(t)

	req := api.ParentalRequest{
		PlanA:     api.PlanRequest{StartMonth: "2025-03", Months: "6", MonthlyWage: "5,000,000"},
		PlanB:     api.PlanRequest{StartMonth: "2025-05", Months: "6", MonthlyWage: "3,000,000"},
		BirthDate: "2025-03-15",
	}

	var res api.ParentalResponse
	resp := postJSON(t, srv.URL+"/api/calc/parental", req, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, res.CalculationID)
	assert.Equal(t, statute.DefaultYear, res.StatuteYear)
	assert.True(t, res.SpecialApplied)
	assert.Equal(t, 4, res.OverlapMonths)
	assert.Equal(t, "B", res.LaterPayer)
	assert.Len(t, res.Rows, 14) // 6 + 6 base rows + 2 retroactive
	assert.Equal(t, res.Total, res.TotalByPayer["A"]+res.TotalByPayer["B"])
}

func TestCalcParental_MessyInputNeverFails(t *testing.T) {
	// Malformed wages, counts, and dates clamp/degrade; the endpoint must
	// still return 200 with a generic-mode result.
	srv := newTestServer(t)

	req := api.ParentalRequest{
		PlanA:     api.PlanRequest{StartMonth: "whenever", Months: "lots", MonthlyWage: "???"},
		PlanB:     api.PlanRequest{StartMonth: "2025-13", Months: "none", MonthlyWage: "free"},
		BirthDate: "2025-02-30",
	}

	var res api.ParentalResponse
	resp := postJSON(t, srv.URL+"/api/calc/parental", req, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, res.SpecialApplied)
	// Both plans clamp to 1 month; amounts clamp up to the statutory floor.
	assert.Len(t, res.Rows, 2)
	for _, row := range res.Rows {
		assert.EqualValues(t, 700_000, row.Amount)
	}
}

func TestCalcParental_UnknownStatuteYearFallsBack(t *testing.T) {
	srv := newTestServer(t)

	req := api.ParentalRequest{
		PlanA:     api.PlanRequest{StartMonth: "2025-03", Months: "1", MonthlyWage: "1,000,000"},
		PlanB:     api.PlanRequest{StartMonth: "2025-03", Months: "1", MonthlyWage: "1,000,000"},
		BirthDate: "2025-03-01",
		Year:      1987,
	}

	var res api.ParentalResponse
	resp := postJSON(t, srv.URL+"/api/calc/parental", req, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, statute.DefaultYear, res.StatuteYear)
}

func TestCalcParental_BadBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/calc/parental", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// SIBLING CALCULATORS
// =============================================================================

func TestCalcSeverance(t *testing.T) {
	srv := newTestServer(t)

	var res api.SeveranceResponse
	resp := postJSON(t, srv.URL+"/api/calc/severance", api.SeveranceRequest{
		HireDate:             "2024-04-01",
		SeparationDate:       "2025-04-01",
		FinalThreeMonthWages: "9,000,000",
	}, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 365, res.ServiceDays)
	assert.EqualValues(t, 3_000_000, res.Severance)
}

func TestCalcAnnualLeave(t *testing.T) {
	srv := newTestServer(t)

	var res api.AnnualLeaveResponse
	resp := postJSON(t, srv.URL+"/api/calc/annual-leave", api.AnnualLeaveRequest{
		HireDate:    "2024-01-01",
		AsOf:        "2025-06-01",
		MonthlyWage: "2,090,000",
		UnusedDays:  "5",
	}, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 15, res.AccruedDays)
	assert.EqualValues(t, 400_000, res.Payout)
}

func TestCalcWeeklyPay(t *testing.T) {
	srv := newTestServer(t)

	var res api.WeeklyPayResponse
	resp := postJSON(t, srv.URL+"/api/calc/weekly-pay", api.WeeklyPayRequest{
		HourlyWage:  "10,030",
		WeeklyHours: "40",
	}, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, res.Eligible)
	assert.EqualValues(t, 80_240, res.WeeklyPay)
}

// =============================================================================
// STATUTE ENDPOINTS
// =============================================================================

func TestStatuteEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/statute/years")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var years struct {
		Years       []int `json:"years"`
		DefaultYear int   `json:"default_year"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&years))
	assert.Equal(t, statute.DefaultYear, years.DefaultYear)
	assert.NotEmpty(t, years.Years)

	resp2, err := http.Get(srv.URL + "/api/statute/2025")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)

	var table api.StatuteTableDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&table))
	assert.Equal(t, 2025, table.Year)
	assert.EqualValues(t, 700_000, table.Floor)
	assert.Contains(t, table.Bands, "special")

	resp3, err := http.Get(srv.URL + "/api/statute/1999")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}
