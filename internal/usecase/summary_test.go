package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdrops-service/internal/domain/entity"
)

func TestConnectionRate(t *testing.T) {
	assert.Equal(t, "0", ConnectionRate(0, 0))
	assert.Equal(t, "0", ConnectionRate(5, 0))
	assert.Equal(t, "25.0", ConnectionRate(25, 100))
	assert.Equal(t, "100.0", ConnectionRate(10, 10))
	assert.Equal(t, "33.3", ConnectionRate(1, 3))
	assert.Equal(t, "0.0", ConnectionRate(0, 50))
}

func TestSummarizeAppointments(t *testing.T) {
	appointments := []*entity.Appointment{
		{Status: entity.StatusConducted, Company: "Acme", SdrName: "Alex", Opportunity: true},
		{Status: entity.StatusNoShow, Company: "Acme", SdrName: "Sam"},
		{Status: entity.StatusPending, Company: "Globex", SdrName: "Alex"},
		{Status: "", Company: "", SdrName: ""},
	}

	summary := SummarizeAppointments(appointments)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Conducted)
	assert.Equal(t, 1, summary.NoShows)
	assert.Equal(t, 2, summary.Pending)
	assert.Equal(t, 1, summary.Opportunities)

	// empty names do not count as a distinct company or rep
	assert.Equal(t, 2, summary.DistinctCompanies)
	assert.Equal(t, 2, summary.DistinctSdrs)
}

func TestSummarizeStatistics(t *testing.T) {
	stats := []*entity.DailyStatistic{
		{SdrName: "Alex", Calls: 40, Connected: 10, Emails: 5, PotentialAppt: 2},
		{SdrName: "Sam", Calls: 60, Connected: 15, Emails: 3, PotentialAppt: 1},
		{SdrName: "Alex", Calls: 10, Connected: 5, Emails: 2, PotentialAppt: 0},
	}

	summary := SummarizeStatistics(stats)

	assert.Equal(t, 110, summary.TotalCalls)
	assert.Equal(t, 30, summary.TotalConnected)
	assert.Equal(t, 10, summary.TotalEmails)
	assert.Equal(t, 3, summary.TotalPotentialAppt)
	assert.Equal(t, "27.3", summary.ConnectionRate)

	// grouped in first appearance order
	require.Len(t, summary.BySdr, 2)
	assert.Equal(t, "Alex", summary.BySdr[0].SdrName)
	assert.Equal(t, 50, summary.BySdr[0].Calls)
	assert.Equal(t, 15, summary.BySdr[0].Connected)
	assert.Equal(t, "30.0", summary.BySdr[0].ConnectionRate)
	assert.Equal(t, "Sam", summary.BySdr[1].SdrName)
	assert.Equal(t, 60, summary.BySdr[1].Calls)

	// per-group sums equal the overall totals
	var calls, connected int
	for _, r := range summary.BySdr {
		calls += r.Calls
		connected += r.Connected
	}
	assert.Equal(t, summary.TotalCalls, calls)
	assert.Equal(t, summary.TotalConnected, connected)
}

func TestSummarizeStatisticsCaseSensitiveGrouping(t *testing.T) {
	stats := []*entity.DailyStatistic{
		{SdrName: "alex", Calls: 10},
		{SdrName: "Alex", Calls: 20},
	}

	summary := SummarizeStatistics(stats)
	assert.Len(t, summary.BySdr, 2)
	assert.Equal(t, 30, summary.TotalCalls)
}

func TestSummarizeIncentives(t *testing.T) {
	incentives := []*entity.Incentive{
		{Approved: true, Amount: decimal.NewFromFloat(100.50)},
		{Approved: true, Amount: decimal.NewFromInt(50)},
		{Approved: false, Amount: decimal.NewFromInt(75)},
	}

	summary := SummarizeIncentives(incentives)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.ApprovedCount)
	assert.Equal(t, 1, summary.PendingCount)
	assert.True(t, summary.TotalApproved.Equal(decimal.NewFromFloat(150.50)))
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(75)))
}

func TestSummarizeEmpty(t *testing.T) {
	appointments := SummarizeAppointments(nil)
	assert.Equal(t, 0, appointments.Total)

	stats := SummarizeStatistics(nil)
	assert.Equal(t, "0", stats.ConnectionRate)
	assert.Empty(t, stats.BySdr)

	incentives := SummarizeIncentives(nil)
	assert.True(t, incentives.TotalApproved.IsZero())
	assert.True(t, incentives.TotalPending.IsZero())
}
