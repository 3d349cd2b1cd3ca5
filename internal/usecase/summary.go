package usecase

import (
	"strconv"

	"github.com/shopspring/decimal"

	"sdrops-service/internal/domain/entity"
)

// AppointmentSummary holds the counts shown on the meetings overview cards
type AppointmentSummary struct {
	Total             int `json:"total"`
	Conducted         int `json:"conducted"`
	NoShows           int `json:"noShows"`
	Pending           int `json:"pending"`
	Opportunities     int `json:"opportunities"`
	DistinctCompanies int `json:"distinctCompanies"`
	DistinctSdrs      int `json:"distinctSdrs"`
}

// SdrRollup is one representative's summed counters
type SdrRollup struct {
	SdrName        string `json:"sdrName"`
	Calls          int    `json:"calls"`
	Connected      int    `json:"connected"`
	Emails         int    `json:"emails"`
	PotentialAppt  int    `json:"potentialAppt"`
	ConnectionRate string `json:"connectionRate"`
}

// StatsSummary holds overall counter totals plus per-representative rollups
type StatsSummary struct {
	TotalCalls         int         `json:"totalCalls"`
	TotalConnected     int         `json:"totalConnected"`
	TotalEmails        int         `json:"totalEmails"`
	TotalPotentialAppt int         `json:"totalPotentialAppt"`
	ConnectionRate     string      `json:"connectionRate"`
	BySdr              []SdrRollup `json:"bySdr"`
}

// IncentiveSummary holds approved and pending SPIFF totals
type IncentiveSummary struct {
	TotalApproved decimal.Decimal `json:"totalApproved"`
	TotalPending  decimal.Decimal `json:"totalPending"`
	ApprovedCount int             `json:"approvedCount"`
	PendingCount  int             `json:"pendingCount"`
	Total         int             `json:"total"`
}

// ConnectionRate renders connected/calls as a percentage with one
// decimal place. Zero calls yields "0", never a division by zero.
func ConnectionRate(connected, calls int) string {
	if calls == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(connected)/float64(calls)*100, 'f', 1, 64)
}

// SummarizeAppointments computes status and distinct counts over a listing
func SummarizeAppointments(appointments []*entity.Appointment) *AppointmentSummary {
	summary := &AppointmentSummary{Total: len(appointments)}
	companies := make(map[string]struct{})
	sdrs := make(map[string]struct{})

	for _, a := range appointments {
		switch {
		case a.Conducted():
			summary.Conducted++
		case a.NoShow():
			summary.NoShows++
		default:
			summary.Pending++
		}
		if a.Opportunity {
			summary.Opportunities++
		}
		if a.Company != "" {
			companies[a.Company] = struct{}{}
		}
		if a.SdrName != "" {
			sdrs[a.SdrName] = struct{}{}
		}
	}

	summary.DistinctCompanies = len(companies)
	summary.DistinctSdrs = len(sdrs)

	return summary
}

// SummarizeStatistics sums the four counters overall and per
// representative. Grouping is by exact name, case sensitive, in first
// appearance order; inconsistent spellings form distinct groups.
func SummarizeStatistics(stats []*entity.DailyStatistic) *StatsSummary {
	summary := &StatsSummary{}
	position := make(map[string]int)

	for _, stat := range stats {
		summary.TotalCalls += stat.Calls
		summary.TotalConnected += stat.Connected
		summary.TotalEmails += stat.Emails
		summary.TotalPotentialAppt += stat.PotentialAppt

		idx, seen := position[stat.SdrName]
		if !seen {
			idx = len(summary.BySdr)
			position[stat.SdrName] = idx
			summary.BySdr = append(summary.BySdr, SdrRollup{SdrName: stat.SdrName})
		}
		summary.BySdr[idx].Calls += stat.Calls
		summary.BySdr[idx].Connected += stat.Connected
		summary.BySdr[idx].Emails += stat.Emails
		summary.BySdr[idx].PotentialAppt += stat.PotentialAppt
	}

	summary.ConnectionRate = ConnectionRate(summary.TotalConnected, summary.TotalCalls)
	for i := range summary.BySdr {
		summary.BySdr[i].ConnectionRate = ConnectionRate(summary.BySdr[i].Connected, summary.BySdr[i].Calls)
	}

	return summary
}

// SummarizeIncentives totals SPIFF amounts split by approval state
func SummarizeIncentives(incentives []*entity.Incentive) *IncentiveSummary {
	summary := &IncentiveSummary{
		TotalApproved: decimal.Zero,
		TotalPending:  decimal.Zero,
		Total:         len(incentives),
	}

	for _, incentive := range incentives {
		if incentive.Approved {
			summary.TotalApproved = summary.TotalApproved.Add(incentive.Amount)
			summary.ApprovedCount++
		} else {
			summary.TotalPending = summary.TotalPending.Add(incentive.Amount)
			summary.PendingCount++
		}
	}

	return summary
}
