package usecase

import (
	"slices"

	"lumora/internal/domain"
)

// CampaignPredicate selects campaigns ahead of a summary.
type CampaignPredicate func(domain.PlatformCampaign) bool

// ByPlatform matches one platform; an empty id matches all.
func ByPlatform(id domain.PlatformID) CampaignPredicate {
	return func(c domain.PlatformCampaign) bool {
		return id == "" || c.Platform == id
	}
}

// ByStatus matches one status; an empty status matches all.
func ByStatus(status domain.CampaignStatus) CampaignPredicate {
	return func(c domain.PlatformCampaign) bool {
		return status == "" || c.Status == status
	}
}

// FilterCampaigns keeps the campaigns every predicate accepts, in input order.
func FilterCampaigns(campaigns []domain.PlatformCampaign, preds ...CampaignPredicate) []domain.PlatformCampaign {
	out := make([]domain.PlatformCampaign, 0, len(campaigns))
next:
	for _, c := range campaigns {
		for _, pred := range preds {
			if !pred(c) {
				continue next
			}
		}
		out = append(out, c)
	}
	return out
}

// Summarize totals spend, conversions and impressions and averages ROAS.
// An empty input yields the zero summary. Float terms are summed in sorted
// order so the result does not depend on input order.
func Summarize(campaigns []domain.PlatformCampaign) domain.AggregateSummary {
	if len(campaigns) == 0 {
		return domain.AggregateSummary{}
	}

	spends := make([]float64, 0, len(campaigns))
	roas := make([]float64, 0, len(campaigns))
	var summary domain.AggregateSummary
	for _, c := range campaigns {
		spends = append(spends, c.Metrics.Spend)
		roas = append(roas, c.Metrics.ROAS)
		summary.TotalConversions += c.Metrics.Conversions
		summary.TotalImpressions += c.Metrics.Impressions
	}

	summary.TotalSpend = sortedSum(spends)
	summary.AverageROAS = sortedSum(roas) / float64(len(roas))
	return summary
}

// SummarizeWhere filters then summarizes.
func SummarizeWhere(campaigns []domain.PlatformCampaign, preds ...CampaignPredicate) domain.AggregateSummary {
	return Summarize(FilterCampaigns(campaigns, preds...))
}

func sortedSum(values []float64) float64 {
	slices.Sort(values)
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}
