package service

import (
	"go-image-metrics/pkg/models"

	"gonum.org/v1/gonum/stat"
)

func summarizeFullReference(items []models.ItemResult) models.BatchSummary {
	summary := models.BatchSummary{Total: len(items)}

	var pcqi, agRef, agDist, eiRef, eiDist []float64
	for _, item := range items {
		switch {
		case item.Status == models.StatusScored:
			summary.Scored++
			r := item.Record
			pcqi = append(pcqi, *r.PCQI)
			agRef = append(agRef, r.AGRef)
			agDist = append(agDist, r.AGDist)
			eiRef = append(eiRef, r.EIRef)
			eiDist = append(eiDist, r.EIDist)
		case item.Status.Skipped():
			summary.Skipped++
		case item.Status == models.StatusInvalid:
			summary.Invalid++
		default:
			summary.Failed++
		}
	}

	if summary.Scored == 0 {
		summary.Empty = true
		return summary
	}

	summary.MeanPCQI = stat.Mean(pcqi, nil)
	summary.MeanAGRef = stat.Mean(agRef, nil)
	summary.MeanAGDist = stat.Mean(agDist, nil)
	summary.MeanEIRef = stat.Mean(eiRef, nil)
	summary.MeanEIDist = stat.Mean(eiDist, nil)
	summary.AGChangePct = percentChange(summary.MeanAGRef, summary.MeanAGDist)
	summary.EIChangePct = percentChange(summary.MeanEIRef, summary.MeanEIDist)
	return summary
}

// percentChange returns the signed relative change from ref to dist in
// percent, or nil when ref is zero
func percentChange(ref, dist float64) *float64 {
	if ref == 0 {
		return nil
	}
	pct := (dist - ref) / ref * 100
	return &pct
}

func summarizeNoReference(items []models.NoReferenceItem) models.NoReferenceSummary {
	summary := models.NoReferenceSummary{Total: len(items)}

	var scores []float64
	for _, item := range items {
		if item.Status != models.StatusScored {
			continue
		}
		file := models.ScoredFile{Filename: item.Filename, Score: *item.Score}
		scores = append(scores, file.Score)

		if summary.Best == nil || file.Score > summary.Best.Score {
			best := file
			summary.Best = &best
		}
		if summary.Worst == nil || file.Score < summary.Worst.Score {
			worst := file
			summary.Worst = &worst
		}
	}

	summary.Succeeded = len(scores)
	if summary.Succeeded == 0 {
		summary.Empty = true
		return summary
	}
	summary.Mean = stat.Mean(scores, nil)
	return summary
}
