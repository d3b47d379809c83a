// Package reconciler merges classified report rows into the representative
// list and the per-period performance store. All mutations for one batch are
// computed against a snapshot and returned as one next-state value; callers
// publish the result atomically.
package reconciler

import (
	"log"

	"salesdesk/internal/model"
)

// Input is one reconciliation batch over a consistent state snapshot.
type Input struct {
	Reports         []*model.RawReport
	ProductType     model.ProductType
	Period          model.Period
	Representatives []model.Representative
	Performance     model.PerformanceMap
}

// Result is the full next state plus the batch counters.
type Result struct {
	Representatives []model.Representative
	Performance     model.PerformanceMap
	Processed       int
	Skipped         int
}

// mergeTarget says where a product type's update lands.
type mergeTarget int

const (
	// targetRecord replaces part of the period-scoped performance record.
	targetRecord mergeTarget = iota
	// targetRepresentative overwrites period-independent attributes of the
	// representative entity.
	targetRepresentative
)

// policy declares a product type's merge behavior: completeness check,
// target, and the apply function. Sub-records are replaced wholesale (a
// report always carries a complete snapshot for its product); representative
// attributes are overwritten, completionData fields only when present.
type policy struct {
	target      mergeTarget
	complete    func(*model.RawReport) bool
	applyRecord func(*model.PerformanceRecord, *model.RawReport)
	applyRep    func(*model.Representative, *model.RawReport)
}

var policies = map[model.ProductType]policy{
	model.ProductCreditCards: {
		target: targetRecord,
		complete: func(r *model.RawReport) bool {
			return r.Offers != nil && r.Issuance != nil && r.Utilization != nil
		},
		applyRecord: func(rec *model.PerformanceRecord, r *model.RawReport) {
			rec.CreditCards = model.CreditCardData{
				Offers:      *r.Offers,
				Issuance:    *r.Issuance,
				Utilization: *r.Utilization,
			}
		},
	},
	model.ProductSimCards: {
		target: targetRecord,
		complete: func(r *model.RawReport) bool {
			return r.Offers != nil && r.TariffPayments != nil && r.TariffPaymentPercent != nil
		},
		applyRecord: func(rec *model.PerformanceRecord, r *model.RawReport) {
			rec.SimCards = model.SimCardData{
				Offers:               *r.Offers,
				TariffPayments:       *r.TariffPayments,
				TariffPaymentPercent: *r.TariffPaymentPercent,
			}
		},
	},
	model.ProductInvestments: {
		target: targetRecord,
		complete: func(r *model.RawReport) bool {
			return r.Offers != nil && r.AccountOpening != nil && r.Utilization != nil
		},
		applyRecord: func(rec *model.PerformanceRecord, r *model.RawReport) {
			rec.Investments = model.InvestmentData{
				Offers:         *r.Offers,
				AccountOpening: *r.AccountOpening,
				Utilization:    *r.Utilization,
			}
		},
	},
	model.ProductDataUpdate: {
		target: targetRecord,
		complete: func(r *model.RawReport) bool {
			return r.SalesCount != nil
		},
		applyRecord: func(rec *model.PerformanceRecord, r *model.RawReport) {
			rec.DataUpdate = *r.SalesCount
		},
	},
	model.ProductSuccessRate: {
		target: targetRepresentative,
		complete: func(r *model.RawReport) bool {
			return r.SuccessRate != nil
		},
		applyRep: func(rep *model.Representative, r *model.RawReport) {
			rep.SuccessRate = *r.SuccessRate
		},
	},
	model.ProductCourseProgress: {
		target: targetRepresentative,
		complete: func(r *model.RawReport) bool {
			return r.CourseProgress != nil
		},
		applyRep: func(rep *model.Representative, r *model.RawReport) {
			rep.CourseProgress = *r.CourseProgress
		},
	},
	model.ProductCompletionData: {
		target: targetRepresentative,
		complete: func(r *model.RawReport) bool {
			return r.TrainingCompletionDate != "" || r.ProfileURL != ""
		},
		applyRep: func(rep *model.Representative, r *model.RawReport) {
			// Absent incoming values never erase an existing value.
			if r.TrainingCompletionDate != "" {
				rep.TrainingCompletionDate = r.TrainingCompletionDate
			}
			if r.ProfileURL != "" {
				rep.ProfileURL = r.ProfileURL
			}
		},
	},
}

// Reconcile matches each report to a known representative and applies the
// product type's update for the active period, leaving all other fields and
// periods untouched. Unmatched reports and reports whose payload does not
// satisfy the product's required-field set are counted as skipped.
func Reconcile(in Input) Result {
	reps := make([]model.Representative, len(in.Representatives))
	copy(reps, in.Representatives)
	perf := in.Performance.Clone()

	out := Result{Representatives: reps, Performance: perf}

	for _, report := range in.Reports {
		idx := model.FindRepresentative(reps, report.RepresentativeName)
		if idx < 0 {
			log.Printf("reconcile: no representative matches %q, skipping row", report.RepresentativeName)
			out.Skipped++
			continue
		}

		p, ok := policies[in.ProductType]
		if !ok || !p.complete(report) {
			log.Printf("reconcile: incomplete %s payload for %q, skipping row", in.ProductType, report.RepresentativeName)
			out.Skipped++
			continue
		}

		switch p.target {
		case targetRecord:
			rec := perf.Record(in.Period, reps[idx].ID)
			p.applyRecord(&rec, report)
			perf.Set(in.Period, reps[idx].ID, rec)
		case targetRepresentative:
			p.applyRep(&reps[idx], report)
		}
		out.Processed++
	}

	return out
}
