package parser

import (
	"math"

	"salesdesk/internal/model"
)

func clamp01to100(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func ptr(v float64) *float64 { return &v }

// Classify maps one row to a typed report record, applying the product's
// validity rules. It returns nil when the row carries no resolvable
// representative name or fails the product's emission rule.
func Classify(row Row, productType model.ProductType) *model.RawReport {
	name := model.Normalize(row.ResolveName())
	if name == "" {
		return nil
	}

	report := &model.RawReport{
		RepresentativeName: name,
		ProductType:        productType,
	}

	specs := productFields[productType]
	values := make(map[string]string, len(specs))
	for _, spec := range specs {
		values[spec.Key] = row.Resolve(spec.Aliases)
	}

	switch productType {
	case model.ProductCreditCards:
		// Zero defaults are acceptable here, unlike the threshold types.
		report.Offers = ptr(Number(values["offers"]))
		report.Issuance = ptr(Number(values["issuance"]))
		report.Utilization = ptr(Percentage(values["utilization"]))

	case model.ProductSimCards:
		// The tariff column is a fraction-of-a-fraction convention: the
		// already-normalized percentage is multiplied by 100 again, then
		// clamped to [0,100].
		pct := Percentage(values["tariffPaymentPercent"]) * 100
		report.Offers = ptr(Number(values["offers"]))
		report.TariffPayments = ptr(Number(values["tariffPayments"]))
		report.TariffPaymentPercent = ptr(clamp01to100(pct))

	case model.ProductInvestments:
		report.Offers = ptr(Number(values["offers"]))
		report.AccountOpening = ptr(Number(values["accountOpening"]))
		report.Utilization = ptr(Percentage(values["utilization"]))

	case model.ProductSuccessRate:
		rate := Percentage(values["successRate"])
		if rate <= 0 {
			return nil
		}
		report.SuccessRate = ptr(clamp01to100(rate))

	case model.ProductCourseProgress:
		// Same double-scaling convention as the SIM tariff percent.
		progress := Percentage(values["progress"]) * 100
		if progress <= 0 {
			return nil
		}
		rounded := int(math.Round(clamp01to100(progress)))
		report.CourseProgress = &rounded

	case model.ProductDataUpdate:
		count := Number(values["salesCount"])
		if count <= 0 {
			return nil
		}
		report.SalesCount = ptr(count)

	case model.ProductCompletionData:
		if values["completionDate"] != "" {
			report.TrainingCompletionDate = Date(values["completionDate"])
		}
		if values["profileUrl"] != "" {
			report.ProfileURL = URLFromRichText(values["profileUrl"])
		}
		if report.TrainingCompletionDate == "" && report.ProfileURL == "" {
			return nil
		}

	default:
		return nil
	}

	return report
}
