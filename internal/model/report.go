package model

// ProductType tags an uploaded report with the product line it describes.
type ProductType string

const (
	ProductCreditCards    ProductType = "creditCards"
	ProductSimCards       ProductType = "simCards"
	ProductInvestments    ProductType = "investments"
	ProductDataUpdate     ProductType = "dataUpdate"
	ProductSuccessRate    ProductType = "successRate"
	ProductCourseProgress ProductType = "courseProgress"
	ProductCompletionData ProductType = "completionData"
)

// ProductTypes lists every supported report type.
func ProductTypes() []ProductType {
	return []ProductType{
		ProductCreditCards,
		ProductSimCards,
		ProductInvestments,
		ProductDataUpdate,
		ProductSuccessRate,
		ProductCourseProgress,
		ProductCompletionData,
	}
}

// Valid reports whether t is a supported product type.
func (t ProductType) Valid() bool {
	for _, known := range ProductTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// RawReport is the transient result of classifying one spreadsheet row.
// Exactly one product's field subset is populated; pointer fields
// distinguish "present" from zero. RawReports are never persisted.
type RawReport struct {
	RepresentativeName string
	ProductType        ProductType

	Offers               *float64
	Issuance             *float64
	Utilization          *float64
	TariffPayments       *float64
	TariffPaymentPercent *float64
	AccountOpening       *float64
	SalesCount           *float64
	SuccessRate          *float64
	CourseProgress       *int

	TrainingCompletionDate string
	ProfileURL             string
}
