package model

// Period is a disjoint time bucket over which performance is tracked
// independently. Updates to one period never touch the other.
type Period string

const (
	PeriodCurrentMonth Period = "currentMonth"
	PeriodLast3Months  Period = "last3Months"
)

// Periods lists every defined period.
func Periods() []Period {
	return []Period{PeriodCurrentMonth, PeriodLast3Months}
}

// Valid reports whether p is a defined period.
func (p Period) Valid() bool {
	return p == PeriodCurrentMonth || p == PeriodLast3Months
}

// CreditCardData credit card product sub-record.
type CreditCardData struct {
	Offers      float64 `json:"offers"`
	Issuance    float64 `json:"issuance"`
	Utilization float64 `json:"utilization"` // 0-100
}

// SimCardData SIM plan sub-record.
type SimCardData struct {
	Offers               float64 `json:"offers"`
	TariffPayments       float64 `json:"tariffPayments"`
	TariffPaymentPercent float64 `json:"tariffPaymentPercent"` // 0-100
}

// InvestmentData investment product sub-record.
type InvestmentData struct {
	Offers         float64 `json:"offers"`
	AccountOpening float64 `json:"accountOpening"`
	Utilization    float64 `json:"utilization"` // 0-100
}

// PerformanceRecord is the mutable numeric state for one representative
// within one period.
type PerformanceRecord struct {
	RepresentativeID string         `json:"representativeId"`
	CreditCards      CreditCardData `json:"creditCards"`
	SimCards         SimCardData    `json:"simCards"`
	Investments      InvestmentData `json:"investments"`
	DataUpdate       float64        `json:"dataUpdate"`
}

// NewPerformanceRecord returns a zero-valued record for the representative.
func NewPerformanceRecord(representativeID string) PerformanceRecord {
	return PerformanceRecord{RepresentativeID: representativeID}
}

// PerformanceMap maps period -> representative ID -> record.
type PerformanceMap map[Period]map[string]PerformanceRecord

// NewPerformanceMap returns a map with every period partition present.
func NewPerformanceMap() PerformanceMap {
	m := make(PerformanceMap, len(Periods()))
	for _, p := range Periods() {
		m[p] = make(map[string]PerformanceRecord)
	}
	return m
}

// Clone deep-copies the map so a batch update can be computed without
// touching the published state.
func (m PerformanceMap) Clone() PerformanceMap {
	out := make(PerformanceMap, len(m))
	for period, records := range m {
		part := make(map[string]PerformanceRecord, len(records))
		for id, rec := range records {
			part[id] = rec
		}
		out[period] = part
	}
	for _, p := range Periods() {
		if _, ok := out[p]; !ok {
			out[p] = make(map[string]PerformanceRecord)
		}
	}
	return out
}

// InitRepresentative creates a zeroed record in every period. Both periods
// are always initialized together.
func (m PerformanceMap) InitRepresentative(representativeID string) {
	for _, p := range Periods() {
		if m[p] == nil {
			m[p] = make(map[string]PerformanceRecord)
		}
		m[p][representativeID] = NewPerformanceRecord(representativeID)
	}
}

// Remove deletes the representative's record from every period partition.
func (m PerformanceMap) Remove(representativeID string) {
	for _, records := range m {
		delete(records, representativeID)
	}
}

// Record returns the record for the slot, zero-valued if absent.
func (m PerformanceMap) Record(period Period, representativeID string) PerformanceRecord {
	if records, ok := m[period]; ok {
		if rec, ok := records[representativeID]; ok {
			return rec
		}
	}
	return NewPerformanceRecord(representativeID)
}

// Set stores the record, creating the period partition if absent.
func (m PerformanceMap) Set(period Period, representativeID string, rec PerformanceRecord) {
	if m[period] == nil {
		m[period] = make(map[string]PerformanceRecord)
	}
	rec.RepresentativeID = representativeID
	m[period][representativeID] = rec
}
