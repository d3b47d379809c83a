// Package calculator derives the dashboard's key team indicators from one
// period's performance partition.
package calculator

import "salesdesk/internal/model"

// TeamMetrics are the aggregate indicators shown for one period.
type TeamMetrics struct {
	Period          model.Period `json:"period"`
	Representatives int          `json:"representatives"`
	TrackedRecords  int          `json:"trackedRecords"`

	CreditCardOffers   float64 `json:"creditCardOffers"`
	CreditCardIssuance float64 `json:"creditCardIssuance"`
	SimCardOffers      float64 `json:"simCardOffers"`
	TariffPayments     float64 `json:"tariffPayments"`
	InvestmentOffers   float64 `json:"investmentOffers"`
	AccountOpenings    float64 `json:"accountOpenings"`
	DataUpdates        float64 `json:"dataUpdates"`

	AvgCreditUtilization     float64 `json:"avgCreditUtilization"`
	AvgSimTariffPercent      float64 `json:"avgSimTariffPercent"`
	AvgInvestmentUtilization float64 `json:"avgInvestmentUtilization"`

	// AvgSuccessRate averages only representatives with a rate above zero;
	// the attribute is period-independent.
	AvgSuccessRate float64 `json:"avgSuccessRate"`
}

// TeamMetricsFor computes totals and simple averages over the period's
// records. Percentage averages divide by the record count; zero records
// yield zero metrics.
func TeamMetricsFor(state *model.AppState, period model.Period) TeamMetrics {
	m := TeamMetrics{
		Period:          period,
		Representatives: len(state.Representatives),
	}

	var creditUtil, simPercent, investUtil float64
	for _, rec := range state.Performance[period] {
		m.TrackedRecords++
		m.CreditCardOffers += rec.CreditCards.Offers
		m.CreditCardIssuance += rec.CreditCards.Issuance
		creditUtil += rec.CreditCards.Utilization
		m.SimCardOffers += rec.SimCards.Offers
		m.TariffPayments += rec.SimCards.TariffPayments
		simPercent += rec.SimCards.TariffPaymentPercent
		m.InvestmentOffers += rec.Investments.Offers
		m.AccountOpenings += rec.Investments.AccountOpening
		investUtil += rec.Investments.Utilization
		m.DataUpdates += rec.DataUpdate
	}

	if m.TrackedRecords > 0 {
		n := float64(m.TrackedRecords)
		m.AvgCreditUtilization = creditUtil / n
		m.AvgSimTariffPercent = simPercent / n
		m.AvgInvestmentUtilization = investUtil / n
	}

	var rateSum float64
	rated := 0
	for _, rep := range state.Representatives {
		if rep.SuccessRate > 0 {
			rateSum += rep.SuccessRate
			rated++
		}
	}
	if rated > 0 {
		m.AvgSuccessRate = rateSum / float64(rated)
	}

	return m
}
