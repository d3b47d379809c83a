package reconciler

import (
	"testing"

	"salesdesk/internal/model"
)

func fptr(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }

func seedState() ([]model.Representative, model.PerformanceMap) {
	reps := []model.Representative{
		{ID: "rep-1", FirstName: "Иван", LastName: "Иванов", FullName: "Иван Иванов"},
		{ID: "rep-2", FirstName: "Пётр", LastName: "Петров", FullName: "Пётр Петров"},
	}
	perf := model.NewPerformanceMap()
	for _, r := range reps {
		perf.InitRepresentative(r.ID)
	}
	return reps, perf
}

func TestReconcile_ReplacesOnlyProductSubRecord(t *testing.T) {
	t.Parallel()

	reps, perf := seedState()

	// Pre-existing data in other sections and in the other period.
	rec := perf.Record(model.PeriodCurrentMonth, "rep-1")
	rec.SimCards = model.SimCardData{Offers: 7, TariffPayments: 2, TariffPaymentPercent: 30}
	rec.DataUpdate = 5
	perf.Set(model.PeriodCurrentMonth, "rep-1", rec)

	other := perf.Record(model.PeriodLast3Months, "rep-1")
	other.CreditCards = model.CreditCardData{Offers: 1, Issuance: 1, Utilization: 10}
	perf.Set(model.PeriodLast3Months, "rep-1", other)

	result := Reconcile(Input{
		Reports: []*model.RawReport{{
			RepresentativeName: "Иван Иванов",
			ProductType:        model.ProductCreditCards,
			Offers:             fptr(10),
			Issuance:           fptr(4),
			Utilization:        fptr(40),
		}},
		ProductType:     model.ProductCreditCards,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	if result.Processed != 1 || result.Skipped != 0 {
		t.Fatalf("counts: processed=%d skipped=%d", result.Processed, result.Skipped)
	}

	got := result.Performance.Record(model.PeriodCurrentMonth, "rep-1")
	if got.CreditCards != (model.CreditCardData{Offers: 10, Issuance: 4, Utilization: 40}) {
		t.Fatalf("credit cards not replaced: %+v", got.CreditCards)
	}
	if got.SimCards.Offers != 7 || got.DataUpdate != 5 {
		t.Fatalf("other sections must stay untouched: %+v", got)
	}
	if result.Performance.Record(model.PeriodLast3Months, "rep-1").CreditCards.Offers != 1 {
		t.Fatalf("other period must stay untouched")
	}

	// The input snapshot is never mutated.
	if perf.Record(model.PeriodCurrentMonth, "rep-1").CreditCards.Offers != 0 {
		t.Fatalf("input snapshot was mutated")
	}
}

func TestReconcile_LastFirstConvention(t *testing.T) {
	t.Parallel()

	reps, perf := seedState()

	result := Reconcile(Input{
		Reports: []*model.RawReport{{
			RepresentativeName: "Петров Пётр 4242",
			ProductType:        model.ProductDataUpdate,
			SalesCount:         fptr(9),
		}},
		ProductType:     model.ProductDataUpdate,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	if result.Processed != 1 {
		t.Fatalf("expected last-first match, skipped=%d", result.Skipped)
	}
	if result.Performance.Record(model.PeriodCurrentMonth, "rep-2").DataUpdate != 9 {
		t.Fatalf("dataUpdate not applied")
	}
}

func TestReconcile_RepresentativeAttributes(t *testing.T) {
	t.Parallel()

	reps, perf := seedState()
	reps[0].TrainingCompletionDate = "2023-01-01"
	reps[0].ProfileURL = "https://example.com/old"

	result := Reconcile(Input{
		Reports: []*model.RawReport{
			{RepresentativeName: "Иван Иванов", ProductType: model.ProductSuccessRate, SuccessRate: fptr(85)},
			{RepresentativeName: "Иван Иванов", ProductType: model.ProductSuccessRate, SuccessRate: fptr(90)},
		},
		ProductType:     model.ProductSuccessRate,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	// Period-independent attribute, overwritten unconditionally in order.
	if result.Representatives[0].SuccessRate != 90 {
		t.Fatalf("success rate = %v", result.Representatives[0].SuccessRate)
	}
	if reps[0].SuccessRate != 0 {
		t.Fatalf("input representatives were mutated")
	}

	// completionData only overwrites fields that arrived.
	result = Reconcile(Input{
		Reports: []*model.RawReport{{
			RepresentativeName: "Иван Иванов",
			ProductType:        model.ProductCompletionData,
			ProfileURL:         "https://example.com/new",
		}},
		ProductType:     model.ProductCompletionData,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	rep := result.Representatives[0]
	if rep.ProfileURL != "https://example.com/new" {
		t.Fatalf("profile url not overwritten: %q", rep.ProfileURL)
	}
	if rep.TrainingCompletionDate != "2023-01-01" {
		t.Fatalf("absent incoming date must not erase existing value: %q", rep.TrainingCompletionDate)
	}
}

func TestReconcile_CourseProgress(t *testing.T) {
	t.Parallel()

	reps, perf := seedState()

	result := Reconcile(Input{
		Reports: []*model.RawReport{{
			RepresentativeName: "Иван Иванов",
			ProductType:        model.ProductCourseProgress,
			CourseProgress:     iptr(85),
		}},
		ProductType:     model.ProductCourseProgress,
		Period:          model.PeriodLast3Months,
		Representatives: reps,
		Performance:     perf,
	})

	if result.Representatives[0].CourseProgress != 85 {
		t.Fatalf("course progress = %d", result.Representatives[0].CourseProgress)
	}
}

func TestReconcile_SkipRules(t *testing.T) {
	t.Parallel()

	reps, perf := seedState()

	result := Reconcile(Input{
		Reports: []*model.RawReport{
			// Unknown representative.
			{RepresentativeName: "Сидоров Семён", ProductType: model.ProductDataUpdate, SalesCount: fptr(1)},
			// Matched but payload lacks the product's required fields.
			{RepresentativeName: "Иван Иванов", ProductType: model.ProductCreditCards, Offers: fptr(1)},
		},
		ProductType:     model.ProductCreditCards,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	if result.Processed != 0 || result.Skipped != 2 {
		t.Fatalf("counts: processed=%d skipped=%d", result.Processed, result.Skipped)
	}
}

func TestReconcile_FirstMatchWinsInListOrder(t *testing.T) {
	t.Parallel()

	reps := []model.Representative{
		{ID: "a", FirstName: "Иван", LastName: "Иванов", FullName: "Иван Иванов"},
		{ID: "b", FirstName: "Иван", LastName: "Иванов", FullName: "Иван Иванов"},
	}
	perf := model.NewPerformanceMap()
	perf.InitRepresentative("a")
	perf.InitRepresentative("b")

	result := Reconcile(Input{
		Reports: []*model.RawReport{{
			RepresentativeName: "Иван Иванов",
			ProductType:        model.ProductDataUpdate,
			SalesCount:         fptr(3),
		}},
		ProductType:     model.ProductDataUpdate,
		Period:          model.PeriodCurrentMonth,
		Representatives: reps,
		Performance:     perf,
	})

	if result.Performance.Record(model.PeriodCurrentMonth, "a").DataUpdate != 3 {
		t.Fatalf("first representative in list order must win")
	}
	if result.Performance.Record(model.PeriodCurrentMonth, "b").DataUpdate != 0 {
		t.Fatalf("second duplicate must stay untouched")
	}
}
