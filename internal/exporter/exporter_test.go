package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"salesdesk/internal/model"
)

func TestPromotionMessage(t *testing.T) {
	t.Parallel()

	rep := model.Representative{
		FullName:    "Иван Иванов",
		SuccessRate: 85,
		Conversations: &model.Conversations{
			Conv1: "https://example.com/c/1",
		},
	}
	rec := model.PerformanceRecord{
		SimCards:    model.SimCardData{TariffPayments: 5},
		Investments: model.InvestmentData{AccountOpening: 2},
		DataUpdate:  7,
	}

	msg := PromotionMessage(rep, rec)

	for _, want := range []string{
		"7 обновления данных",
		"5 сим-карт с пополнением тарифа",
		"2 открытия брокерского счёта",
		"Успешность встреч 85%",
		"НАРУШЕНИЯ https://example.com/c/1",
		"СИМ ссылка не добавлена",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBlankTemplate(t *testing.T) {
	t.Parallel()

	data, err := BlankTemplate(model.ProductSimCards)
	if err != nil {
		t.Fatalf("template: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil || len(rows) == 0 {
		t.Fatalf("rows: %v", err)
	}

	want := []string{"ФИО", "Офферов", "Оплата тарифа", "% оплат тарифа/офферы"}
	if len(rows[0]) != len(want) {
		t.Fatalf("header row: %v", rows[0])
	}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Fatalf("header %d = %q, want %q", i, rows[0][i], want[i])
		}
	}

	if _, err := BlankTemplate(model.ProductType("bogus")); err == nil {
		t.Fatalf("unknown product type must fail")
	}
}
