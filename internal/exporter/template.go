// Package exporter builds the outward-facing artifacts: the promotion
// message for a representative and blank report workbooks with the expected
// header rows.
package exporter

import (
	"fmt"

	"salesdesk/internal/model"
)

const linkPlaceholder = "ссылка не добавлена"

// PromotionMessage renders the ready-to-paste request for moving a
// representative to the main group, filled from the given period's record
// and the representative's attributes.
func PromotionMessage(rep model.Representative, rec model.PerformanceRecord) string {
	conv1, conv2, conv3 := linkPlaceholder, linkPlaceholder, linkPlaceholder
	if rep.Conversations != nil {
		if rep.Conversations.Conv1 != "" {
			conv1 = rep.Conversations.Conv1
		}
		if rep.Conversations.Conv2 != "" {
			conv2 = rep.Conversations.Conv2
		}
		if rep.Conversations.Conv3 != "" {
			conv3 = rep.Conversations.Conv3
		}
	}

	return fmt.Sprintf(`Приветствую!
Прошу принять исполнителя в основную группу.
План обучения выполнен, план продаж выполнен, а именно: %v обновления данных, %v сим-карт с пополнением тарифа, %v открытия брокерского счёта. Успешность встреч %v%%.
Прикрепляю коммуникации в адаптации:
Ролевки:
НАРУШЕНИЯ %s
СИМ %s
ИНВЕСТ %s`,
		rec.DataUpdate,
		rec.SimCards.TariffPayments,
		rec.Investments.AccountOpening,
		rep.SuccessRate,
		conv1, conv2, conv3,
	)
}
