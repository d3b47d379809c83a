package parser

import (
	"strings"

	"salesdesk/internal/model"
)

// FieldKind selects the coercion applied to a resolved cell.
type FieldKind int

const (
	FieldNumber FieldKind = iota
	FieldPercent
	FieldDate
	FieldURL
)

// FieldSpec binds one logical field to its ordered list of acceptable
// column headers. Aliases are tried in priority order; the first column
// with a non-empty value wins.
type FieldSpec struct {
	Key     string
	Aliases []string
	Kind    FieldKind
}

// nameAliases are the headers a representative name may appear under.
var nameAliases = []string{
	"ФИ",
	"ФИО",
	"Единица по группировке",
	"Единица группировки",
}

// productFields declares, per product type, which columns are read and how
// their values are coerced. Localized headers come first, English fallbacks
// after.
var productFields = map[model.ProductType][]FieldSpec{
	model.ProductCreditCards: {
		{Key: "offers", Aliases: []string{"Офферов", "Offers"}, Kind: FieldNumber},
		{Key: "issuance", Aliases: []string{"Продаж", "Issuance"}, Kind: FieldNumber},
		{Key: "utilization", Aliases: []string{"% утиль / продаж", "Utilization"}, Kind: FieldPercent},
	},
	model.ProductSimCards: {
		{Key: "offers", Aliases: []string{"Офферов", "Offers"}, Kind: FieldNumber},
		{Key: "tariffPayments", Aliases: []string{"Оплата тарифа", "Tariff Payments"}, Kind: FieldNumber},
		{Key: "tariffPaymentPercent", Aliases: []string{"% оплат тарифа/офферы", "Tariff Payment %", "Процент оплаты"}, Kind: FieldPercent},
	},
	model.ProductInvestments: {
		{Key: "offers", Aliases: []string{"Офферов", "Offers"}, Kind: FieldNumber},
		{Key: "accountOpening", Aliases: []string{"Открытие счета", "Открытых БС"}, Kind: FieldNumber},
		{Key: "utilization", Aliases: []string{"% утилизаци/офферы", "Utilization"}, Kind: FieldPercent},
	},
	model.ProductSuccessRate: {
		{Key: "successRate", Aliases: []string{"% успешности встреч", "Success Rate", "Успешность"}, Kind: FieldPercent},
	},
	model.ProductCourseProgress: {
		{Key: "progress", Aliases: []string{"Прогресс", "Progress", "Процент от максимума"}, Kind: FieldPercent},
	},
	model.ProductDataUpdate: {
		{Key: "salesCount", Aliases: []string{"Продаж", "Количество", "Sales"}, Kind: FieldNumber},
	},
	model.ProductCompletionData: {
		{Key: "completionDate", Aliases: []string{"Дата завершения", "Completion Date"}, Kind: FieldDate},
		{Key: "profileUrl", Aliases: []string{"Профиль", "Profile URL"}, Kind: FieldURL},
	},
}

// Row is one spreadsheet row keyed by column header.
type Row map[string]string

// Resolve returns the value of the first alias present with a non-empty
// cell, or "" if none match.
func (r Row) Resolve(aliases []string) string {
	for _, alias := range aliases {
		if v, ok := r[alias]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ResolveName returns the raw representative name of the row.
func (r Row) ResolveName() string {
	return r.Resolve(nameAliases)
}

// HeaderTemplate returns the canonical header row for a product type:
// the primary name column followed by each field's primary alias.
func HeaderTemplate(productType model.ProductType) []string {
	headers := []string{nameAliases[1]} // ФИО
	for _, spec := range productFields[productType] {
		headers = append(headers, spec.Aliases[0])
	}
	return headers
}
