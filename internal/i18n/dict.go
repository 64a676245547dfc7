// Package i18n holds the fixed display strings for every supported language.
package i18n

import "github.com/vadiminshakov/lowerentry/internal/domain"

// Formula averaging formula shown next to the inputs.
const Formula = "P₁ = (P₀×Q₀) / (Q₀ + S/Pᵦ)"

// Dict display strings of one language.
type Dict struct {
	Title          string
	SectionA       string
	EntryPrice     string
	EntryPriceHint string
	Qty            string
	SectionB       string
	Profit         string
	BuyPrice       string
	Formula        string
	Calc           string
	NewEntry       string
	BuyFor         string
	AtPrice        string
	NewQty         string
	Memo           string
	Memo1          string
	Memo2          string
	Memo3          string
	Memo4          string
	Theme          string
	Light          string
	Dark           string
	Lang           string
	Currency       string
	Screenshot     string
	Prices         string
	Date           string
	Coin           string
	TrackerNote    string
	Sources        string
	Disclaimer     string
	Saved          string
	SaveFailed     string
	Keys           string
	Updated        string
}

var dicts = map[domain.Language]Dict{
	domain.LanguageRU: {
		Title:          "Снижаем вход (DCA с профита)",
		SectionA:       "Котировка, которую понижаем",
		EntryPrice:     "Цена входа",
		EntryPriceHint: "Текущая средняя цена входа по позиции.",
		Qty:            "Количество монет",
		SectionB:       "За счёт чего понижаем",
		Profit:         "Профит",
		BuyPrice:       "Цена откупа",
		Formula:        "Формула",
		Calc:           "Посчитать",
		NewEntry:       "Новая цена входа",
		BuyFor:         "Откупаем на",
		AtPrice:        "по",
		NewQty:         "Новое количество монет",
		Memo:           "Памятка",
		Memo1:          "Используем только прибыль S.",
		Memo2:          "Снижение из-за роста количества монет при прежней сумме затрат.",
		Memo3:          "Если Pᵦ ≥ P₀ — эффект минимален.",
		Memo4:          "Учтите комиссии биржи.",
		Theme:          "Тема",
		Light:          "Светлая",
		Dark:           "Тёмная",
		Lang:           "Язык",
		Currency:       "Валюта",
		Screenshot:     "Скриншот‑памятка",
		Prices:         "Текущие цены",
		Date:           "Дата",
		Coin:           "Монета",
		TrackerNote:    "Не забудь сразу сделать откуп на сумму профита и записать новую цену входа и новое количество монет в свою таблицу учёта.",
		Sources:        "Курс валют — open.er-api.com, цены —",
		Disclaimer:     "Инструмент для обучения. Не является финансовой рекомендацией.",
		Saved:          "Памятка сохранена:",
		SaveFailed:     "Не удалось сохранить памятку:",
		Keys:           "e ввод · c валюта · l язык · t тема · b монета · s памятка · q выход",
		Updated:        "обновлено",
	},
	domain.LanguageEN: {
		Title:          "Lower Entry (DCA from Profit)",
		SectionA:       "Position to Average Down",
		EntryPrice:     "Entry Price",
		EntryPriceHint: "Current average entry for your position.",
		Qty:            "Quantity",
		SectionB:       "How We Lower Entry",
		Profit:         "Profit",
		BuyPrice:       "Buy Price",
		Formula:        "Formula",
		Calc:           "Calculate",
		NewEntry:       "New Average Entry",
		BuyFor:         "Buy for",
		AtPrice:        "at",
		NewQty:         "New Quantity",
		Memo:           "Notes",
		Memo1:          "Use profit S only.",
		Memo2:          "Entry drops because quantity increases.",
		Memo3:          "If Pᵦ ≥ P₀ — effect is tiny.",
		Memo4:          "Include exchange fees.",
		Theme:          "Theme",
		Light:          "Light",
		Dark:           "Dark",
		Lang:           "Language",
		Currency:       "Currency",
		Screenshot:     "Screenshot memo",
		Prices:         "Live Prices",
		Date:           "Date",
		Coin:           "Coin",
		TrackerNote:    "Buy immediately with profit and record the new entry price and new quantity in your tracker.",
		Sources:        "FX from open.er-api.com, prices from",
		Disclaimer:     "Educational tool. Not financial advice.",
		Saved:          "Memo saved:",
		SaveFailed:     "Memo export failed:",
		Keys:           "e edit · c currency · l language · t theme · b coin · s memo · q quit",
		Updated:        "updated",
	},
}

// For returns the strings of lang, russian for unknown languages.
func For(lang domain.Language) Dict {
	if d, ok := dicts[lang]; ok {
		return d
	}
	return dicts[domain.LanguageRU]
}
