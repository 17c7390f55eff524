package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var enUS = Locale{
	Tag:                language.AmericanEnglish,
	DecimalSeparator:   ".",
	ThousandsSeparator: ",",
	CurrencySymbol:     "$",
	MonthNames: []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	MonthAbbr: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	DayNames:  []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	DayAbbr:   []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	AM:        "AM",
	PM:        "PM",
	DateOrder: OrderMDY,
}

// presets is ordered; the first entry is the matcher's fallback.
var presets = []Locale{
	enUS,
	{
		Tag:                language.BritishEnglish,
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "£",
		MonthNames:         enUS.MonthNames,
		MonthAbbr:          enUS.MonthAbbr,
		DayNames:           enUS.DayNames,
		DayAbbr:            enUS.DayAbbr,
		AM:                 "am",
		PM:                 "pm",
		DateOrder:          OrderDMY,
	},
	{
		Tag:                language.MustParse("de-DE"),
		DecimalSeparator:   ",",
		ThousandsSeparator: ".",
		CurrencySymbol:     "€",
		MonthNames: []string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		MonthAbbr: []string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		DayNames:  []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		DayAbbr:   []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		AM:        "AM",
		PM:        "PM",
		DateOrder: OrderDMY,
	},
	{
		Tag:                language.MustParse("fr-FR"),
		DecimalSeparator:   ",",
		ThousandsSeparator: " ",
		CurrencySymbol:     "€",
		MonthNames: []string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		MonthAbbr: []string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc."},
		DayNames:  []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		DayAbbr:   []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		AM:        "AM",
		PM:        "PM",
		DateOrder: OrderDMY,
	},
	{
		Tag:                language.MustParse("es-ES"),
		DecimalSeparator:   ",",
		ThousandsSeparator: ".",
		CurrencySymbol:     "€",
		MonthNames: []string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		MonthAbbr: []string{"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic"},
		DayNames:  []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		DayAbbr:   []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		AM:        "a. m.",
		PM:        "p. m.",
		DateOrder: OrderDMY,
	},
	{
		Tag:                language.MustParse("ja-JP"),
		DecimalSeparator:   ".",
		ThousandsSeparator: ",",
		CurrencySymbol:     "¥",
		MonthNames: []string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		MonthAbbr: []string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		DayNames:  []string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		DayAbbr:   []string{"日", "月", "火", "水", "木", "金", "土"},
		AM:        "午前",
		PM:        "午後",
		DateOrder: OrderYMD,
	},
}

var matcher = language.NewMatcher(presetTags())

func presetTags() []language.Tag {
	tags := make([]language.Tag, len(presets))
	for i, p := range presets {
		tags[i] = p.Tag
	}
	return tags
}

// Available returns the BCP 47 tags of the built-in presets.
func Available() []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Tag.String()
	}
	return out
}

// Lookup parses a BCP 47 tag such as "de-AT" and returns the closest preset.
// See [ForTag].
func Lookup(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return Locale{}, fmt.Errorf("locale: parse %q: %w", s, err)
	}
	return ForTag(tag)
}

// ForTag returns the preset closest to tag.  The preset's currency symbol is
// replaced by the narrow symbol of the tag's regional currency when one can
// be inferred, so "de-CH" yields German names with the Swiss franc symbol.
func ForTag(tag language.Tag) (Locale, error) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("%w: %s", ErrUnknownLocale, tag)
	}
	loc := presets[idx].Clone()
	loc.Tag = tag
	if sym := currencySymbol(tag); sym != "" {
		loc.CurrencySymbol = sym
	}
	return loc, nil
}

// currencySymbol returns the narrow symbol for the currency used in tag's
// region, or "" when the region cannot be inferred.
func currencySymbol(tag language.Tag) string {
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return ""
	}
	p := message.NewPrinter(tag)
	return strings.TrimSpace(p.Sprintf("%v", currency.NarrowSymbol(unit)))
}
