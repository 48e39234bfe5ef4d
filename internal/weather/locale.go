package weather

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Locale is a formatting policy for labels shown on the dashboard. Each
// policy is internally consistent; they are never mixed.
type Locale struct {
	// APILang is sent to OpenWeatherMap as the lang parameter
	APILang string
	// UVLevel is the label for the placeholder UV index
	UVLevel string

	tag            language.Tag
	dateLocale     monday.Locale
	timeLayout     string
	longDateLayout string
	// useDescription selects the free-text description over the short
	// condition name for the condition label
	useDescription bool
	fallback       fallbackTexts
}

var (
	LocalePortuguese = Locale{
		APILang:        "pt_br",
		UVLevel:        "Moderado",
		tag:            language.BrazilianPortuguese,
		dateLocale:     monday.LocalePtBR,
		timeLayout:     "15:04",
		longDateLayout: "Monday, 2 de January de 2006",
		useDescription: true,
		fallback:       portugueseFallback,
	}

	LocaleEnglish = Locale{
		APILang:        "en",
		UVLevel:        "Moderate",
		tag:            language.AmericanEnglish,
		dateLocale:     monday.LocaleEnUS,
		timeLayout:     "3:04 PM",
		longDateLayout: "Monday, January 2, 2006",
		fallback:       englishFallback,
	}

	supportedLocales = []Locale{LocalePortuguese, LocaleEnglish}
	localeMatcher    = language.NewMatcher([]language.Tag{LocalePortuguese.tag, LocaleEnglish.tag})
)

// ParseLocale resolves a configured locale such as "pt_br", "pt-BR" or "en"
func ParseLocale(name string) (Locale, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(name), "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", name, err)
	}

	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return Locale{}, fmt.Errorf("unsupported locale %q", name)
	}

	return supportedLocales[index], nil
}

// String returns the BCP 47 tag, e.g. "pt-BR"
func (l Locale) String() string {
	return l.tag.String()
}

// ConditionLabel builds the human condition label
func (l Locale) ConditionLabel(description, main string) string {
	if l.useDescription && description != "" {
		return l.capitalizeFirst(description)
	}
	if main != "" {
		return main
	}
	return l.capitalizeFirst(description)
}

// TimeLabel formats a wall clock time, e.g. "15:00" or "3:00 PM"
func (l Locale) TimeLabel(t time.Time) string {
	return t.Format(l.timeLayout)
}

// DayLabel returns the abbreviated weekday without periods, uppercased,
// e.g. "SEG" or "MON"
func (l Locale) DayLabel(t time.Time) string {
	short := strings.ReplaceAll(monday.Format(t, "Mon", l.dateLocale), ".", "")
	return cases.Upper(l.tag).String(short)
}

// LongDate formats the full current date with its first letter capitalised,
// e.g. "Sábado, 17 de outubro de 2026"
func (l Locale) LongDate(t time.Time) string {
	return l.capitalizeFirst(monday.Format(t, l.longDateLayout, l.dateLocale))
}

func (l Locale) capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(l.tag).String(string(r)) + s[size:]
}
