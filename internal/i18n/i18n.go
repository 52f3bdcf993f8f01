// Package i18n resolves the dotted translation keys used by the dashboard.
package i18n

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var finnish = language.Finnish

var messages = map[language.Tag]map[string]string{
	language.English: {
		"smsLogs.success":            "Success",
		"smsLogs.loadedSuccessfully": "SMS logs loaded successfully",
		"smsLogs.failedToLoad":       "Failed to load SMS logs",
		"smsLogs.loading":            "Loading SMS logs...",
		"smsLogs.list":               "SMS Logs",
		"smsLogs.sender":             "Sender",
		"smsLogs.content":            "Content",
		"smsLogs.receivedAt":         "Received",
		"smsLogs.type":               "Type",
		"smsLogs.copy":               "Copy",
		"smsLogs.copied":             "Copied",
		"smsLogs.errorLoading":       "Error loading SMS logs",
		"smsLogs.other":              "other",
		"smsLogs.summary":            "%d of %d shown",
		"smsLogs.help":               "[/] search  [t/T] type  [↑/k] up  [↓/j] down  [enter/c] copy  [q] quit",
		"smsLogs.quitHelp":           "[q] quit",
		"common.search":              "Search...",
		"common.all":                 "All",
	},
	finnish: {
		"smsLogs.success":            "Valmis",
		"smsLogs.loadedSuccessfully": "SMS-lokit ladattu",
		"smsLogs.failedToLoad":       "SMS-lokien lataus epäonnistui",
		"smsLogs.loading":            "Ladataan SMS-lokeja...",
		"smsLogs.list":               "SMS-lokit",
		"smsLogs.sender":             "Lähettäjä",
		"smsLogs.content":            "Sisältö",
		"smsLogs.receivedAt":         "Vastaanotettu",
		"smsLogs.type":               "Tyyppi",
		"smsLogs.copy":               "Kopioi",
		"smsLogs.copied":             "Kopioitu",
		"smsLogs.errorLoading":       "Virhe SMS-lokien latauksessa",
		"smsLogs.other":              "muut",
		"smsLogs.summary":            "%d / %d näytetään",
		"smsLogs.help":               "[/] haku  [t/T] tyyppi  [↑/k] ylös  [↓/j] alas  [enter/c] kopioi  [q] lopeta",
		"smsLogs.quitHelp":           "[q] lopeta",
		"common.search":              "Hae...",
		"common.all":                 "Kaikki",
	},
}

var supported = []language.Tag{language.English, finnish}

var matcher = language.NewMatcher(supported)

// Translator looks up display strings for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
	title   cases.Caser
}

// New creates a translator for the given BCP 47 language name.
// Unknown or unsupported languages fall back to English.
func New(lang string) *Translator {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range messages {
		for key, msg := range entries {
			// Keys and messages are static; SetString only fails on malformed tags.
			_ = b.SetString(tag, key, msg)
		}
	}

	tag := Match(lang)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(b)),
		title:   cases.Title(tag),
	}
}

// Match picks the supported language closest to lang
func Match(lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	requested, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// Language returns the resolved language tag
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the display string for key, or the key itself when it is unknown
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Tf formats the message for key with args
func (t *Translator) Tf(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Label returns the display label of an SMS type filter option
func (t *Translator) Label(smsType string) string {
	if smsType == "all" {
		return t.T("common.all")
	}
	return t.title.String(smsType)
}
