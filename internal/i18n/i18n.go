// Package i18n holds the UI string tables. English is the fallback for
// unknown languages and missing keys.
package i18n

const DefaultLanguage = "en"

var tables = map[string]map[string]string{
	"en": {
		"title":               "Milk Hisaab",
		"toggle_theme":        "Toggle Theme",
		"add_entry":           "Add New Entry",
		"date":                "Date",
		"quantity":            "Quantity (Liters)",
		"rate":                "Rate (per Liter)",
		"paid_status":         "Paid",
		"add_button":          "Add Entry",
		"summary":             "Summary",
		"total_quantity":      "Total Quantity",
		"total_amount":        "Total Amount",
		"total_paid":          "Total Paid",
		"total_due":           "Total Due (Unpaid)",
		"clear_all_data":      "Clear All Data",
		"entries":             "Entries",
		"quantity_short":      "Qty (L)",
		"rate_short":          "Rate (₹/L)",
		"amount":              "Amount (₹)",
		"actions":             "Actions",
		"delete":              "Delete",
		"paid":                "Paid",
		"unpaid":              "Unpaid",
		"no_entries_yet":      "No entries yet. Add one above!",
		"calendar":            "Monthly Calendar",
		"morning":             "Morning (L)",
		"evening":             "Evening (L)",
		"day":                 "Day",
		"default_rate":        "Default Rate (₹/L)",
		"prev_month":          "Previous Month",
		"next_month":          "Next Month",
		"settings":            "Settings",
		"language":            "Language",
		"error_missing_date":  "Please pick a date.",
		"error_invalid_qty":   "Quantity must be a non-negative number.",
		"error_invalid_rate":  "Rate must be a non-negative number.",
		"confirm_clear":       "Are you sure you want to delete all entries? This cannot be undone.",
		"confirm_delete":      "Are you sure you want to delete this entry?",
		"footer_note":         "All data stays in this app's own local database.",
	},
	"hi": {
		"title":               "दूध हिसाब",
		"toggle_theme":        "थीम बदलें",
		"add_entry":           "नई एंट्री जोड़ें",
		"date":                "तारीख",
		"quantity":            "मात्रा (लीटर)",
		"rate":                "दर (प्रति लीटर)",
		"paid_status":         "भुगतान किया",
		"add_button":          "एंट्री जोड़ें",
		"summary":             "सारांश",
		"total_quantity":      "कुल मात्रा",
		"total_amount":        "कुल राशि",
		"total_paid":          "कुल भुगतान",
		"total_due":           "कुल बकाया (अदत्त)",
		"clear_all_data":      "सारा डेटा साफ़ करें",
		"entries":             "एंट्रीज़",
		"quantity_short":      "मात्रा (L)",
		"rate_short":          "दर (₹/L)",
		"amount":              "राशि (₹)",
		"actions":             "कार्रवाई",
		"delete":              "हटाएं",
		"paid":                "भुगतान किया",
		"unpaid":              "अदत्त",
		"no_entries_yet":      "अभी तक कोई एंट्री नहीं है। ऊपर एक जोड़ें!",
		"calendar":            "मासिक कैलेंडर",
		"morning":             "सुबह (L)",
		"evening":             "शाम (L)",
		"day":                 "दिन",
		"default_rate":        "डिफ़ॉल्ट दर (₹/L)",
		"prev_month":          "पिछला महीना",
		"next_month":          "अगला महीना",
		"settings":            "सेटिंग्स",
		"language":            "भाषा",
		"error_missing_date":  "कृपया एक तारीख चुनें।",
		"error_invalid_qty":   "मात्रा एक गैर-नकारात्मक संख्या होनी चाहिए।",
		"error_invalid_rate":  "दर एक गैर-नकारात्मक संख्या होनी चाहिए।",
		"confirm_clear":       "क्या आप वाकई सभी प्रविष्टियाँ हटाना चाहते हैं? इसे पूर्ववत नहीं किया जा सकता।",
		"confirm_delete":      "क्या आप वाकई इस प्रविष्टि को हटाना चाहते हैं?",
		"footer_note":         "सारा डेटा इसी ऐप के स्थानीय डेटाबेस में रहता है।",
	},
}

// T looks up key in the given language, falling back to English and
// finally to the key itself.
func T(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Supported reports whether a language code has a string table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "hi"}
}
