// Package i18n holds the bilingual label catalog for printed documents.
// Receipts go home with the customer, so they print in the customer's
// language; English is the fallback for everything unrecognized.
package i18n

import "golang.org/x/text/language"

// Supported receipt languages.
const (
	LangEnglish = "en"
	LangArabic  = "ar"
)

var matcher = language.NewMatcher([]language.Tag{
	language.English, // fallback
	language.Arabic,
})

// Match resolves an Accept-Language header (or ?lang= value) to a supported
// language code.
func Match(accept string) string {
	if accept == "" {
		return LangEnglish
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return LangEnglish
	}
	_, index, _ := matcher.Match(tags...)
	if index == 1 {
		return LangArabic
	}
	return LangEnglish
}

var labels = map[string]map[string]string{
	LangEnglish: {
		"invoice":         "Invoice",
		"work_order":      "Work Order",
		"date":            "Date",
		"patient":         "Patient",
		"phone":           "Phone",
		"walk_in":         "Walk-in customer",
		"prescription":    "Prescription",
		"right_eye":       "OD (Right)",
		"left_eye":        "OS (Left)",
		"sphere":          "SPH",
		"cylinder":        "CYL",
		"axis":            "AXIS",
		"add":             "ADD",
		"pd":              "PD",
		"base_curve":      "BC",
		"diameter":        "DIA",
		"frame":           "Frame",
		"lens":            "Lens",
		"coating":         "Coating",
		"thickness":       "Thickness",
		"lens_package":    "Lens package",
		"contact_lenses":  "Contact Lenses",
		"service":         "Service",
		"qty":             "Qty",
		"subtotal":        "Subtotal",
		"discount":        "Discount",
		"total":           "Total",
		"deposit":         "Paid",
		"remaining":       "Balance Due",
		"paid_in_full":    "PAID IN FULL",
		"payment_method":  "Payment",
		"auth_number":     "Approval #",
		"thank_you":       "Thank you for your visit",
		"keep_receipt":    "Please keep this receipt for collection",
		"customer_copy":   "Customer Copy",
		"lab_copy":        "Lab Copy",
	},
	LangArabic: {
		"invoice":         "فاتورة",
		"work_order":      "أمر عمل",
		"date":            "التاريخ",
		"patient":         "العميل",
		"phone":           "الهاتف",
		"walk_in":         "عميل بدون ملف",
		"prescription":    "الوصفة الطبية",
		"right_eye":       "العين اليمنى",
		"left_eye":        "العين اليسرى",
		"sphere":          "SPH",
		"cylinder":        "CYL",
		"axis":            "AXIS",
		"add":             "ADD",
		"pd":              "PD",
		"base_curve":      "BC",
		"diameter":        "DIA",
		"frame":           "الإطار",
		"lens":            "العدسة",
		"coating":         "الطلاء",
		"thickness":       "السماكة",
		"lens_package":    "باقة العدسات",
		"contact_lenses":  "العدسات اللاصقة",
		"service":         "الخدمة",
		"qty":             "الكمية",
		"subtotal":        "المجموع الفرعي",
		"discount":        "الخصم",
		"total":           "الإجمالي",
		"deposit":         "المدفوع",
		"remaining":       "المتبقي",
		"paid_in_full":    "مدفوعة بالكامل",
		"payment_method":  "طريقة الدفع",
		"auth_number":     "رقم الموافقة",
		"thank_you":       "شكراً لزيارتكم",
		"keep_receipt":    "يرجى الاحتفاظ بالإيصال للاستلام",
		"customer_copy":   "نسخة العميل",
		"lab_copy":        "نسخة المختبر",
	},
}

// T returns the label for key in lang, falling back to English, then to the
// key itself so a missing entry is visible instead of blank.
func T(lang, key string) string {
	if m, ok := labels[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := labels[LangEnglish][key]; ok {
		return s
	}
	return key
}
