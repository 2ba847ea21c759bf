package numwords

// Canonical tags of the supported languages.
const (
	LangEnglish = "en"
	LangSpanish = "es"
	LangArabic  = "ar"
)

// grammarKind selects the rendering branch for a language.
type grammarKind int

const (
	// grammarDefault renders hundreds as compounds and keeps tens before
	// units, with the conjunction between them.
	grammarDefault grammarKind = iota
	// grammarArabic uses atomic hundred forms, speaks units before tens,
	// and joins every adjacent group with the conjunction.
	grammarArabic
)

// langTable holds the word inventory and grammar selection for one
// language. The million and billion entries complete the scale row but
// are never read: the per-language path stops at the thousands.
type langTable struct {
	tag           string   // canonical short code
	names         []string // accepted selectors, lower case
	units         []string // 0..19, teens included
	tens          []string // indexed by tens digit, 0 and 1 unused
	hundredExact  string   // a bare group of exactly one hundred
	hundredJoined string   // one hundred followed by a remainder
	hundredTwo    string   // atomic two hundred form (Arabic dual)
	hundredSuffix string   // compound suffix for 2..9 hundreds
	thousand      string
	million       string
	billion       string
	zero          string
	minus         string
	conjunction   string // empty means no separator word at all
	grammar       grammarKind
}

var englishTable = &langTable{
	tag:   LangEnglish,
	names: []string{"en", "eng", "english"},
	units: []string{
		"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen",
		"Nineteen",
	},
	tens: []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty",
		"Sixty", "Seventy", "Eighty", "Ninety",
	},
	hundredExact:  "One Hundred",
	hundredJoined: "One Hundred",
	hundredSuffix: " hundred",
	thousand:      "Thousand",
	million:       "Million",
	billion:       "Billion",
	zero:          "Zero",
	minus:         "Minus",
	conjunction:   "",
	grammar:       grammarDefault,
}

var spanishTable = &langTable{
	tag:   LangSpanish,
	names: []string{"es", "spa", "spanish"},
	units: []string{
		"Cero", "Uno", "Dos", "Tres", "Cuatro", "Cinco", "Seis",
		"Siete", "Ocho", "Nueve", "Diez", "Once", "Doce", "Trece",
		"Catorce", "Quince", "Dieciséis", "Diecisiete", "Dieciocho",
		"Diecinueve",
	},
	tens: []string{
		"", "", "Veinte", "Treinta", "Cuarenta", "Cincuenta",
		"Sesenta", "Setenta", "Ochenta", "Noventa",
	},
	hundredExact:  "Cien",
	hundredJoined: "Ciento",
	hundredSuffix: "cientos",
	thousand:      "Mil",
	million:       "Millón",
	billion:       "Millardo",
	zero:          "Cero",
	minus:         "Menos",
	conjunction:   "y",
	grammar:       grammarDefault,
}

var arabicTable = &langTable{
	tag:   LangArabic,
	names: []string{"ar", "ara", "arabic"},
	units: []string{
		"صفر", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة",
		"سبعة", "ثمانية", "تسعة", "عشرة", "أحد عشر", "اثنا عشر",
		"ثلاثة عشر", "أربعة عشر", "خمسة عشر", "ستة عشر", "سبعة عشر",
		"ثمانية عشر", "تسعة عشر",
	},
	tens: []string{
		"", "", "عشرون", "ثلاثون", "أربعون", "خمسون",
		"ستون", "سبعون", "ثمانون", "تسعون",
	},
	hundredExact:  "مائة",
	hundredJoined: "مائة",
	hundredTwo:    "مئتان",
	thousand:      "ألف",
	million:       "مليون",
	billion:       "مليار",
	zero:          "صفر",
	minus:         "سالب",
	conjunction:   "و",
	grammar:       grammarArabic,
}

// langTables is the registry the resolver walks. Order decides the order
// reported by Languages.
var langTables = []*langTable{englishTable, spanishTable, arabicTable}
