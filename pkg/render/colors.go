package render

// DefaultLanguageColor is used for unknown and absent languages.
const DefaultLanguageColor = "#6b7280"

// languageColors maps common languages to their badge colour.
var languageColors = map[string]string{
	"JavaScript":       "#f1e05a",
	"TypeScript":       "#2b7489",
	"Python":           "#3572A5",
	"Java":             "#b07219",
	"HTML":             "#e34c26",
	"CSS":              "#563d7c",
	"PHP":              "#4F5D95",
	"Ruby":             "#701516",
	"Go":               "#00ADD8",
	"C++":              "#f34b7d",
	"C":                "#555555",
	"C#":               "#178600",
	"Swift":            "#ffac45",
	"Kotlin":           "#F18E33",
	"Rust":             "#dea584",
	"Dart":             "#00B4AB",
	"Shell":            "#89e051",
	"Vue":              "#2c3e50",
	"Blade":            "#f7523f",
	"Hack":             "#878787",
	"Jupyter Notebook": "#DA5B0B",
}

// LanguageColor returns the badge colour for language, falling back to
// DefaultLanguageColor when the language is absent or not in the table.
func LanguageColor(language *string) string {
	if language == nil {
		return DefaultLanguageColor
	}
	if color, ok := languageColors[*language]; ok {
		return color
	}
	return DefaultLanguageColor
}
