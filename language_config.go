package vidprobe

import "strings"

type Language struct {
	// Name is the English language name as remote APIs tend to spell it
	Name       string
	NativeName string
	// Code is the two-letter ISO 639-1 code
	Code string
	// Code3 is the three-letter ISO 639-2 code
	Code3 string
}

type LanguageList []Language

var (
	LanguagesByCode  map[string]Language
	LanguagesByCode3 map[string]Language
	LanguagesByName  map[string]Language
)

func init() {
	LanguagesByCode = languages.ByCode()
	LanguagesByCode3 = languages.ByCode3()
	LanguagesByName = languages.ByName()
}

func (l LanguageList) ByCode() map[string]Language {
	out := make(map[string]Language)
	for _, lang := range l {
		out[lang.Code] = lang
	}
	return out
}

func (l LanguageList) ByCode3() map[string]Language {
	out := make(map[string]Language)
	for _, lang := range l {
		out[lang.Code3] = lang
	}
	return out
}

func (l LanguageList) ByName() map[string]Language {
	out := make(map[string]Language)
	for _, lang := range l {
		out[strings.ToLower(lang.Name)] = lang
	}
	return out
}

// LongNameToCode resolves an English language name ("French") to its
// two-letter code ("fr"). Returns the empty string when the name is unknown.
func LongNameToCode(name string) string {
	lang, ok := LanguagesByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ""
	}
	return lang.Code
}

var languages = LanguageList{
	{Name: "English", NativeName: "English", Code: "en", Code3: "eng"},
	{Name: "French", NativeName: "Français", Code: "fr", Code3: "fra"},
	{Name: "German", NativeName: "Deutsch", Code: "de", Code3: "deu"},
	{Name: "Spanish", NativeName: "Española", Code: "es", Code3: "spa"},
	{Name: "Japanese", NativeName: "日本語", Code: "ja", Code3: "jpn"},
	{Name: "Dutch", NativeName: "Nederlands", Code: "nl", Code3: "nld"},
	{Name: "Italian", NativeName: "Italiano", Code: "it", Code3: "ita"},
	{Name: "Portuguese", NativeName: "Português", Code: "pt", Code3: "por"},
	{Name: "Russian", NativeName: "Русский", Code: "ru", Code3: "rus"},
	{Name: "Chinese", NativeName: "中文", Code: "zh", Code3: "zho"},
	{Name: "Korean", NativeName: "한국어", Code: "ko", Code3: "kor"},
	{Name: "Norwegian", NativeName: "Norsk", Code: "no", Code3: "nor"},
	{Name: "Danish", NativeName: "Dansk", Code: "da", Code3: "dan"},
	{Name: "Swedish", NativeName: "Svenska", Code: "sv", Code3: "swe"},
	{Name: "Finnish", NativeName: "Suomalainen", Code: "fi", Code3: "fin"},
	{Name: "Polish", NativeName: "Polski", Code: "pl", Code3: "pol"},
	{Name: "Turkish", NativeName: "Türkçe", Code: "tr", Code3: "tur"},
	{Name: "Czech", NativeName: "Čeština", Code: "cs", Code3: "ces"},
	{Name: "Hungarian", NativeName: "Magyar", Code: "hu", Code3: "hun"},
	{Name: "Romanian", NativeName: "Română", Code: "ro", Code3: "ron"},
	{Name: "Bulgarian", NativeName: "български", Code: "bg", Code3: "bul"},
	{Name: "Croatian", NativeName: "Hrvatski", Code: "hr", Code3: "hrv"},
	{Name: "Arabic", NativeName: "العربية", Code: "ar", Code3: "ara"},
	{Name: "Hebrew", NativeName: "עברית", Code: "he", Code3: "heb"},
	{Name: "Hindi", NativeName: "हिन्दी", Code: "hi", Code3: "hin"},
}
