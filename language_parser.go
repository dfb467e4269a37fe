package vidprobe

import "github.com/ansel1/merry/v2"

var LanguageParseError = merry.Sentinel("unable to parse language code")

// ParseLanguageCode accepts either a two-letter or a three-letter ISO code.
func ParseLanguageCode(langCode string) (Language, error) {
	if lang, ok := LanguagesByCode[langCode]; ok {
		return lang, nil
	}

	if lang, ok := LanguagesByCode3[langCode]; ok {
		return lang, nil
	}

	return Language{}, merry.Wrap(LanguageParseError)
}

func MustParseLanguageCode(langCode string) Language {
	l, err := ParseLanguageCode(langCode)
	if err != nil {
		panic(err)
	}

	return l
}
