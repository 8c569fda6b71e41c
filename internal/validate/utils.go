package validate

import (
	"errors"
	"strings"
)

var (
	ErrorConsecutiveReservedCharacters = errors.New("consecutive_reserved_characters")
	ErrorNotInAllowlistedCharacters    = errors.New("not_in_allowlisted_characters")
	ErrorNotLatinAlnum                 = errors.New("not_latin_alphanumeric")
	ErrorPostfixedWithNonLatinAlnum    = errors.New("cannot_end_with_non_latin_alphanumeric")
	ErrorPrefixedWithNonLatinAlnum     = errors.New("cannot_start_with_non_latin_alphanumeric")
	ErrorStringTooShort                = errors.New("string_too_short")
	ErrorStringTooLong                 = errors.New("string_too_long")
)

func hasMaxLength(l int) StringRule {
	return func(s string) error {
		if len(s) > l {
			return ErrorStringTooLong
		}
		return nil
	}
}

func hasMinLength(l int) StringRule {
	return func(s string) error {
		if len(s) < l {
			return ErrorStringTooShort
		}
		return nil
	}
}

func hasNoConsecutive(r rune) StringRule {
	return func(s string) error {
		if strings.Contains(s, string([]rune{r, r})) {
			return ErrorConsecutiveReservedCharacters
		}
		return nil
	}
}

func isCharacterInAllowlist(runes []rune) RuneRule {
	runeMap := map[rune]struct{}{}
	for _, runeInstance := range runes {
		runeMap[runeInstance] = struct{}{}
	}
	return func(curr rune, prev rune) error {
		if _, ok := runeMap[curr]; ok {
			return nil
		}
		return ErrorNotInAllowlistedCharacters
	}
}

func isLatinAlnum() RuneRule {
	return func(curr rune, prev rune) error {
		if (curr >= 'A' && curr <= 'Z') || (curr >= 'a' && curr <= 'z') || (curr >= '0' && curr <= '9') {
			return nil
		}
		return ErrorNotLatinAlnum
	}
}

func isPostfixedWithLatinAlnum() StringRule {
	return func(input string) error {
		if input == "" {
			return nil
		}
		if err := isLatinAlnum()(rune(input[len(input)-1]), ' '); err != nil {
			return ErrorPostfixedWithNonLatinAlnum
		}
		return nil
	}
}

func isPrefixedWithLatinAlnum() StringRule {
	return func(input string) error {
		if input == "" {
			return nil
		}
		if err := isLatinAlnum()(rune(input[0]), ' '); err != nil {
			return ErrorPrefixedWithNonLatinAlnum
		}
		return nil
	}
}
