package validate

import (
	"errors"
	"testing"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"admin@procounsel.co.in",
		"first.last@example.com",
		"ops+alerts@example.io",
	}
	for _, email := range valid {
		if err := Email(email); err != nil {
			t.Errorf("expected %s to be valid: %s", email, err)
		}
	}

	invalid := map[string]error{
		"":                      ErrorEmailMissing,
		"a@bc":                  ErrorEmailDomainInvalid,
		"no-at-sign.com":        ErrorEmailInvalidAt,
		"two@@example.com":      ErrorEmailInvalidAt,
		".leading@example.com":  ErrorEmailUserPartLeadingSymbols,
		"trailing.@example.com": ErrorEmailUserPartTrailingSymbols,
		"dou..ble@example.com":  ErrorEmailUserPartConsecutiveSymbols,
	}
	for email, expected := range invalid {
		err := Email(email)
		if err == nil {
			t.Errorf("expected %s to be invalid", email)
			continue
		}
		if !errors.Is(err, expected) {
			t.Errorf("expected %s to fail with %v, got %v", email, expected, err)
		}
	}
}

func TestUserName(t *testing.T) {
	valid := []string{
		"john-doe",
		"jane_doe.counselling",
		"a1b",
	}
	for _, userName := range valid {
		if err := UserName(userName); err != nil {
			t.Errorf("expected %s to be valid: %s", userName, err)
		}
	}

	invalid := map[string]error{
		"ab":        ErrorStringTooShort,
		"john--doe": ErrorConsecutiveReservedCharacters,
		"-john-doe": ErrorPrefixedWithNonLatinAlnum,
		"john-doe-": ErrorPostfixedWithNonLatinAlnum,
		"john doe":  ErrorNotInAllowlistedCharacters,
	}
	for userName, expected := range invalid {
		err := UserName(userName)
		if err == nil {
			t.Errorf("expected %s to be invalid", userName)
			continue
		}
		if !errors.Is(err, expected) {
			t.Errorf("expected %s to fail with %v, got %v", userName, expected, err)
		}
	}
}
