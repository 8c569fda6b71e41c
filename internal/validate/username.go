package validate

var (
	allowedSymbolsInUserName = []rune{'-', '_', '.'}
)

const (
	UserNameMinLength = 3
	UserNameMaxLength = 64
)

// UserName checks a counsellor identifier, the slug-style `userName`
// that keys every counsellor-scoped backend operation
func UserName(userName string) error {
	return do(
		userName,
		andS(
			hasMinLength(UserNameMinLength),
			hasMaxLength(UserNameMaxLength),
			hasNoConsecutive('-'),
			hasNoConsecutive('_'),
			hasNoConsecutive('.'),
			isPrefixedWithLatinAlnum(),
			isPostfixedWithLatinAlnum(),
		),
		orR(
			isLatinAlnum(),
			isCharacterInAllowlist(allowedSymbolsInUserName),
		),
	)
}
