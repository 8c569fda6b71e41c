package cli

const (
	FlagTypeBool        FlagType = "bool"
	FlagTypeDuration    FlagType = "duration"
	FlagTypeFloat       FlagType = "float"
	FlagTypeInteger     FlagType = "integer"
	FlagTypeString      FlagType = "string"
	FlagTypeStringSlice FlagType = "stringslice"
)

const TimestampHuman = "2006-01-02 03:04:05 PM"

const Logo = `
  ___         ___                          _
 | _ \_ _ ___/ __|___ _  _ _ _  ___ ___ | |
 |  _/ '_/ _ \ (__/ _ \ || | ' \(_-</ -_)| |
 |_| |_| \___/\___\___/\_,_|_||_/__/\___||_|
`

