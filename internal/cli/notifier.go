package cli

import "fmt"

// PrintNotifier surfaces action outcomes on stdout
type PrintNotifier struct{}

func (PrintNotifier) Successf(format string, args ...any) {
	fmt.Printf("✅ "+format+"\n", args...)
}

func (PrintNotifier) Errorf(format string, args ...any) {
	fmt.Printf("❌ "+format+"\n", args...)
}
