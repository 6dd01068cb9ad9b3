package main

import (
	"fmt"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// noColor honours the NO_COLOR convention (https://no-color.org)
var noColor = os.Getenv("NO_COLOR") != ""

func printColored(color, prefix, format string, a ...interface{}) {
	msg := prefix + fmt.Sprintf(format, a...)
	if noColor {
		fmt.Println(msg)
		return
	}
	fmt.Println(color + msg + colorReset)
}

func PrintInfo(format string, a ...interface{}) {
	printColored(colorBlue, "i ", format, a...)
}

func PrintSuccess(format string, a ...interface{}) {
	printColored(colorGreen, "ok ", format, a...)
}

func PrintWarning(format string, a ...interface{}) {
	printColored(colorYellow, "! ", format, a...)
}

func PrintError(format string, a ...interface{}) {
	printColored(colorRed, "x ", format, a...)
}

func PrintHeader(title string) {
	fmt.Println()
	printColored(colorYellow, "", "=== %s ===", title)
}
