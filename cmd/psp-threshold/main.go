package main

import (
	"psp/internal/appshell"
	"psp/internal/thresholdapp"
)

func main() { appshell.Main(thresholdapp.RunContext) }
