package main

import (
	"psp/internal/app"
	"psp/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
