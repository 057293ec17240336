package main

import (
	"mfqe/internal/app"
	"mfqe/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
