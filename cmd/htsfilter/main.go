// cmd/htsfilter/main.go
package main

import (
	"htsfilter/internal/app"
	"htsfilter/internal/appshell"
)

func main() {
	appshell.Main(app.RunIO)
}
