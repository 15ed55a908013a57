package main

import (
	"fmt"
	"os"

	"github.com/AyushiSoni2003/Scrape-saas-news/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
