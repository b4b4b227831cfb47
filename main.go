package main

import (
	"os"

	"github.com/flarebyte/papyrus/internal/greeting"
)

// main prints the greeting and exits 0. The full CLI lives in cmd/papyrus.
func main() {
	_ = greeting.Print(os.Stdout)
}
