package main

import "github.com/studiopayroll/payroll-engine-go/internal/cli"

func main() {
	cli.Execute()
}
