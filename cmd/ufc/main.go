package main

import (
	"ufc/pkg/runner"

	chassis "github.com/ai8future/chassis-go/v5"
)

func main() {
	chassis.RequireMajor(5)
	r := runner.NewRunner("ufc")
	r.RunAndExit()
}
