package e2e

import (
	"github.com/cucumber/godog"

	"mealog/e2e/steps/common"
	"mealog/e2e/steps/records"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (readiness, generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register meal record steps
	records.RegisterSteps(ctx, tc)
}
