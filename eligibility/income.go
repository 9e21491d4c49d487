package eligibility

import "leaseflow/workflowconfig"

// ResolveIncomeCalculationMethod returns the configured income method, or
// GROSS_MONTHLY when the config is absent or silent. There is no failure
// mode.
func ResolveIncomeCalculationMethod(config *workflowconfig.Snapshot) workflowconfig.IncomeMethod {
	if config == nil || config.Config.IncomeCalculation == nil || config.Config.IncomeCalculation.Method == "" {
		return workflowconfig.IncomeGrossMonthly
	}
	return config.Config.IncomeCalculation.Method
}
