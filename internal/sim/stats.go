package sim

import (
	"math"

	"github.com/user/startup-sim/internal/types"
)

// Stat update constants. These numbers define the quarterly transition and
// must not drift: financial records and tests depend on them exactly.
const (
	revenuePerCustomerBase  = 100.0
	employeeQuarterlyCost   = 7000.0
	fixedCostBase           = 10000.0
	variableCostPerCustomer = 50.0
	customerAcquisitionBase = 10.0
	baseRetentionRate       = 0.85
	revenueGrowthFactor     = 1.05
)

// revenuePerCustomer returns the quarterly revenue one customer generates
// for the given business type.
func revenuePerCustomer(t types.BusinessType) float64 {
	switch t {
	case types.BusinessTech:
		return revenuePerCustomerBase * 1.2
	case types.BusinessEcommerce:
		return revenuePerCustomerBase * 1.1
	case types.BusinessService:
		return revenuePerCustomerBase * 0.9
	case types.BusinessManufacturing:
		return revenuePerCustomerBase * 1.0
	default:
		return revenuePerCustomerBase
	}
}

// valuationMultiple returns the annual-revenue multiple for the given
// business type.
func valuationMultiple(t types.BusinessType) float64 {
	switch t {
	case types.BusinessTech:
		return 8
	case types.BusinessEcommerce:
		return 3
	case types.BusinessService:
		return 2
	case types.BusinessManufacturing:
		return 1.5
	default:
		return 4
	}
}

// productProgressDelta returns the progress points gained this quarter:
// more engineers move faster, and a healthy cash position (relative to
// twice the initial capital) speeds things up within [0.5, 1.5].
func productProgressDelta(c *types.Company) float64 {
	capitalHealth := 0.0
	if c.InitialCapital > 0 {
		capitalHealth = c.Cash / (c.InitialCapital * 2)
	}
	return math.Round(10 * math.Sqrt(float64(c.Employees)) * 2 * clamp(capitalHealth, 0.5, 1.5))
}

// nextProductProgress applies the quarterly delta, capped at 100.
func nextProductProgress(c *types.Company) float64 {
	return math.Min(100, c.ProductProgress+productProgressDelta(c))
}

// quarterlyRevenue computes revenue from the customer base, scaled by
// product maturity and a compounding growth factor once revenue exists.
func quarterlyRevenue(c *types.Company, customers int, progress float64) float64 {
	base := float64(customers) * revenuePerCustomer(c.Type)
	productFactor := 0.5 + progress/200
	growthFactor := 1.0
	if c.Revenue > 0 {
		growthFactor = revenueGrowthFactor
	}
	return math.Round(base * productFactor * growthFactor)
}

// quarterlyExpenses computes payroll, fixed and variable costs with a
// coordination overhead that grows with headcount.
func quarterlyExpenses(c *types.Company, customers int) float64 {
	employeeCost := float64(c.Employees) * employeeQuarterlyCost
	fixedCosts := fixedCostBase + c.InitialCapital*0.01
	variableCosts := float64(customers) * variableCostPerCustomer
	scalingFactor := math.Sqrt(float64(c.Employees)) * 0.2
	return math.Round((employeeCost + fixedCosts + variableCosts) * (1 + scalingFactor))
}

// customerCount computes next quarter's customer base: retained existing
// customers plus new acquisitions driven by product readiness and the share
// of spend going to marketing.
func customerCount(c *types.Company, progress float64) int {
	productReadiness := math.Min(1, progress/75)
	acquisitionSpend := 0.0
	if c.Expenses > 0 {
		acquisitionSpend = math.Sqrt(c.Expenses * 0.3 / 10000)
	}
	newCustomers := math.Round(customerAcquisitionBase * productReadiness * acquisitionSpend)
	retentionRate := baseRetentionRate + progress/1000
	retained := math.Round(float64(c.Customers) * retentionRate)
	return int(retained + newCustomers)
}

// valuation computes company valuation as a multiple of annualized revenue,
// floored at twice the initial capital.
func valuation(c *types.Company, revenue float64) float64 {
	annualRevenue := revenue * 4
	v := annualRevenue * valuationMultiple(c.Type)
	if v < c.InitialCapital*2 {
		v = c.InitialCapital * 2
	}
	return math.Round(v)
}

// cashAfterQuarter applies the quarter's net result. Cash is deliberately
// not floored at zero: a negative balance signals a crisis to the advisor.
func cashAfterQuarter(c *types.Company, revenue, expenses float64) float64 {
	return c.Cash + (revenue - expenses)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
