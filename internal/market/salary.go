// Package market supplies market-salary context attached to analyses.
// There is no live job-market integration; the estimate is a fixed stub.
package market

// Salary is an estimated market salary for the analyzed role.
type Salary struct {
	Estimated int    `json:"estimated"`
	Currency  string `json:"currency"`
	Location  string `json:"location"`
}

// EstimateSalary returns the stub market salary used for every analysis.
func EstimateSalary() Salary {
	return Salary{
		Estimated: 120000,
		Currency:  "USD",
		Location:  "San Francisco",
	}
}
