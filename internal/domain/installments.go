package domain

import "github.com/shopspring/decimal"

const MaxInstallments = 12

// InstallmentPlan splits a total for display. The processor bills from
// Total and Count; PerInstallment is a rounded figure for the customer.
type InstallmentPlan struct {
	Count          int
	Total          decimal.Decimal
	PerInstallment decimal.Decimal
}

func NewInstallmentPlan(total decimal.Decimal, count int) (InstallmentPlan, error) {
	if count < 1 || count > MaxInstallments {
		return InstallmentPlan{}, NewInvalidInstallmentsError(count)
	}

	return InstallmentPlan{
		Count:          count,
		Total:          total,
		PerInstallment: total.DivRound(decimal.NewFromInt(int64(count)), 2),
	}, nil
}

func (p InstallmentPlan) IsSplit() bool {
	return p.Count > 1
}

// Schedule lists each installment amount; the last one absorbs the rounding
// remainder so the amounts add up to Total exactly.
func (p InstallmentPlan) Schedule() []decimal.Decimal {
	amounts := make([]decimal.Decimal, p.Count)
	paid := decimal.Zero
	for i := 0; i < p.Count-1; i++ {
		amounts[i] = p.PerInstallment
		paid = paid.Add(p.PerInstallment)
	}
	amounts[p.Count-1] = p.Total.Sub(paid)
	return amounts
}
