package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aufin/calc-engine/internal/domain"
	"github.com/aufin/calc-engine/pkg/dateutil"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// AmortisationEngine generates repayment schedules for variable-rate loans
// with offsets, extra repayments and fees.
type AmortisationEngine struct {
	logger *zap.Logger
}

// NewAmortisationEngine creates an engine. A nil logger disables logging.
func NewAmortisationEngine(logger *zap.Logger) *AmortisationEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortisationEngine{logger: logger}
}

// GenerateSchedule amortises the loan period by period and returns the full
// schedule with its summary.
func (e *AmortisationEngine) GenerateSchedule(in domain.LoanInputs) (*domain.AmortisationResult, error) {
	in = applyLoanDefaults(in)
	start, err := validateLoanInputs(in)
	if err != nil {
		return nil, err
	}

	ppy := in.Frequency.PeriodsPerYear()
	maxPeriods := in.TermYears * ppy
	baseRate := periodRate(in.AnnualRate, ppy)
	regularPayment := annuityPayment(in.Amount, baseRate, maxPeriods)

	rateChanges := make([]domain.RateChange, len(in.RateChanges))
	copy(rateChanges, in.RateChanges)
	sort.SliceStable(rateChanges, func(i, j int) bool {
		return rateChanges[i].EffectiveDate < rateChanges[j].EffectiveDate
	})

	periodFee, annualFee := periodFees(in.Fees, ppy)

	balance := in.Amount
	offsetBalance := decimal.Zero
	var offsetContribution decimal.Decimal
	if in.Offset != nil {
		offsetBalance = in.Offset.InitialBalance
		if contributesMonthly(in.Offset, in.Frequency) {
			offsetContribution = in.Offset.MonthlyContribution
		}
	}

	totalInterest := decimal.Zero
	totalFees := decimal.Zero
	totalPaid := decimal.Zero
	if in.Fees != nil {
		totalFees = totalFees.Add(in.Fees.Upfront)
		totalPaid = totalPaid.Add(in.Fees.Upfront)
	}

	e.logger.Debug("generating amortisation schedule",
		zap.String("amount", in.Amount.String()),
		zap.String("rate", in.AnnualRate.String()),
		zap.Int("maxPeriods", maxPeriods))

	schedule := make([]domain.PeriodRow, 0, maxPeriods)
	date := start
	for i := 1; i <= maxPeriods && balance.Sign() > 0; i++ {
		dateStr := dateutil.FormatDate(date)

		currentRate := in.AnnualRate
		for _, rc := range rateChanges {
			if rc.EffectiveDate <= dateStr {
				currentRate = rc.AnnualRate
			}
		}
		r := periodRate(currentRate, ppy)

		effectiveBalance := balance.Sub(offsetBalance)
		if effectiveBalance.Sign() < 0 {
			effectiveBalance = decimal.Zero
		}
		interest := effectiveBalance.Mul(r)

		payment := regularPayment
		if in.Type == domain.RepayInterestOnly {
			payment = interest
		}

		extra := extraForPeriod(in.ExtraRepayments, date, dateStr)

		fees := periodFee
		if annualFee.Sign() > 0 && i%ppy == 1 {
			fees = fees.Add(annualFee)
		}

		fromPayment := payment.Sub(interest)
		if fromPayment.Sign() < 0 {
			fromPayment = decimal.Zero
		}
		principal := fromPayment.Add(extra)
		if principal.GreaterThan(balance) {
			overshoot := principal.Sub(balance)
			trim := decimal.Min(overshoot, fromPayment)
			payment = payment.Sub(trim)
			extra = extra.Sub(overshoot.Sub(trim))
			principal = balance
			e.logger.Debug("capped final repayment", zap.Int("period", i))
		}
		closing := balance.Sub(principal)

		if offsetContribution.Sign() > 0 {
			offsetBalance = offsetBalance.Add(offsetContribution)
		}

		schedule = append(schedule, domain.PeriodRow{
			Period:         i,
			Date:           dateStr,
			OpeningBalance: balance.Round(2),
			Payment:        payment.Round(2),
			Extra:          extra.Round(2),
			Interest:       interest.Round(2),
			Principal:      principal.Round(2),
			Fees:           fees.Round(2),
			ClosingBalance: closing.Round(2),
			OffsetBalance:  offsetBalance.Round(2),
			AnnualRate:     currentRate,
		})

		totalInterest = totalInterest.Add(interest)
		totalFees = totalFees.Add(fees)
		totalPaid = totalPaid.Add(payment).Add(extra).Add(fees)
		balance = closing

		if in.Strategy == domain.StrategyReduceRepayment && in.Type == domain.RepayPrincipalAndInterest {
			if remaining := maxPeriods - i; remaining > 0 && balance.Sign() > 0 {
				regularPayment = annuityPayment(balance, r, remaining)
			}
		}

		date = nextPeriodDate(date, in.Frequency)
	}

	payoffDate := dateutil.FormatDate(start)
	if len(schedule) > 0 {
		payoffDate = schedule[len(schedule)-1].Date
	}

	return &domain.AmortisationResult{
		Summary: domain.AmortisationSummary{
			// The most recent regular payment, reduced over the life of the
			// loan under the reduce-repayment strategy.
			RegularPayment: regularPayment.Round(2),
			TotalInterest:  totalInterest.Round(2),
			TotalFees:      totalFees.Round(2),
			TotalPaid:      totalPaid.Round(2),
			PayoffDate:     payoffDate,
			TotalPeriods:   len(schedule),
		},
		Schedule: schedule,
	}, nil
}

func applyLoanDefaults(in domain.LoanInputs) domain.LoanInputs {
	if in.Type == "" {
		in.Type = domain.RepayPrincipalAndInterest
	}
	if in.Strategy == "" {
		in.Strategy = domain.StrategyReduceTerm
	}
	return in
}

func validateLoanInputs(in domain.LoanInputs) (time.Time, error) {
	if in.Amount.Sign() <= 0 {
		return time.Time{}, fmt.Errorf("loan amount must be positive")
	}
	if in.AnnualRate.Sign() < 0 {
		return time.Time{}, fmt.Errorf("annual rate cannot be negative")
	}
	if in.TermYears <= 0 {
		return time.Time{}, fmt.Errorf("term must be at least one year")
	}
	if in.Frequency.PeriodsPerYear() == 0 {
		return time.Time{}, fmt.Errorf("invalid repayment frequency %q", in.Frequency)
	}
	if in.Type != domain.RepayPrincipalAndInterest && in.Type != domain.RepayInterestOnly {
		return time.Time{}, fmt.Errorf("invalid repayment type %q", in.Type)
	}
	if in.Strategy != domain.StrategyReduceTerm && in.Strategy != domain.StrategyReduceRepayment {
		return time.Time{}, fmt.Errorf("invalid extra repayment strategy %q", in.Strategy)
	}
	start, err := dateutil.ParseDate(in.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("start date: %w", err)
	}
	for i, rc := range in.RateChanges {
		if _, err := dateutil.ParseDate(rc.EffectiveDate); err != nil {
			return time.Time{}, fmt.Errorf("rate change %d: %w", i, err)
		}
		if rc.AnnualRate.Sign() < 0 {
			return time.Time{}, fmt.Errorf("rate change %d: annual rate cannot be negative", i)
		}
	}
	for i, er := range in.ExtraRepayments {
		if _, err := dateutil.ParseDate(er.EffectiveDate); err != nil {
			return time.Time{}, fmt.Errorf("extra repayment %d: %w", i, err)
		}
		if er.Amount.Sign() < 0 {
			return time.Time{}, fmt.Errorf("extra repayment %d: amount cannot be negative", i)
		}
	}
	if in.Offset != nil && in.Offset.InitialBalance.Sign() < 0 {
		return time.Time{}, fmt.Errorf("offset balance cannot be negative")
	}
	return start, nil
}

// annuityPayment returns the level payment for a principal over n periods at
// the per-period rate r. A zero rate divides the principal evenly.
func annuityPayment(principal, r decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return principal
	}
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(n)))
	}
	pow := one.Add(r).Pow(decimal.NewFromInt(int64(n)))
	return principal.Mul(r).Mul(pow).Div(pow.Sub(one))
}

func periodRate(annualRate decimal.Decimal, ppy int) decimal.Decimal {
	return annualRate.Div(hundred).Div(decimal.NewFromInt(int64(ppy)))
}

func periodFees(fees *domain.FeeConfig, ppy int) (periodFee, annualFee decimal.Decimal) {
	if fees == nil {
		return decimal.Zero, decimal.Zero
	}
	monthly := fees.Monthly
	twelve := decimal.NewFromInt(12)
	switch ppy {
	case 52:
		periodFee = monthly.Mul(twelve).Div(decimal.NewFromInt(52))
	case 26:
		periodFee = monthly.Mul(twelve).Div(decimal.NewFromInt(26))
	default:
		periodFee = monthly
	}
	return periodFee, fees.Annual
}

func contributesMonthly(offset *domain.OffsetConfig, freq domain.RepaymentFrequency) bool {
	if offset.MonthlyContribution.Sign() <= 0 || freq != domain.RepayMonthly {
		return false
	}
	return offset.ContributionFrequency == "" || offset.ContributionFrequency == "monthly"
}

func extraForPeriod(extras []domain.ExtraRepayment, date time.Time, dateStr string) decimal.Decimal {
	total := decimal.Zero
	for _, er := range extras {
		if er.Recurring {
			if er.EffectiveDate <= dateStr {
				total = total.Add(er.Amount)
			}
			continue
		}
		effective, err := dateutil.ParseDate(er.EffectiveDate)
		if err == nil && dateutil.SameDay(effective, date) {
			total = total.Add(er.Amount)
		}
	}
	return total
}

func nextPeriodDate(date time.Time, freq domain.RepaymentFrequency) time.Time {
	switch freq {
	case domain.RepayWeekly:
		return dateutil.AddDays(date, 7)
	case domain.RepayFortnightly:
		return dateutil.AddDays(date, 14)
	default:
		return dateutil.AddMonths(date, 1)
	}
}
