package settings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"univadmin/internal/config"
)

// FeeSchedule is the platform fee configuration. It is never stored.
type FeeSchedule struct {
	CommissionPercent     decimal.Decimal
	ProcessingPercent     decimal.Decimal
	FixedFee              decimal.Decimal
	WithdrawalFee         decimal.Decimal
	SessionTimeoutMinutes int
	HighValueThreshold    decimal.Decimal
}

func NewFeeSchedule(cfg config.FeeConfig) (FeeSchedule, error) {
	var (
		fs  = FeeSchedule{SessionTimeoutMinutes: cfg.SessionTimeoutMinutes}
		err error
	)

	parse := func(name, value string) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		d, perr := decimal.NewFromString(value)
		if perr != nil {
			err = fmt.Errorf("parsing %s %q: %w", name, value, perr)
		}
		return d
	}

	fs.CommissionPercent = parse("commission percent", cfg.CommissionPercent)
	fs.ProcessingPercent = parse("processing percent", cfg.ProcessingPercent)
	fs.FixedFee = parse("fixed fee", cfg.FixedFee)
	fs.WithdrawalFee = parse("withdrawal fee", cfg.WithdrawalFee)
	fs.HighValueThreshold = parse("high value threshold", cfg.HighValueThreshold)

	if err != nil {
		return FeeSchedule{}, err
	}
	return fs, nil
}
