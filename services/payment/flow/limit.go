package flow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/piresc/transferflow/internal/pkg/models"
	"github.com/piresc/transferflow/internal/pkg/money"
)

// Evaluation is the remaining daily limit after the entered amount
type Evaluation struct {
	Remaining decimal.Decimal
	Exceeded  bool
}

// Evaluate computes remaining = round2(limit - amount). A nil amount counts as zero.
func Evaluate(amount *decimal.Decimal, limit decimal.Decimal) Evaluation {
	spent := decimal.Zero
	if amount != nil {
		spent = *amount
	}
	remaining := money.Round2(limit.Sub(spent))
	return Evaluation{
		Remaining: remaining,
		Exceeded:  remaining.IsNegative(),
	}
}

// OverLimitBy is the amount above the limit, zero when within it
func (e Evaluation) OverLimitBy() decimal.Decimal {
	if !e.Exceeded {
		return decimal.Zero
	}
	return e.Remaining.Abs()
}

// Message is the over-limit notice, empty when within the limit
func (e Evaluation) Message(currency string) string {
	if !e.Exceeded {
		return ""
	}
	return fmt.Sprintf("You have exceeded your daily limit by %s %s", money.Format(e.OverLimitBy()), currency)
}

// Guard re-evaluates the spending limit on every amount change and reports the exceeded flag
// to onChange only when it flips.
type Guard struct {
	limit    models.SpendingLimit
	hasLimit bool
	amount   *decimal.Decimal
	current  Evaluation
	onChange func(exceeded bool)
}

// NewGuard creates a guard without a limit; nothing is exceeded until a limit is set
func NewGuard(onChange func(exceeded bool)) *Guard {
	return &Guard{onChange: onChange}
}

// SetLimit replaces the limit and resets the amount
func (g *Guard) SetLimit(limit models.SpendingLimit) Evaluation {
	g.limit = limit
	g.hasLimit = true
	g.amount = nil
	return g.recompute()
}

// Update re-evaluates for a new amount
func (g *Guard) Update(amount *decimal.Decimal) Evaluation {
	g.amount = amount
	return g.recompute()
}

func (g *Guard) recompute() Evaluation {
	prev := g.current.Exceeded
	if g.hasLimit {
		g.current = Evaluate(g.amount, g.limit.DailyLimit)
	} else {
		g.current = Evaluation{}
	}
	if g.current.Exceeded != prev && g.onChange != nil {
		g.onChange(g.current.Exceeded)
	}
	return g.current
}

// Exceeded reports the current flag
func (g *Guard) Exceeded() bool {
	return g.current.Exceeded
}

// Current returns the latest evaluation
func (g *Guard) Current() Evaluation {
	return g.current
}

// Limit returns the limit and whether one is set
func (g *Guard) Limit() (models.SpendingLimit, bool) {
	return g.limit, g.hasLimit
}

// View renders the limit for presentation, nil without a limit
func (g *Guard) View() *models.LimitView {
	if !g.hasLimit {
		return nil
	}
	return &models.LimitView{
		DailyLimit: money.Format(g.limit.DailyLimit),
		Remaining:  money.Format(g.current.Remaining),
		Currency:   g.limit.Currency,
		Exceeded:   g.current.Exceeded,
		Message:    g.current.Message(g.limit.Currency),
	}
}
