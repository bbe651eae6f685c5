package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shivua6263/policy/internal/client/controllers"
	"github.com/shivua6263/policy/internal/client/quote"
)

// Quote walks through the premium calculator.
func (a *App) Quote(_ context.Context) error {
	types := quote.PolicyTypes()
	policyType, err := getSimpleText(a.reader, "Policy type ("+strings.Join(types, ", ")+")", a.out)
	if err != nil {
		return err
	}

	options := quote.CoverageOptions(policyType)
	lines := make([]string, len(options))
	for i, o := range options {
		lines[i] = fmt.Sprintf("  %d) %s", i+1, o.Text())
	}
	choice, err := getSimpleText(a.reader, "Coverage:\n"+strings.Join(lines, "\n"), a.out)
	if err != nil {
		return err
	}
	term, err := getSimpleText(a.reader, "Term (years)", a.out)
	if err != nil {
		return err
	}
	age, err := getSimpleText(a.reader, "Age", a.out)
	if err != nil {
		return err
	}

	req := quote.Request{PolicyType: policyType, TermYears: atoi(term), Age: atoi(age)}
	if n := atoi(choice); n >= 1 && n <= len(options) {
		req.Coverage = options[n-1].Amount
	}

	q, err := quote.Calculate(req)
	switch {
	case errors.Is(err, quote.ErrMissingFields):
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Please fill in all required fields"})
		return err
	case err != nil:
		a.printMessage(controllers.Message{Kind: controllers.MessageError, Text: "Unknown policy type"})
		return err
	}

	a.printMessage(controllers.Message{
		Kind: controllers.MessageSuccess,
		Text: fmt.Sprintf("%s: estimated premium ₹%d per year", q.Label(), q.RoundedPremium()),
	})
	return nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
