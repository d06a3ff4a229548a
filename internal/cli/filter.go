package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/slotbook/slotbook-sdk-go/slotbook/types"
)

// WindowEnv is the environment an availability filter expression sees.
type WindowEnv struct {
	ResourceID int     `expr:"resource_id"`
	Date       string  `expr:"date"`
	Start      string  `expr:"start"`
	End        string  `expr:"end"`
	Minutes    int     `expr:"minutes"`
	Price      float64 `expr:"price"`
	Currency   string  `expr:"currency"`
	Available  bool    `expr:"available"`
}

// WindowFilter is a compiled availability filter expression, for example
//
//	available && price <= 40 && start >= "18:00"
type WindowFilter struct {
	expression string
	program    *vm.Program
}

// CompileWindowFilter compiles expression. An empty expression matches every window.
func CompileWindowFilter(expression string) (*WindowFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &WindowFilter{}, nil
	}

	program, err := expr.Compile(expression, expr.Env(WindowEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", expression, err)
	}
	return &WindowFilter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *WindowFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one window of resourceID.
func (f *WindowFilter) Match(resourceID int, w types.AvailabilityWindow) (bool, error) {
	if f.program == nil {
		return true, nil
	}

	env := WindowEnv{
		ResourceID: resourceID,
		Date:       w.Date.Format(openapi_types.DateFormat),
		Start:      clock(w.StartTime),
		End:        clock(w.EndTime),
		Currency:   w.Currency,
		Available:  w.IsAvailable,
	}
	if d, err := w.Duration(); err == nil {
		env.Minutes = int(d.Minutes())
	}
	if w.Price != "" {
		price, err := strconv.ParseFloat(w.Price, 64)
		if err != nil {
			return false, fmt.Errorf("window %s %s: invalid price %q", w.Date, w.StartTime, w.Price)
		}
		env.Price = price
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", f.expression, err)
	}
	return out.(bool), nil
}

// clock trims a seconds suffix so "18:00:00" and "18:00" compare equal.
func clock(s string) string {
	if len(s) == len("15:04:05") && strings.HasSuffix(s, ":00") {
		return s[:len("15:04")]
	}
	return s
}

// Apply returns the windows of resp that match.
func (f *WindowFilter) Apply(resp *types.AvailabilityResponse) ([]types.AvailabilityWindow, error) {
	matched := make([]types.AvailabilityWindow, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		ok, err := f.Match(resp.ResourceID, w)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, w)
		}
	}
	return matched, nil
}
