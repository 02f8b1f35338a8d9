// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and every metric it selects must be known.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/etsy-bridge/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there were no errors.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// panelJSON is the subset of a Grafana panel the checks read.
type panelJSON struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Targets []struct {
		Expr  string `json:"expr"`
		RefID string `json:"refId"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every panel target of dash, which must marshal to
// Grafana dashboard JSON.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.errorf("marshaling dashboard: %v", err)
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.errorf("reading dashboard JSON: %v", err)
		return res
	}

	for _, p := range doc.Panels {
		checkPanel(&res, p, known)
	}
	return res
}

func checkPanel(res *Result, p panelJSON, known map[string]bool) {
	if p.Type == "row" {
		for _, inner := range p.Panels {
			checkPanel(res, inner, known)
		}
		return
	}

	if p.Title == "" {
		res.warnf("panel of type %q has no title", p.Type)
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", p.Title)
	}
	for _, t := range p.Targets {
		checkExpr(res, fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, known)
	}
}

// Rules validates every expression of cr. Recording rule names become known
// to the rules that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule has neither record nor alert", g.Name)
			}
			checkExpr(&res, fmt.Sprintf("rule %s", name), r.Expr, known)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %v", where, err)
		return
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.errorf("%s: unknown metric %q", where, vs.Name)
		}
		return nil
	})
}

// isKnown accepts histogram series by their base metric name.
func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}
