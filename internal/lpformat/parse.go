// Package lpformat reads a small line-oriented textual problem format and
// builds a *model.Model from it — the external collaborator spec.md §6
// names ("parsing of textual problem descriptions") and a feature the
// distillation dropped but the original Rust solver carried in
// lp_reader.rs/lp_format.rs (there, via the lp_parser_rs crate and full
// CPLEX LP syntax; here, a much smaller line-oriented subset, since no
// repo in the retrieved corpus imports an LP-file parser).
//
// A file has three sections, in order:
//
//	Minimize:
//	 obj: 3 x1 + 5 x2 - 2 x3
//
//	Subject To:
//	 c1: 2 x1 - 1 x2 >= 3
//	 c2: x1 + x2 + x3 = 1
//
//	Binary:
//	 x1 x2 x3
//
// "Maximize:" is accepted in place of "Minimize:". Blank lines and lines
// starting with "//" are ignored anywhere. Every variable referenced by
// the objective or a constraint must be declared in the Binary section;
// anything else is ErrVarNotBinary.
package lpformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ahenshaw/balas/internal/normalize"
	"github.com/ahenshaw/balas/model"
)

var termPattern = regexp.MustCompile(`([+-])?\s*(\d+(?:\.\d+)?)?\s*\*?\s*([A-Za-z_][A-Za-z0-9_]*)`)

type section int

const (
	sectionNone section = iota
	sectionObjective
	sectionConstraints
	sectionBinary
)

// rawTerm is one coef*name summand parsed from a line, before it is
// resolved against the set of declared variables.
type rawTerm struct {
	coef float64
	name string
}

// ParseFile opens path and parses its contents. A missing or unreadable
// file is reported as normalize.ErrFileRead; a malformed file as
// normalize.ErrParse wrapping the offending line number and cause.
func ParseFile(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lpformat: opening %s: %w: %v", path, normalize.ErrFileRead, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a textual problem description from r and builds a
// *model.Model, ready for Compile.
func Parse(r io.Reader) (*model.Model, error) {
	scanner := bufio.NewScanner(r)

	var maximize bool
	var objTerms []rawTerm
	type rawConstraint struct {
		terms []rawTerm
		rel   string
		rhs   float64
		line  int
	}
	var constraints []rawConstraint
	binaryNames := make(map[string]bool)
	var binaryOrder []string

	cur := sectionNone
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		switch {
		case strings.EqualFold(line, "Minimize:"):
			cur, maximize = sectionObjective, false
			continue
		case strings.EqualFold(line, "Maximize:"):
			cur, maximize = sectionObjective, true
			continue
		case strings.EqualFold(line, "Subject To:"):
			cur = sectionConstraints
			continue
		case strings.EqualFold(line, "Binary:"):
			cur = sectionBinary
			continue
		}

		switch cur {
		case sectionObjective:
			_, expr, err := splitLabel(line)
			if err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			terms, err := parseTerms(expr)
			if err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			objTerms = append(objTerms, terms...)

		case sectionConstraints:
			_, expr, err := splitLabel(line)
			if err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			terms, rel, rhs, err := parseConstraintExpr(expr)
			if err != nil {
				return nil, parseErrorf(lineNo, err)
			}
			constraints = append(constraints, rawConstraint{terms: terms, rel: rel, rhs: rhs, line: lineNo})

		case sectionBinary:
			for _, name := range strings.Fields(line) {
				if !binaryNames[name] {
					binaryNames[name] = true
					binaryOrder = append(binaryOrder, name)
				}
			}

		default:
			return nil, parseErrorf(lineNo, fmt.Errorf("content outside any recognized section"))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lpformat: %w: %v", normalize.ErrFileRead, err)
	}
	if len(objTerms) == 0 {
		return nil, fmt.Errorf("lpformat: %w", normalize.ErrNoObjective)
	}
	if len(binaryOrder) == 0 {
		return nil, fmt.Errorf("lpformat: %w", normalize.ErrNoVars)
	}

	m := model.NewModel()
	if maximize {
		m.Maximize()
	} else {
		m.Minimize()
	}

	vars := make(map[string]*model.Variable, len(binaryOrder))
	for _, name := range binaryOrder {
		vars[name] = m.AddVariable(name)
	}

	objCoeff := make(map[string]float64, len(objTerms))
	for _, t := range objTerms {
		if _, ok := vars[t.name]; !ok {
			return nil, fmt.Errorf("lpformat: objective references %q: %w", t.name, normalize.ErrVarNotBinary)
		}
		objCoeff[t.name] += t.coef
	}
	for name, coef := range objCoeff {
		vars[name].SetCoeff(coef)
	}

	for _, rc := range constraints {
		c := m.AddConstraint()
		for _, t := range rc.terms {
			v, ok := vars[t.name]
			if !ok {
				return nil, parseErrorf(rc.line, fmt.Errorf("constraint references %q: %w", t.name, normalize.ErrVarNotBinary))
			}
			c.AddTerm(t.coef, v)
		}
		switch rc.rel {
		case ">=":
			c.GreaterOrEqualTo(rc.rhs)
		case "<=":
			c.LessOrEqualTo(rc.rhs)
		case "=":
			c.EqualTo(rc.rhs)
		default:
			return nil, parseErrorf(rc.line, fmt.Errorf("unrecognized relation %q: %w", rc.rel, normalize.ErrUnexpectedConstraintType))
		}
	}

	return m, nil
}

// splitLabel separates a line's leading "name:" label from the
// expression that follows it.
func splitLabel(line string) (label, rest string, err error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("expected %q label", "name:")
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), nil
}

var relPattern = regexp.MustCompile(`>=|<=|=`)

// parseConstraintExpr splits an expression on its first relational
// operator, parses the left side as a term list and the right side as a
// single numeric constant. Variable terms on the right side are not
// accepted: they fail to parse as a number and are reported as an error.
func parseConstraintExpr(expr string) (terms []rawTerm, rel string, rhs float64, err error) {
	loc := relPattern.FindStringIndex(expr)
	if loc == nil {
		return nil, "", 0, fmt.Errorf("expected one of >=, <=, = in %q", expr)
	}
	rel = expr[loc[0]:loc[1]]
	lhs, rhsExpr := expr[:loc[0]], expr[loc[1]:]

	terms, err = parseTerms(lhs)
	if err != nil {
		return nil, "", 0, err
	}
	rhsVal, err := strconv.ParseFloat(strings.TrimSpace(rhsExpr), 64)
	if err != nil {
		return nil, "", 0, fmt.Errorf("parsing rhs %q: %w", rhsExpr, err)
	}
	return terms, rel, rhsVal, nil
}

// parseTerms scans a linear expression like "3 x1 - 2 x2 + x3" into a
// list of signed coef*name terms. A term with no explicit coefficient
// (bare "x3" or "- x3") is taken to have coefficient 1.
func parseTerms(expr string) ([]rawTerm, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	matches := termPattern.FindAllStringSubmatch(expr, -1)
	if matches == nil {
		return nil, fmt.Errorf("no terms found in %q", expr)
	}
	terms := make([]rawTerm, 0, len(matches))
	for _, m := range matches {
		sign := 1.0
		if m[1] == "-" {
			sign = -1
		}
		coef := 1.0
		if m[2] != "" {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return nil, fmt.Errorf("parsing coefficient %q: %w", m[2], err)
			}
			coef = v
		}
		terms = append(terms, rawTerm{coef: sign * coef, name: m[3]})
	}
	return terms, nil
}

// parseErrorf wraps both normalize.ErrParse and the underlying cause
// (which may itself wrap a more specific sentinel such as
// normalize.ErrVarNotBinary) so errors.Is matches either.
func parseErrorf(line int, cause error) error {
	return fmt.Errorf("lpformat: line %d: %w: %w", line, normalize.ErrParse, cause)
}
