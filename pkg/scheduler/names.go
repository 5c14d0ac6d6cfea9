package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable-name grammar (spec.md §6), stable so the reporter can recover the
// (employee, day, shift) triple a solved `x` variable refers to without a
// side table:
//
//	'x' EID ':' D ':' K
//	'd' EID ':' D
//	'p' EID ':' D '-' D
//	'w' EID ':' J
//	'y' D ':' P

func encodeX(eid, day, k int) string {
	return fmt.Sprintf("x%d:%d:%d", eid, day, k)
}

func encodeD(eid, day int) string {
	return fmt.Sprintf("d%d:%d", eid, day)
}

func encodeP(eid, day int) string {
	return fmt.Sprintf("p%d:%d-%d", eid, day, day+1)
}

func encodeW(eid, weekend int) string {
	return fmt.Sprintf("w%d:%d", eid, weekend)
}

func encodeY(day, period int) string {
	return fmt.Sprintf("y%d:%d", day, period)
}

// parseX decodes an 'x' variable name into (employee id, day, shift index).
func parseX(name string) (eid, day, k int, err error) {
	fields, err := splitFields('x', name, 3)
	if err != nil {
		return 0, 0, 0, err
	}
	return fields[0], fields[1], fields[2], nil
}

// parseD decodes a 'd' variable name into (employee id, day).
func parseD(name string) (eid, day int, err error) {
	fields, err := splitFields('d', name, 2)
	if err != nil {
		return 0, 0, err
	}
	return fields[0], fields[1], nil
}

// parseP decodes a 'p' variable name into (employee id, first day of the
// pair). The second day is always first+1, per the grammar.
func parseP(name string) (eid, day int, err error) {
	if len(name) == 0 || name[0] != 'p' {
		return 0, 0, fmt.Errorf("mipsolve names: %q is not a p-variable", name)
	}
	rest := name[1:]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return 0, 0, fmt.Errorf("mipsolve names: malformed p-variable %q", name)
	}
	eid, err = strconv.Atoi(rest[:colon])
	if err != nil {
		return 0, 0, fmt.Errorf("mipsolve names: malformed p-variable %q: %w", name, err)
	}
	dash := strings.IndexByte(rest[colon+1:], '-')
	if dash < 0 {
		return 0, 0, fmt.Errorf("mipsolve names: malformed p-variable %q", name)
	}
	day, err = strconv.Atoi(rest[colon+1 : colon+1+dash])
	if err != nil {
		return 0, 0, fmt.Errorf("mipsolve names: malformed p-variable %q: %w", name, err)
	}
	return eid, day, nil
}

// parseW decodes a 'w' variable name into (employee id, weekend index).
func parseW(name string) (eid, weekend int, err error) {
	fields, err := splitFields('w', name, 2)
	if err != nil {
		return 0, 0, err
	}
	return fields[0], fields[1], nil
}

// parseY decodes a 'y' variable name into (day, period).
func parseY(name string) (day, period int, err error) {
	fields, err := splitFields('y', name, 2)
	if err != nil {
		return 0, 0, err
	}
	return fields[0], fields[1], nil
}

// splitFields strips the leading family tag, splits the remainder on ':',
// and parses each field as a decimal integer.
func splitFields(tag byte, name string, count int) ([]int, error) {
	if len(name) == 0 || name[0] != tag {
		return nil, fmt.Errorf("mipsolve names: %q does not carry family tag %q", name, string(tag))
	}
	parts := strings.Split(name[1:], ":")
	if len(parts) != count {
		return nil, fmt.Errorf("mipsolve names: %q has %d fields, want %d", name, len(parts), count)
	}
	out := make([]int, count)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("mipsolve names: malformed field %q in %q: %w", p, name, err)
		}
		out[i] = v
	}
	return out, nil
}
