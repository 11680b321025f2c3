/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"fmt"
	"strconv"

	"github.com/krotik/uosteam/util"
)

/*
coerceInt converts a value already held by a variable binding to a signed
integer. String values are parsed with the same locale-invariant rule as a
literal lexeme.
*/
func coerceInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case uint64:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		return util.ParseInt(t)
	}
	return 0, fmt.Errorf("%w: cannot coerce %T to int", util.ErrArgCoercion, v)
}

func coerceUint(v interface{}) (uint64, error) {
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case uint32:
		return uint64(t), nil
	case uint16:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case string:
		return util.ParseUint(t)
	}
	return 0, fmt.Errorf("%w: cannot coerce %T to uint", util.ErrArgCoercion, v)
}

func coerceDouble(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case string:
		return util.ParseDouble(t)
	}
	return 0, fmt.Errorf("%w: cannot coerce %T to double", util.ErrArgCoercion, v)
}

func coerceBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return util.ParseBool(t)
	case int64:
		return t != 0, nil
	case uint64:
		return t != 0, nil
	}
	return false, fmt.Errorf("%w: cannot coerce %T to bool", util.ErrArgCoercion, v)
}

func coerceString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

/*
Comparable is the uniform shape the generic comparator works over: the
underlying Go value plus a kind tag so "same kind" can be tested without a
type switch at every call site.
*/
type Comparable struct {
	Kind  ComparableKind
	Int   int64
	Uint  uint64
	Str   string
	Dbl   float64
	Bool  bool
}

/*
ComparableKind identifies which field of a Comparable is meaningful.
*/
type ComparableKind int

const (
	KindInt ComparableKind = iota
	KindUint
	KindString
	KindDouble
	KindBool
)

/*
Compare implements the generic, asymmetric comparator described for
BINARY_EXPRESSION evaluation: if both sides share a kind, compare directly.
Otherwise the right side dictates the coercion: promote the left to double
if the right is a double, coerce the left to bool if the right is a bool,
else coerce the right to the left's kind.
*/
func Compare(left, right Comparable, op string) (bool, error) {

	if left.Kind != right.Kind {
		var err error
		switch right.Kind {
		case KindDouble:
			left, err = toDouble(left)
		case KindBool:
			left, err = toBool(left)
		default:
			right, err = coerceTo(right, left.Kind)
		}
		if err != nil {
			return false, err
		}
	}

	switch left.Kind {
	case KindInt:
		return applyOp(op, cmp(left.Int, right.Int))
	case KindUint:
		return applyOp(op, cmp(left.Uint, right.Uint))
	case KindDouble:
		return applyOp(op, cmp(left.Dbl, right.Dbl))
	case KindString:
		return applyOp(op, strcmp(left.Str, right.Str))
	case KindBool:
		return applyOp(op, boolcmp(left.Bool, right.Bool))
	}

	return false, fmt.Errorf("%w: unsupported comparable kind", util.ErrArgCoercion)
}

func toDouble(c Comparable) (Comparable, error) {
	switch c.Kind {
	case KindDouble:
		return c, nil
	case KindInt:
		return Comparable{Kind: KindDouble, Dbl: float64(c.Int)}, nil
	case KindUint:
		return Comparable{Kind: KindDouble, Dbl: float64(c.Uint)}, nil
	case KindString:
		d, err := strconv.ParseFloat(c.Str, 64)
		return Comparable{Kind: KindDouble, Dbl: d}, err
	}
	return Comparable{}, fmt.Errorf("%w: cannot promote %v to double", util.ErrArgCoercion, c.Kind)
}

func toBool(c Comparable) (Comparable, error) {
	switch c.Kind {
	case KindBool:
		return c, nil
	case KindInt:
		return Comparable{Kind: KindBool, Bool: c.Int != 0}, nil
	case KindUint:
		return Comparable{Kind: KindBool, Bool: c.Uint != 0}, nil
	case KindString:
		b, err := coerceBool(c.Str)
		return Comparable{Kind: KindBool, Bool: b}, err
	}
	return Comparable{}, fmt.Errorf("%w: cannot coerce %v to bool", util.ErrArgCoercion, c.Kind)
}

func coerceTo(c Comparable, kind ComparableKind) (Comparable, error) {
	switch kind {
	case KindInt:
		v, err := coerceInt(c.raw())
		return Comparable{Kind: KindInt, Int: v}, err
	case KindUint:
		v, err := coerceUint(c.raw())
		return Comparable{Kind: KindUint, Uint: v}, err
	case KindDouble:
		return toDouble(c)
	case KindString:
		return Comparable{Kind: KindString, Str: coerceString(c.raw())}, nil
	case KindBool:
		return toBool(c)
	}
	return Comparable{}, fmt.Errorf("%w: unsupported target kind", util.ErrArgCoercion)
}

func (c Comparable) raw() interface{} {
	switch c.Kind {
	case KindInt:
		return c.Int
	case KindUint:
		return c.Uint
	case KindDouble:
		return c.Dbl
	case KindBool:
		return c.Bool
	case KindString:
		return c.Str
	}
	return nil
}

func cmp[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func strcmp(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolcmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func applyOp(op string, c int) (bool, error) {
	switch op {
	case "==":
		return c == 0, nil
	case "!=":
		return c != 0, nil
	case "<":
		return c < 0, nil
	case "<=":
		return c <= 0, nil
	case ">":
		return c > 0, nil
	case ">=":
		return c >= 0, nil
	}
	return false, fmt.Errorf("%w: unknown comparison operator %q", util.ErrArgCoercion, op)
}
