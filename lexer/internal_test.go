/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"reflect"
	"testing"

	"github.com/krotik/uosteam/ast"
)

func TestSplitQuotes(t *testing.T) {
	got := splitQuotes(`msg 'hello world' done`)
	want := []string{"msg ", "hello world", " done"}
	if !reflect.DeepEqual(got, want) {
		t.Error("unexpected segments:", got)
	}
}

func TestTokenizePreservesQuotedWhitespace(t *testing.T) {
	got := tokenize(`msg 'hello world' 123`)
	want := []string{"msg", "hello world", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Error("unexpected tokens:", got)
	}
}

func TestTokenizeCollapsesOutsideWhitespace(t *testing.T) {
	got := tokenize("if   x   ==   1")
	want := []string{"if", "x", "==", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Error("unexpected tokens:", got)
	}
}

func TestClassifyValue(t *testing.T) {
	cases := []struct {
		tok  string
		want ast.Tag
	}{
		{"0x1234", ast.SERIAL},
		{"0XABCD", ast.SERIAL},
		{"42", ast.INTEGER},
		{"-7", ast.INTEGER},
		{"hello", ast.STRING},
		{"3.14", ast.STRING},
	}

	for _, c := range cases {
		if got := classifyValue(c.tok); got != c.want {
			t.Errorf("classifyValue(%q) = %v, want %v", c.tok, got, c.want)
		}
	}
}

func TestIsDecimalIntegerAndDoubleLiteral(t *testing.T) {
	if !isDecimalInteger("123") || isDecimalInteger("1.5") || isDecimalInteger("x") {
		t.Error("unexpected isDecimalInteger classification")
	}
	if !isDoubleLiteral("1.5") || isDoubleLiteral("123") || isDoubleLiteral("x") {
		t.Error("unexpected isDoubleLiteral classification")
	}
}

func TestStripModifiers(t *testing.T) {
	cases := []struct {
		tok   string
		name  string
		quiet bool
		force bool
	}{
		{"msg", "msg", false, false},
		{"@msg", "msg", true, false},
		{"msg!", "msg", false, true},
		{"@msg!", "msg", true, true},
	}

	for _, c := range cases {
		name, quiet, force := stripModifiers(c.tok)
		if name != c.name || quiet != c.quiet || force != c.force {
			t.Errorf("stripModifiers(%q) = (%q, %v, %v), want (%q, %v, %v)",
				c.tok, name, quiet, force, c.name, c.quiet, c.force)
		}
	}
}
