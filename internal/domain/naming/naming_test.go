package naming_test

import (
	"testing"

	"github.com/lintconv/lintconv/internal/domain/naming"
	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"accounting", "accounting"},
		{"AccountingNote", "accounting_note"},
		{"accountingNote", "accounting_note"},
		{"accounting_note", "accounting_note"},
		{"accounting-note", "accounting_note"},
		{"Accounting Note", "accounting_note"},
		{"HTTPRoute", "http_route"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, naming.SnakeCase(c.in), "SnakeCase(%q)", c.in)
	}
}

func TestPascalCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"note", "Note"},
		{"accounting_note", "AccountingNote"},
		{"purchase_order", "PurchaseOrder"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, naming.PascalCase(c.in), "PascalCase(%q)", c.in)
	}
}

func TestCamelCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"accounting_note", "accountingNote"},
		{"note", "note"},
		{"purchase_order_line", "purchaseOrderLine"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, naming.CamelCase(c.in), "CamelCase(%q)", c.in)
	}
}

// The snake -> camel -> snake cycle must be lossless for snake input, so the
// server and client spellings of a field always agree.
func TestCamelSnakeRoundTrip(t *testing.T) {
	for _, s := range []string{"accounting_note", "directory_entry", "note", "purchase_order_line"} {
		assert.Equal(t, s, naming.SnakeCase(naming.CamelCase(s)), "round-trip of %q", s)
	}
}

func TestCamelCaseIdempotent(t *testing.T) {
	for _, s := range []string{"accounting_note", "note"} {
		once := naming.CamelCase(s)
		assert.Equal(t, once, naming.CamelCase(naming.SnakeCase(once)))
	}
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "accounting_note", naming.FieldName("accounting", "note"))
	assert.Equal(t, "accounting_note", naming.FieldName("Accounting", "Note"))
	assert.Equal(t, "accountingNote", naming.ClientFieldName("accounting", "note"))
}
