package engine

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ix-advisor/internal/dialect"
	"ix-advisor/internal/ixname"
	"ix-advisor/internal/schema"
	"ix-advisor/internal/schema/schematest"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func orders(measure float64) *schema.MissingIndex {
	return &schema.MissingIndex{
		Database:           "Shop",
		Schema:             ns("dbo"),
		Object:             ns("Orders"),
		Statement:          "[Shop].[dbo].[Orders]",
		EqualityColumns:    ns("[CustomerID]"),
		IncludedColumns:    ns("[Total]"),
		ImprovementMeasure: measure,
	}
}

func TestGenerate(t *testing.T) {
	p := Generate(&dialect.MSSQLDialect{}, ixname.Default(), orders(10))

	assert.Equal(t, "[IX_dbo_Orders_CustomerID]", p.Name)
	assert.Equal(t, "CREATE INDEX [IX_dbo_Orders_CustomerID] ON [Shop].[dbo].[Orders] ([CustomerID]) INCLUDE ([Total]);", p.Statement)
	assert.Equal(t, -1, p.CollidesWith)
	assert.False(t, p.Renamed)
}

func TestDetectCollisions(t *testing.T) {
	d := &dialect.MSSQLDialect{}
	n := ixname.Default()

	other := orders(5)
	other.InequalityColumns = ns("[OrderDate]")

	proposals := []*Proposal{
		Generate(d, n, orders(30)),
		Generate(d, n, other),
		Generate(d, n, orders(20)),
	}

	assert.Equal(t, 1, DetectCollisions(proposals))
	assert.Equal(t, -1, proposals[0].CollidesWith)
	assert.Equal(t, -1, proposals[1].CollidesWith)
	assert.Equal(t, 0, proposals[2].CollidesWith)
}

func TestDedupe(t *testing.T) {
	d := &dialect.MSSQLDialect{}
	n := ixname.Default()

	proposals := []*Proposal{
		Generate(d, n, orders(3)),
		Generate(d, n, orders(2)),
		Generate(d, n, orders(1)),
	}
	DetectCollisions(proposals)

	require.Equal(t, 2, Dedupe(d, n, proposals))
	assert.Equal(t, "[IX_dbo_Orders_CustomerID]", proposals[0].Name)
	assert.Equal(t, "[IX_dbo_Orders_CustomerID_2]", proposals[1].Name)
	assert.Equal(t, "[IX_dbo_Orders_CustomerID_3]", proposals[2].Name)
	assert.True(t, proposals[1].Renamed)
	assert.Contains(t, proposals[2].Statement, "CREATE INDEX [IX_dbo_Orders_CustomerID_3] ON")
}

func TestDedupeRespectsLimit(t *testing.T) {
	d := &dialect.MSSQLDialect{}
	n := ixname.Default()
	n.TableWidth = 200
	n.ColumnsWidth = 200
	n.CeilingIncludesDelimiters = true

	f := gofakeit.New(42)
	long := "dbo." + f.LetterN(150)
	var proposals []*Proposal
	for i := 0; i < 12; i++ {
		mi := orders(float64(100 - i))
		mi.Schema, mi.Object = sql.NullString{}, sql.NullString{}
		mi.Statement = long
		proposals = append(proposals, Generate(d, n, mi))
	}
	DetectCollisions(proposals)
	Dedupe(d, n, proposals)

	seen := map[string]bool{}
	for _, p := range proposals {
		assert.False(t, seen[p.Name], "duplicate %s", p.Name)
		seen[p.Name] = true
		assert.LessOrEqual(t, utf8.RuneCountInString(p.Name), ixname.MaxIdentifierLength)
	}
	assert.True(t, strings.HasSuffix(proposals[11].Name, "_12]"))
}

func TestRun(t *testing.T) {
	billing := &schema.MissingIndex{
		Schema:             ns("dbo"),
		Object:             ns("Invoices"),
		Statement:          "[Billing].[dbo].[Invoices]",
		InequalityColumns:  ns("[DueDate]"),
		ImprovementMeasure: 400,
	}
	fake := &schematest.Selecter{
		Indexes: map[string][]*schema.MissingIndex{
			"Shop":    {orders(100), orders(250), orders(1)},
			"Billing": {billing},
		},
		Errors: map[string]error{"Broken": errors.New("permission denied")},
	}

	calls := 0
	res := Run(context.Background(), fake, &dialect.MSSQLDialect{}, ixname.Default(),
		[]string{"Shop", "Broken", "Billing"},
		Options{Options: schema.Options{MinImprovement: 10}},
		func() { calls++ })

	assert.Equal(t, 3, calls)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Broken", res.Errors[0].Database)

	require.Len(t, res.Proposals, 3)
	assert.Equal(t, "[IX_dbo_Invoices_DueDate]", res.Proposals[0].Name)
	assert.Equal(t, "Billing", res.Proposals[0].Index.Database)
	assert.Equal(t, 250.0, res.Proposals[1].Index.ImprovementMeasure)
	assert.Equal(t, 1, res.Collisions)
	assert.Equal(t, 1, res.Proposals[2].CollidesWith)
	assert.Zero(t, res.Renamed)
}

func TestRunDedupe(t *testing.T) {
	fake := &schematest.Selecter{
		Indexes: map[string][]*schema.MissingIndex{"Shop": {orders(2), orders(1)}},
	}

	res := Run(context.Background(), fake, &dialect.MSSQLDialect{}, ixname.Default(),
		[]string{"Shop"}, Options{Dedupe: true}, nil)

	assert.Equal(t, 1, res.Renamed)
	assert.Equal(t, "[IX_dbo_Orders_CustomerID_2]", res.Proposals[1].Name)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &schematest.Selecter{}
	res := Run(ctx, fake, &dialect.MSSQLDialect{}, ixname.Default(), []string{"A", "B"}, Options{}, nil)

	assert.Len(t, res.Errors, 2)
	assert.Empty(t, fake.Queried)
	assert.ErrorIs(t, res.Errors[0].Err, context.Canceled)
}
