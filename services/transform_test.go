package services

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	ratesSaver "github.com/icmx/rates-saver"
)

func rate(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func TestToLines(t *testing.T) {
	t.Parallel()

	snapshot := ratesSaver.Snapshot{
		Date: "2024-01-01",
		Rates: map[string]*decimal.Decimal{
			"USD": rate("1"),
			"EUR": rate("0.85"),
			"GBP": rate("0.73"),
			"JPY": rate("110.5"),
		},
	}

	t.Run("RestrictsAndSortsByCode", func(t *testing.T) {
		asserts := require.New(t)

		lines := ToLines(snapshot, []string{"USD", "EUR"})

		asserts.Equal([]ratesSaver.WriteLine{
			{Currency: "EUR", Line: "2024-01-01,0.85"},
			{Currency: "USD", Line: "2024-01-01,1"},
		}, lines)
	})

	t.Run("AbsentCodesProduceNothing", func(t *testing.T) {
		asserts := require.New(t)

		lines := ToLines(ratesSaver.Snapshot{
			Date:  "2024-01-01",
			Rates: map[string]*decimal.Decimal{"USD": rate("1")},
		}, []string{"GBP", "JPY"})

		asserts.Empty(lines)
	})

	t.Run("NullRateRendersEmptyField", func(t *testing.T) {
		asserts := require.New(t)

		lines := ToLines(ratesSaver.Snapshot{
			Date:  "2024-03-02",
			Rates: map[string]*decimal.Decimal{"CHF": nil},
		}, []string{"CHF"})

		asserts.Equal([]ratesSaver.WriteLine{
			{Currency: "CHF", Line: "2024-03-02,"},
		}, lines)
	})

	t.Run("Idempotent", func(t *testing.T) {
		asserts := require.New(t)

		quotes := []string{"JPY", "EUR", "USD"}

		first := ToLines(snapshot, quotes)
		second := ToLines(snapshot, quotes)

		asserts.Equal(first, second)
		asserts.Equal([]string{"JPY", "EUR", "USD"}, quotes)
	})
}

func TestToLines_GeneratedSnapshots(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rates := make(map[string]*decimal.Decimal)
	quotes := make([]string, 0, 20)

	for i := 0; i < 20; i++ {
		code := faker.Currency()
		value := decimal.NewFromFloat(rand.Float64() * 100)
		rates[code] = &value
		quotes = append(quotes, code)
	}

	lines := ToLines(ratesSaver.Snapshot{Date: "2024-06-15", Rates: rates}, quotes)

	asserts.True(sort.SliceIsSorted(lines, func(i, j int) bool {
		return lines[i].Currency < lines[j].Currency
	}))

	for _, line := range lines {
		asserts.Contains(rates, line.Currency)
		asserts.Equal("2024-06-15,"+rates[line.Currency].String(), line.Line)
	}
}
