package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rituraj-gharat/trackmycash/internal/importer"
)

func TestParser_Parse_CommaDelimited(t *testing.T) {
	input := strings.Join([]string{
		"Title,Amount,Date",
		"Coffee,-3.50,2024-03-05",
		"Salary,2000.00,2024-03-28",
	}, "\n")

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Coffee", params[0].Title)
	assert.Equal(t, int64(-350), params[0].Amount)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local), params[0].Timestamp)

	assert.Equal(t, "Salary", params[1].Title)
	assert.Equal(t, int64(200000), params[1].Amount)
}

func TestParser_Parse_SemicolonEuropeanAmounts(t *testing.T) {
	input := strings.Join([]string{
		"Description;Amount;Date",
		"Rent;-1.234,56;05-03-2024",
		"Refund;10,00;06/03/2024",
		"Bonus;1,234.56;07/03/2024",
	}, "\n")

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 3)

	assert.Equal(t, int64(-123456), params[0].Amount)
	assert.Equal(t, int64(1000), params[1].Amount)
	assert.Equal(t, int64(123456), params[2].Amount)
}

func TestParser_Parse_HeaderNotOnFirstLine(t *testing.T) {
	input := strings.Join([]string{
		"Statement export",
		"",
		"title,amount,date",
		"Groceries,-42.50,2024-05-02",
	}, "\n")

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Groceries", params[0].Title)
	assert.Equal(t, int64(-4250), params[0].Amount)
}

func TestParser_Parse_SkipsBlankRows(t *testing.T) {
	input := "title,amount,date\nCoffee,-3.50,2024-03-05\n\n  ,  ,\n"

	params, err := importer.NewParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestParser_Parse_Errors(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		wantMsg string
	}

	tests := []testCase{
		{
			name:    "NoHeader",
			input:   "just,some,cells\n1,2,3\n",
			wantMsg: "no header row",
		},
		{
			name:    "BadAmount",
			input:   "title,amount,date\nCoffee,abc,2024-03-05\n",
			wantMsg: "parse amount",
		},
		{
			name:    "BadDate",
			input:   "title,amount,date\nCoffee,-3.50,someday\n",
			wantMsg: "parse date",
		},
		{
			name:    "EmptyTitle",
			input:   "title,amount,date\n ,-3.50,2024-03-05\n",
			wantMsg: "empty title",
		},
		{
			name:    "ShortRow",
			input:   "title,amount,date\nCoffee,-3.50\n",
			wantMsg: "columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.NewParser().Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
