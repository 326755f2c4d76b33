package format

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		locale    string
		currency  string
		wantErr   error
		wantScale int
	}{
		{name: "en-US dollars", locale: "en-US", currency: "USD", wantScale: 2},
		{name: "ko-KR won", locale: "ko-KR", currency: "KRW", wantScale: 0},
		{name: "lowercase currency code", locale: "en-US", currency: "usd", wantScale: 2},
		{name: "invalid locale", locale: "!!", currency: "USD", wantErr: ErrInvalidLocale},
		{name: "invalid currency", locale: "en-US", currency: "DOLLAR", wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.locale, tt.currency)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, f)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantScale, f.Scale())
		})
	}
}

func TestFormatter_Currency(t *testing.T) {
	usd := mustNew(t, "en-US", "USD")
	krw := mustNew(t, "ko-KR", "KRW")

	tests := []struct {
		name   string
		f      *Formatter
		amount float64
		want   string
	}{
		{name: "usd grouped", f: usd, amount: 1234.5, want: "$1,234.50"},
		{name: "usd small", f: usd, amount: 28.5, want: "$28.50"},
		{name: "usd zero", f: usd, amount: 0, want: "$0.00"},
		{name: "usd negative", f: usd, amount: -16.9, want: "-$16.90"},
		{name: "usd rounds to cents", f: usd, amount: 3452.575001, want: "$3,452.58"},
		{name: "krw grouped", f: krw, amount: 13000, want: "₩13,000"},
		{name: "krw large", f: krw, amount: 103563000, want: "₩103,563,000"},
		{name: "krw drops fraction", f: krw, amount: 3452100.4, want: "₩3,452,100"},
		{name: "negative rounding to zero has no sign", f: usd, amount: -0.001, want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Currency(tt.amount))
		})
	}
}

func TestFormatter_NumberAndPercent(t *testing.T) {
	f := mustNew(t, "en-US", "USD")

	assert.Equal(t, "2,694", f.Number(2694))
	assert.Equal(t, "5", f.Number(5))
	assert.Equal(t, "17.3%", f.Percent(17.3))
	assert.Equal(t, "80.0%", f.Percent(80))
	assert.Equal(t, "0.0%", f.Percent(0))
}

func TestFormatter_Dates(t *testing.T) {
	en := mustNew(t, "en-US", "USD")
	ko := mustNew(t, "ko-KR", "KRW")

	tests := []struct {
		name   string
		render func(string) (string, error)
		input  string
		want   string
	}{
		{name: "en date from timestamp", render: en.Date, input: "2024-06-01T14:30:00", want: "Jun 1, 2024"},
		{name: "en date from date", render: en.Date, input: "2024-05-28", want: "May 28, 2024"},
		{name: "en date time afternoon", render: en.DateTime, input: "2024-06-01T14:30:00", want: "Jun 1, 2024, 02:30 PM"},
		{name: "en date time without seconds", render: en.DateTime, input: "2024-05-31T09:05", want: "May 31, 2024, 09:05 AM"},
		{name: "en date time rfc3339 keeps wall clock", render: en.DateTime, input: "2024-06-01T12:15:00+09:00", want: "Jun 1, 2024, 12:15 PM"},
		{name: "en day label", render: en.DayLabel, input: "2024-05-02", want: "May 2"},
		{name: "ko date", render: ko.Date, input: "2024-06-01T14:30:00", want: "2024년 6월 1일"},
		{name: "ko date time afternoon", render: ko.DateTime, input: "2024-06-01T14:30:00", want: "2024년 6월 1일 오후 02:30"},
		{name: "ko date time morning", render: ko.DateTime, input: "2024-06-01T11:45:00", want: "2024년 6월 1일 오전 11:45"},
		{name: "ko day label", render: ko.DayLabel, input: "2024-05-02", want: "5월 2일"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.render(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_InvalidDate(t *testing.T) {
	f := mustNew(t, "en-US", "USD")

	for _, input := range []string{"", "yesterday", "2024-13-01", "06/01/2024"} {
		_, err := f.Date(input)
		assert.True(t, errors.Is(err, ErrInvalidDate), input)
	}
}

func TestFormatter_Text(t *testing.T) {
	en := mustNew(t, "en-US", "USD")
	ko := mustNew(t, "ko-KR", "KRW")

	assert.Equal(t, "1 item", en.Text(LabelItems, 1))
	assert.Equal(t, "3 items", en.Text(LabelItems, 3))
	assert.Equal(t, "+1 more", en.Text(LabelMore, 1))
	assert.Equal(t, "Showing 3 of 5", en.Text(LabelShowing, 3, 5))
	assert.Equal(t, "Completed", en.Text("Completed"))

	assert.Equal(t, "3개 상품", ko.Text(LabelItems, 3))
	assert.Equal(t, "+2개 더", ko.Text(LabelMore, 2))
	assert.Equal(t, "3건 / 전체 5건", ko.Text(LabelShowing, 3, 5))
	assert.Equal(t, "완료", ko.Text("Completed"))
	assert.Equal(t, "매장식사", ko.Text("Dine-in"))
}

func mustNew(t *testing.T, locale, currency string) *Formatter {
	t.Helper()

	f, err := New(locale, currency)
	require.NoError(t, err)

	return f
}
