package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParseSalaryAmount(t *testing.T) {
	cases := []struct {
		in   string
		want *int64
	}{
		{"50000", i64(50000)},
		{"₹50,000", i64(50000)},
		{"$120,000 per year", i64(120000)},
		{"Competitive", nil},
		{"DOE", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := domain.ParseSalaryAmount(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
		} else {
			assert.NotNil(t, got, "input %q", tc.in)
			assert.Equal(t, *tc.want, *got, "input %q", tc.in)
		}
	}
}

func TestParseSalaryBound(t *testing.T) {
	assert.Nil(t, domain.ParseSalaryBound(""))
	assert.Nil(t, domain.ParseSalaryBound("abc"))
	assert.Nil(t, domain.ParseSalaryBound("12abc"))
	assert.Nil(t, domain.ParseSalaryBound("0"), "zero behaves like omitted")
	assert.Nil(t, domain.ParseSalaryBound("-500"))

	got := domain.ParseSalaryBound(" 45000 ")
	assert.NotNil(t, got)
	assert.Equal(t, int64(45000), *got)
}

func i64(v int64) *int64 { return &v }
