package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := map[string]string{
		"Classic Kaju Katli":         "classic-kaju-katli",
		"Sea Salt  Caramel Cookies!": "sea-salt-caramel-cookies",
		"  Rose Barfi  ":             "rose-barfi",
		"Crème Brûlée Tart":          "creme-brulee-tart",
		"Café Éclair":                "cafe-eclair",
		"":                           "",
	}
	for input, want := range cases {
		assert.Equal(t, want, Generate(input), "input %q", input)
	}
}
