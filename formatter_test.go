package prospero_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/prospero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestFormatText(t *testing.T) {
	t.Parallel()

	t.Run("writes title, subtitle and text between separators", func(t *testing.T) {
		t.Parallel()

		a := &prospero.Article{Title: "Titre", Subtitle: ptr("Chapeau"), Text: "Corps"}

		assert.Equal(t, "Titre\r\n.\r\nChapeau\r\n.\r\nCorps", prospero.FormatText(a))
	})

	t.Run("omits an absent subtitle", func(t *testing.T) {
		t.Parallel()

		a := &prospero.Article{Title: "Titre", Text: "Corps"}

		assert.Equal(t, "Titre\r\n.\r\nCorps", prospero.FormatText(a))
	})

	t.Run("omits an empty subtitle", func(t *testing.T) {
		t.Parallel()

		a := &prospero.Article{Title: "Titre", Subtitle: ptr(""), Text: "Corps"}

		assert.Equal(t, "Titre\r\n.\r\nCorps", prospero.FormatText(a))
	})
}

func TestFormatContext(t *testing.T) {
	t.Parallel()

	processedAt := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	pub := prospero.Publication{Prefix: "LM", Source: "Le Monde", Type: "quotidien national"}

	t.Run("writes sixteen CRLF-separated fields", func(t *testing.T) {
		t.Parallel()

		a := &prospero.Article{
			Title: "Titre",
			Date:  &prospero.Date{Day: 9, Month: 3, Year: 2020},
		}

		got := prospero.FormatContext(a, pub, "prospero", processedAt)

		fields := strings.Split(got, "\r\n")
		require.Len(t, fields, 16)
		assert.Equal(t, "fileCtx0005", fields[0])
		assert.Equal(t, "Titre", fields[1])
		assert.Equal(t, "Le Monde", fields[2])
		assert.Equal(t, "09/03/2020", fields[5])
		assert.Equal(t, "Le Monde", fields[6])
		assert.Equal(t, "quotidien national", fields[7])
		assert.Equal(t, "Processed by prospero on 2021-01-02 03:04:05", fields[11])
		assert.Equal(t, []string{"", "n", "n", ""}, fields[12:])
		assert.False(t, strings.HasSuffix(got, "\r\n\r\n"))
	})

	t.Run("leaves the date empty for undated articles", func(t *testing.T) {
		t.Parallel()

		fields := prospero.ContextFields(&prospero.Article{Title: "T"}, pub, "prospero", processedAt)

		require.Len(t, fields, 16)
		assert.Empty(t, fields[5])
	})

	t.Run("keeps a multi-line title on one line", func(t *testing.T) {
		t.Parallel()

		a := &prospero.Article{Title: "La réforme\ndes retraites<br/>suite<BR >\r\n fin</p>"}

		got := prospero.FormatContext(a, pub, "prospero", processedAt)

		fields := strings.Split(got, "\r\n")
		require.Len(t, fields, 16)
		assert.Equal(t, "La réforme des retraites suite fin", fields[1])
		assert.Equal(t, "Le Monde", fields[2])
		assert.NotContains(t, got, "\n\n")
	})
}
