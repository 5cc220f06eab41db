package terminal_test

import (
	"bytes"
	"testing"

	"github.com/Josmithr/rushstack/internal/adapters/terminal"
	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestWriteLine_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	sink := terminal.New(&buf)

	sink.WriteLine(domain.SeverityError, "| Custom Tip (TIP_PNPM_OUTDATED_LOCKFILE)")
	sink.WriteLine(domain.SeverityError, "| run rush update")

	assert.Equal(t, "| Custom Tip (TIP_PNPM_OUTDATED_LOCKFILE)\n| run rush update\n", buf.String())
}

func TestColorProfile_HonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, terminal.ColorProfile())
}

func TestWriteLine_EachLineTerminated(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	sink := terminal.New(&buf)

	sink.WriteLine(domain.SeverityInfo, "one")
	sink.WriteLine(domain.SeverityWarning, "two")

	assert.Equal(t, "one\ntwo\n", buf.String())
}
