package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/testutils"
)

const quietConfig = "[logging]\nlevel = \"error\"\n"

type result struct {
	stdout string
	stderr string
	err    error
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uptimecal.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := testutils.MemFs(t, nil)
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	return fs
}

func run(t *testing.T, fs afero.Fs, configContent string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", writeConfig(t, configContent)}, args...))

	err := cmd.ExecuteContext(testutils.TestContext(t))
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestBadgeCmd(t *testing.T) {
	fs := newFs(t)

	res := run(t, fs, quietConfig,
		"badge", "--left-text", "build", "--right-text", "passing", "--output-path", "/out/build.svg")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Badge written to /out/build.svg")

	svg := readFile(t, fs, "/out/build.svg")
	assert.Contains(t, svg, "build")
	assert.Contains(t, svg, "passing")
	assert.Contains(t, svg, domain.DefaultLeftColor)
	assert.Contains(t, svg, domain.DefaultRightColor)
}

func TestBadgeCmd_Colors(t *testing.T) {
	t.Run("from config", func(t *testing.T) {
		fs := newFs(t)

		res := run(t, fs, quietConfig+"[badge]\nright_color = \"#e05d44\"\n",
			"badge", "--left-text", "ci", "--right-text", "failing", "--output-path", "/out/ci.svg")

		require.NoError(t, res.err)
		assert.Contains(t, readFile(t, fs, "/out/ci.svg"), "#e05d44")
	})

	t.Run("flag beats config", func(t *testing.T) {
		fs := newFs(t)

		res := run(t, fs, quietConfig+"[badge]\nright_color = \"#e05d44\"\n",
			"badge", "--left-text", "ci", "--right-text", "ok", "--right-color", "#97ca00", "--output-path", "/out/ci.svg")

		require.NoError(t, res.err)
		svg := readFile(t, fs, "/out/ci.svg")
		assert.Contains(t, svg, "#97ca00")
		assert.NotContains(t, svg, "#e05d44")
	})
}

func TestBadgeCmd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "missing output path",
			args:   []string{"badge", "--left-text", "a", "--right-text", "b"},
			errMsg: "output-path",
		},
		{
			name:   "missing directory",
			args:   []string{"badge", "--left-text", "a", "--right-text", "b", "--output-path", "/nowhere/b.svg"},
			errMsg: "failed to write badge",
		},
		{
			name:   "unexpected argument",
			args:   []string{"badge", "extra", "--left-text", "a", "--right-text", "b", "--output-path", "/out/b.svg"},
			errMsg: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, newFs(t), quietConfig, tt.args...)

			require.Error(t, res.err)
			assert.Contains(t, res.err.Error(), tt.errMsg)
		})
	}
}

func TestCalendarCmd(t *testing.T) {
	fs := newFs(t)

	res := run(t, fs, quietConfig,
		"calendar", "0 9 * * 1-5", "0 17 * * 1-5", "/out/cal.svg",
		"--days", "3", "--start", "2026-10-16", "--preview")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Calendar written to /out/cal.svg (1 of 3 days open)")
	for _, want := range []string{"2026-10-16", "Fri", "09:00-17:00", "Sat", "Sun", "closed"} {
		assert.Contains(t, res.stdout, want)
	}

	svg := readFile(t, fs, "/out/cal.svg")
	assert.Contains(t, svg, `width="400"`)
	assert.Equal(t, 2, strings.Count(svg, "No uptime"))
}

func TestCalendarCmd_Exemptions(t *testing.T) {
	exemptions := `
[[exemptions.uptimes]]
start_date = "2026-10-17"
end_date = "2026-10-18"

[[exemptions.downtimes]]
start_date = "2026-10-18"
end_date = "2026-10-18"
`

	t.Run("flag", func(t *testing.T) {
		fs := newFs(t)
		require.NoError(t, afero.WriteFile(fs, "/holidays.toml", []byte(exemptions), 0o644))

		res := run(t, fs, quietConfig,
			"calendar", "0 9 * * 1-5", "0 17 * * 1-5", "/out/cal.svg",
			"--days", "3", "--start", "2026-10-16", "--exemptions_toml", "/holidays.toml")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "(2 of 3 days open)")
		svg := readFile(t, fs, "/out/cal.svg")
		assert.Contains(t, svg, "00:00")
		assert.Contains(t, svg, "23:59")
		assert.Equal(t, 1, strings.Count(svg, "No uptime"))
	})

	t.Run("config", func(t *testing.T) {
		fs := newFs(t)
		require.NoError(t, afero.WriteFile(fs, "/holidays.toml", []byte(exemptions), 0o644))

		res := run(t, fs, quietConfig+"[calendar]\ndays = 2\nexemptions = \"/holidays.toml\"\n",
			"calendar", "0 9 * * 1-5", "0 17 * * 1-5", "/out/cal.svg", "--start", "2026-10-17")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "(1 of 2 days open)")
	})
}

func TestCalendarCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected error
		errMsg   string
	}{
		{
			name:     "malformed cron",
			args:     []string{"calendar", "a b c", "0 17 * * 1-5", "/out/cal.svg"},
			expected: domain.ErrFormat,
		},
		{
			name:     "bad start",
			args:     []string{"calendar", "0 9 * * *", "0 17 * * *", "/out/cal.svg", "--start", "16/10/2026"},
			expected: domain.ErrFormat,
		},
		{
			name:     "zero days",
			args:     []string{"calendar", "0 9 * * *", "0 17 * * *", "/out/cal.svg", "--days", "0"},
			expected: domain.ErrFormat,
		},
		{
			name:     "missing exemptions",
			args:     []string{"calendar", "0 9 * * *", "0 17 * * *", "/out/cal.svg", "--exemptions_toml", "/nope.toml"},
			expected: domain.ErrIO,
		},
		{
			name:   "missing positional",
			args:   []string{"calendar", "0 9 * * *", "0 17 * * *"},
			errMsg: "accepts 3 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFs(t)

			res := run(t, fs, quietConfig, tt.args...)

			require.Error(t, res.err)
			if tt.expected != nil {
				assert.ErrorIs(t, res.err, tt.expected)
			}
			if tt.errMsg != "" {
				assert.Contains(t, res.err.Error(), tt.errMsg)
			}
			exists, err := afero.Exists(fs, "/out/cal.svg")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestNextCmd(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		res := run(t, newFs(t), quietConfig, "next", "0 9 * * 1-5", "0 17 * * 1-5", "--start", "2026-10-17")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Next uptime")
		assert.Contains(t, res.stdout, "Mon 2026-10-19")
		assert.Contains(t, res.stdout, "09:00-17:00")
		assert.Contains(t, res.stdout, "2026-10-19 09:00 UTC")
		assert.Contains(t, res.stdout, "2026-10-19 17:00 UTC")
	})

	t.Run("not standard cron", func(t *testing.T) {
		res := run(t, newFs(t), quietConfig, "next", "0 10 * * 7", "0 14 * * 7", "--start", "2026-10-17")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "Sun 2026-10-18")
		assert.Contains(t, res.stdout, "not standard cron")
	})

	t.Run("nothing within horizon", func(t *testing.T) {
		res := run(t, newFs(t), quietConfig, "next", "0 9 * * 1-5", "0 17 * * 6", "--horizon", "7")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "No uptime within 7 days")
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		res := run(t, newFs(t), quietConfig, "version", "--short")

		require.NoError(t, res.err)
		assert.Equal(t, "dev\n", res.stdout)
	})

	t.Run("full", func(t *testing.T) {
		res := run(t, newFs(t), quietConfig, "version")

		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, "uptimecal")
		assert.Contains(t, res.stdout, "Commit:")
		assert.Contains(t, res.stdout, "Build Date:")
		assert.Contains(t, res.stdout, "Go:")
	})
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	res := run(t, newFs(t), "[calendar]\ndays = 0\n", "version")

	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, domain.ErrInvalidConfig)
}

func TestRootCmd_LogLevelFlag(t *testing.T) {
	fs := newFs(t)

	res := run(t, fs, "[logging]\nformat = \"json\"\n", "--log-level", "debug",
		"calendar", "0 9 * * 1-5", "0 17 * * 6", "/out/cal.svg", "--days", "1", "--start", "2026-10-16")

	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "configuration loaded")
	assert.Contains(t, res.stderr, "weekday sets differ")
}
