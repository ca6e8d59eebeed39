package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsHeader = "Employee ID,Group,HANDHELD,INATTENTIVE,FOLLOWING_DISTANCE,LANE_DEPARTURE,ROLLING_STOP,CRITICAL_DISTANCE," +
	"Total Score_Total,Total Score_Trend,Total Events_Total,Total Events_Trend,Recent Notes\n"

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cli := NewCLI(Options{Output: &out, LogOutput: &logs, Now: fixedNow})
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), logs.String(), err
}

func writeReports(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestGenerate_WritesBothReports(t *testing.T) {
	// Given
	dir := writeReports(t, map[string]string{
		"handheld.csv":    eventsHeader + "E1,North,3,0,0,0,0,0,80,0,3,0,\n",
		"inattentive.csv": eventsHeader + "E1,North,0,5,0,0,0,0,80,0,5,0,\n",
		"photo.png":       "binary",
		"accidents_report.csv": "Driver,Accident date,Preventable\n" +
			"D1,2024-02-10,Yes\nD1,2024-01-10,Yes\nD1,2024-02-29,Yes\nD1,2024-02-11,No\n",
	})
	out := t.TempDir()

	// When
	_, logs, err := run(t, "generate", "--dir", dir, "--out", out)

	// Then
	require.NoError(t, err)
	events, err := os.ReadFile(filepath.Join(out, "lytx_report_2024-02-01.csv"))
	require.NoError(t, err)
	assert.Equal(t, "E1,North,2024-02-01,2024-02-29,3,5,0,0,0,0\n", string(events))

	accidents, err := os.ReadFile(filepath.Join(out, "lytx_accidents_report_2024-02-01.csv"))
	require.NoError(t, err)
	assert.Equal(t, "D1,1,3\n", string(accidents))

	assert.Contains(t, logs, "skipping file")
	assert.Contains(t, logs, "photo.png")
}

func TestGenerate_IsIdempotent(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"a.csv": eventsHeader + "E2,South,1,0,0,0,0,0,80,0,1,0,\nE1,North,2,0,0,0,0,0,80,0,2,0,\n",
		"b.csv": eventsHeader + "E1,North,0,0,4,0,0,0,80,0,4,0,\n",
	})
	out := t.TempDir()
	path := filepath.Join(out, "lytx_report_2024-01-01.csv")

	_, _, err := run(t, "generate", "--dir", dir, "--out", out, "--start", "2024-01-01", "--end", "2024-01-31")
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, _, err = run(t, "generate", "--dir", dir, "--out", out, "--start", "2024-01-01", "--end", "2024-01-31")
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "E2,South,2024-01-01,2024-01-31,1,0,0,0,0,0\nE1,North,2024-01-01,2024-01-31,2,0,4,0,0,0\n", string(first))
}

func TestGenerate_WithoutAccidentLog(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"handheld.csv": eventsHeader + "E1,North,3,0,0,0,0,0,80,0,3,0,\n",
	})
	out := t.TempDir()

	stdout, logs, err := run(t, "generate", "--dir", dir, "--out", out, "--summary")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "lytx_report_2024-02-01.csv"))
	assert.NoFileExists(t, filepath.Join(out, "lytx_accidents_report_2024-02-01.csv"))
	assert.Contains(t, logs, "continuing without accident report")
	assert.Contains(t, stdout, "=== Accidents ===")
	assert.Contains(t, stdout, "Status: not generated")
}

func TestGenerate_NoWrite(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"handheld.csv": eventsHeader + "E1,North,3,0,0,0,0,0,80,0,3,0,\n",
	})
	out := t.TempDir()

	_, _, err := run(t, "generate", "--dir", dir, "--out", out, "--no-write")

	require.NoError(t, err)
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_Profile(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"crashes.csv":  "Driver,Accident date,Preventable\nD7,2024-02-05,Yes\n",
		"handheld.csv": eventsHeader + "E1,North,3,0,0,0,0,0,80,0,3,0,\n",
	})
	out := t.TempDir()
	profiles := filepath.Join(t.TempDir(), ".lytxcfg")
	require.NoError(t, os.WriteFile(profiles, []byte("[east]\nreport_dir = "+dir+"\naccidents_file = crashes.csv\noutput_dir = "+out+"\n"), 0o644))

	_, _, err := run(t, "generate", "--profile", "east", "--profiles", profiles)

	require.NoError(t, err)
	accidents, err := os.ReadFile(filepath.Join(out, "lytx_accidents_report_2024-02-01.csv"))
	require.NoError(t, err)
	assert.Equal(t, "D7,1,1\n", string(accidents))
}

func TestGenerate_Errors(t *testing.T) {
	dir := writeReports(t, map[string]string{
		"handheld.csv": "Employee ID,Group\nE1,North\n",
	})

	t.Run("missing column", func(t *testing.T) {
		_, _, err := run(t, "generate", "--dir", dir, "--no-write")
		assert.ErrorContains(t, err, "missing required columns")
	})

	t.Run("bad date", func(t *testing.T) {
		_, _, err := run(t, "generate", "--dir", dir, "--start", "03/01/2024")
		assert.Error(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		_, _, err := run(t, "generate", "--dir", dir, "--start", "2024-03-01", "--end", "2024-02-01")
		assert.ErrorContains(t, err, "invalid reporting period")
	})

	t.Run("unknown profile", func(t *testing.T) {
		profiles := filepath.Join(t.TempDir(), ".lytxcfg")
		require.NoError(t, os.WriteFile(profiles, []byte("[east]\nreport_dir = /x\n"), 0o644))
		_, _, err := run(t, "generate", "--profile", "west", "--profiles", profiles)
		assert.ErrorContains(t, err, "profile west not found")
	})
}

func TestPeriod(t *testing.T) {
	stdout, _, err := run(t, "period")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01 2024-02-29\n", stdout)

	stdout, _, err = run(t, "period", "--date", "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01 2024-12-31\n", stdout)
}

func TestProfiles(t *testing.T) {
	profiles := filepath.Join(t.TempDir(), ".lytxcfg")
	require.NoError(t, os.WriteFile(profiles, []byte("[east]\nreport_dir = /data/east\n\n[west]\nreport_dir = /data/west\n"), 0o644))

	stdout, _, err := run(t, "profiles", "--profiles", profiles)

	require.NoError(t, err)
	assert.Contains(t, stdout, "east:/data/east")
	assert.Contains(t, stdout, "west:/data/west")
}

func TestLogFormatConsole(t *testing.T) {
	_, logs, err := run(t, "--log-format", "console", "--log-level", "debug", "period")

	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "period")

	assert.ErrorContains(t, err, "invalid log level")
}
