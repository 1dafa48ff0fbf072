package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/arloliu/prunecluster"
	"github.com/arloliu/prunecluster/internal/metrics"
	pctest "github.com/arloliu/prunecluster/testing"
	"github.com/stretchr/testify/require"
)

func loadScenario(t *testing.T, name string) *Scenario {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	sc, err := ParseScenario(data)
	require.NoError(t, err)

	return sc
}

func TestParseScenario(t *testing.T) {
	sc := loadScenario(t, "split.yaml")

	require.Equal(t, 11, sc.View.Zoom)
	require.Len(t, sc.Points, 3)
	require.Len(t, sc.Steps, 3)
	require.Equal(t, 300*time.Millisecond, sc.Steps[0].Advance)
	require.True(t, sc.Steps[2].Hard)
	require.Equal(t, []string{"c"}, sc.Steps[1].Remove)

	// fields left out keep their defaults
	require.Equal(t, prunecluster.DefaultConfig().FitPadding, sc.Config.FitPadding)

	_, err := ParseScenario([]byte("view: ["))
	require.Error(t, err)
}

func TestReplay(t *testing.T) {
	sc := loadScenario(t, "split.yaml")

	var out bytes.Buffer
	require.NoError(t, Replay(&out, sc, pctest.NewTestLogger(t), metrics.NewNop()))

	sections := strings.Split(out.String(), "== ")
	require.Len(t, sections, 5)

	attach := sections[1]
	require.Contains(t, attach, "create #1")
	require.Contains(t, attach, `"3"`)
	require.Contains(t, attach, "displayed=1 created=1")

	split := sections[2]
	require.Contains(t, split, "move #1 to 10.00000,10.00000")
	require.Contains(t, split, "create #2")
	require.Contains(t, split, "create #3")
	require.NotContains(t, split, "detach #1")
	require.Contains(t, split, "displayed=3 created=2 reused=0 rematched=1 removed=0")

	remove := sections[3]
	require.Contains(t, remove, "detach #3")
	require.Contains(t, remove, "displayed=2")

	jump := sections[4]
	require.Contains(t, jump, "detach #1")
	require.Contains(t, jump, "detach #2")
	require.Contains(t, jump, "displayed=0")
}

func TestRootCmd(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--metrics", "testdata/split.yaml"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "== metrics")
	require.Contains(t, out.String(), "prunecluster_markers_rematches_total 1")
}
