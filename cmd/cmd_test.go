package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestEvaluateCmd_APL(t *testing.T) {
	out, err := execute(t, "evaluate",
		"--morphology", "Hypergranular promyelocytes",
		"--cytogenetics", "t(15;17)",
		"--molecular", "PML::RARA fusion")
	require.NoError(t, err)
	assert.Contains(t, out, "Acute Promyelocytic Leukemia (APL)")
	assert.Contains(t, out, "Confidence:  High")
	assert.Contains(t, out, "Educational use only")
}

func TestEvaluateCmd_TagsKeepCommas(t *testing.T) {
	out, err := execute(t, "evaluate", "--flow", "CD5+, CD23+, dim CD20",
		"morphology:Mature lymphocytes + smudge cells")
	require.NoError(t, err)
	assert.Contains(t, out, "Chronic Lymphocytic Leukemia (CLL)")
}

func TestEvaluateCmd_AllShowsShadowedRules(t *testing.T) {
	out, err := execute(t, "evaluate", "--all",
		"--flow", "TdT+, CD19+, CD10+",
		"--cytogenetics", "t(9;22) BCR::ABL1")
	require.NoError(t, err)
	assert.Contains(t, out, "Philadelphia chromosome-positive")
	assert.Contains(t, out, "Also satisfied (lower precedence):")
}

func TestEvaluateCmd_EmptyIsDefault(t *testing.T) {
	out, err := execute(t, "evaluate")
	require.NoError(t, err)
	assert.Contains(t, out, "Incomplete Data or Non-specific Findings")
}

func TestEvaluateCmd_PhPositiveBALL(t *testing.T) {
	out, err := execute(t, "evaluate", `flow:TdT+, CD19+, CD10+`, `cytogenetics:t(9;22) BCR::ABL1`)
	require.NoError(t, err)
	assert.Contains(t, out, "Philadelphia chromosome-positive")
	assert.NotContains(t, out, "warning:")
}

func TestEvaluateCmd_WarnsOnUnknownTag(t *testing.T) {
	out, err := execute(t, "evaluate", "--morphology", "Blasts >20%", "cytogenetics:t(15;17)")
	require.NoError(t, err)
	assert.Contains(t, out, `warning: "Blasts >20%" is not a known morphology finding`)
	assert.NotContains(t, out, `"t(15;17)" is not`)
}

func TestEvaluateCmd_BadCategory(t *testing.T) {
	_, err := execute(t, "evaluate", "histology:anything")
	assert.Error(t, err)
}

func TestPathwayCmd_WalkToDiagnosis(t *testing.T) {
	out, err := execute(t, "pathway", "--choose", "1", "--choose", "1", "--choose", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "What is the blast percentage?")
	assert.Contains(t, out, "Diagnosis: APL - Acute Promyelocytic Leukemia")
}

func TestPathwayCmd_PartialShowsNextQuestion(t *testing.T) {
	out, err := execute(t, "pathway", "--choose", "1", "--choose", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Working diagnosis: Likely AML")
	assert.Contains(t, out, "Check cytogenetics/molecular")
	assert.Contains(t, out, "1. t(15;17)")
}

func TestPathwayCmd_ChoiceAfterFinish(t *testing.T) {
	_, err := execute(t, "pathway", "--choose", "1", "--choose", "1", "--choose", "1", "--choose", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choice 4: pathway already finished")
}

func TestPathwayCmd_OutOfRange(t *testing.T) {
	_, err := execute(t, "pathway", "--choose", "9")
	assert.Error(t, err)
}

func TestPathwayCmd_Tree(t *testing.T) {
	out, err := execute(t, "pathway", "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "⇒ T-Acute Lymphoblastic Leukemia")
}

func TestRatioCmd(t *testing.T) {
	out, err := execute(t, "ratio", "85", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "5.67")
	assert.Contains(t, out, "κ-restricted")

	_, err = execute(t, "ratio", "10", "0")
	assert.Error(t, err)
}

func TestCellularityCmd(t *testing.T) {
	out, err := execute(t, "cellularity", "60", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "Expected:  40% (range 30-50%)")
	assert.Contains(t, out, "correct")

	_, err = execute(t, "cellularity", "130", "40")
	assert.Error(t, err)
}

func TestContentValidateCmd(t *testing.T) {
	out, err := execute(t, "content", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ rules:")
	assert.Contains(t, out, "✓ pathway:")
}

func TestThemeCmd_PersistsChoice(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hemepath.db")

	out, err := execute(t, "--db", db, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	_, err = execute(t, "--db", db, "theme", "light")
	require.NoError(t, err)

	out, err = execute(t, "--db", db, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = execute(t, "--db", db, "theme", "sepia")
	assert.Error(t, err)
}

func TestExplainTopic_NeedsSubject(t *testing.T) {
	_, err := explainTopic(explainCmd, nil)
	assert.Error(t, err)
}

func TestLLMCmds_EmptyStore(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hemepath.db")

	out, err := execute(t, "--db", db, "llm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM events found.")

	out, err = execute(t, "--db", db, "llm", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No LLM usage recorded yet.")

	_, err = execute(t, "--db", db, "llm", "view", "abc")
	assert.ErrorContains(t, err, "invalid ID")
}

func TestLLMCheckCmd_NotConfigured(t *testing.T) {
	t.Setenv("HEMEPATH_LLM_PROVIDER", "")
	_, err := execute(t, "--db", filepath.Join(t.TempDir(), "hemepath.db"), "llm", "check")
	assert.ErrorContains(t, err, "not configured")
}

func TestUpdateCmd_DevBuild(t *testing.T) {
	out, err := execute(t, "update")
	require.NoError(t, err)
	assert.Contains(t, out, "development build")

	_, err = execute(t, "update", "--to", "latest")
	assert.ErrorContains(t, err, "not a release tag")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hemepath (devel) (go"), out)
}
