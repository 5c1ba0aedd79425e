package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/covall/internal/adapter"
	"github.com/mouse-blink/covall/internal/apperrors"
	"github.com/mouse-blink/covall/internal/domain"
	domainmocks "github.com/mouse-blink/covall/internal/domain/mocks"
	m "github.com/mouse-blink/covall/internal/model"
)

func newTestRootCmd(t *testing.T, wf domain.Workflow) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	originalWorkflow := workflow
	originalConfigPath := configPathFlag
	workflow = wf

	t.Cleanup(func() {
		workflow = originalWorkflow
		configPathFlag = originalConfigPath
	})

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, &out
}

func TestRootCmd_BuildsWithDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.EXPECT().Build(mock.MatchedBy(func(args domain.BuildArgs) bool {
		return args.SourceRoot == m.Path("src") &&
			args.CoverageFile == m.Path("coverage/lcov.info") &&
			args.OutputFile == m.Path("coverage/coverageFiles.js") &&
			args.OutputDir == m.Path("coverage") &&
			args.Identifier == "coverageFiles" &&
			len(args.Exclude) == 0 &&
			args.Templates != nil &&
			assert.ObjectsAreEqual(adapter.DefaultAssets, args.Assets)
	})).Return(nil)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_ConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "covall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_root: lib\nidentifier: files\nexclude: [\"**/*.spec.js\"]\n"), 0o644))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	mockWorkflow.EXPECT().Build(mock.MatchedBy(func(args domain.BuildArgs) bool {
		return args.SourceRoot == m.Path("lib") &&
			args.Identifier == "files" &&
			assert.ObjectsAreEqual([]string{"**/*.spec.js"}, args.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfigStopsBeforeBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "covall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identifier: not-valid\n"), 0o644))

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"-c", path})
	err := cmd.Execute()

	assert.ErrorIs(t, err, apperrors.ErrInvalidConfig)
}

func TestRootCmd_BuildErrorIsReturned(t *testing.T) {
	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	boom := errors.New("boom")
	mockWorkflow.EXPECT().Build(mock.Anything).Return(boom)

	cmd.SetArgs([]string{})
	assert.ErrorIs(t, cmd.Execute(), boom)
}

func TestRootCmd_PositionalArgsAreRejected(t *testing.T) {
	t.Chdir(t.TempDir())

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	cmd, _ := newTestRootCmd(t, mockWorkflow)

	cmd.SetArgs([]string{"src"})
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join("src", "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("src", "index.js"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join("src", "lib", "util.js"), []byte("x"), 0o644))

	require.NoError(t, os.MkdirAll("coverage", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("coverage", "lcov.info"), []byte("SF:src/index.js\nLF:2\nLH:1\nend_of_record\n"), 0o644))

	templates := filepath.Join("node_modules", "coverage-all", "report")
	for _, name := range adapter.DefaultAssets {
		target := filepath.Join(templates, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))
		require.NoError(t, os.WriteFile(target, []byte("/* "+name+" */"), 0o644))
	}

	cmd, out := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join("coverage", "coverageFiles.js"))
	require.NoError(t, err)

	got, err := adapter.ParseCoverage("coverageFiles", data)
	require.NoError(t, err)
	assert.Equal(t, m.MergedCoverage{
		{Filename: "src/index.js", LinesCovered: 1, LinesTotal: 2},
		{Filename: "src/lib/util.js"},
	}, got)

	for _, name := range adapter.DefaultAssets {
		_, err := os.Stat(filepath.Join("coverage", filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}

	assert.Contains(t, out.String(), "Done: File created: coverage/coverageFiles.js")
}

func TestRootCmd_MissingSourceRootFails(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd, _ := newTestRootCmd(t, nil)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, statErr := os.Stat(filepath.Join("coverage", "coverageFiles.js"))
	assert.True(t, os.IsNotExist(statErr))
}
