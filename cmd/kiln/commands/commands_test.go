package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/app"
)

// fakeApp records the options each command passes down.
type fakeApp struct {
	generateOpts  *app.GenerateOptions
	benchmarkOpts *app.BenchmarkOptions
	err           error
}

func (f *fakeApp) Generate(_ context.Context, opts app.GenerateOptions) error {
	f.generateOpts = &opts
	return f.err
}

func (f *fakeApp) Benchmark(_ context.Context, opts app.BenchmarkOptions) error {
	f.benchmarkOpts = &opts
	return f.err
}

func TestGenerate_DefaultManifest(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"generate"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, fake.generateOpts)
	assert.Equal(t, "kiln.yaml", fake.generateOpts.ManifestPath)
	assert.False(t, fake.generateOpts.DryRun)
}

func TestGenerate_ManifestAndDryRunFlags(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"generate", "-f", "suites/kiln.yaml", "--dry-run"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, fake.generateOpts)
	assert.Equal(t, "suites/kiln.yaml", fake.generateOpts.ManifestPath)
	assert.True(t, fake.generateOpts.DryRun)
}

func TestGenerate_ErrorPropagates(t *testing.T) {
	wantErr := errors.New("generation failed")
	fake := &fakeApp{err: wantErr}
	cli := commands.New(fake)
	cli.SetArgs([]string{"generate"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr))
}

func TestBenchmark_ManifestFlag(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"benchmark", "--manifest", "other.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, fake.benchmarkOpts)
	assert.Equal(t, "other.yaml", fake.benchmarkOpts.ManifestPath)
}

func TestUnknownCommand(t *testing.T) {
	cli := commands.New(&fakeApp{})
	cli.SetArgs([]string{"frobnicate"})

	require.Error(t, cli.Execute(context.Background()))
}

func TestVersionCommand(t *testing.T) {
	fake := &fakeApp{}
	cli := commands.New(fake)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Nil(t, fake.generateOpts)
	assert.Nil(t, fake.benchmarkOpts)
}
